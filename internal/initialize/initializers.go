package initialize

import (
	"net"

	"github.com/indigo-web/docserve/config"
	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/internal/server/tcp"
	"github.com/indigo-web/docserve/internal/transport/http1"
	"github.com/indigo-web/docserve/router/static"
	"github.com/indigo-web/utils/buffer"
)

func NewClient(netCfg config.NET, conn net.Conn) tcp.Client {
	readBuff := make([]byte, netCfg.ReadBufferSize)

	return tcp.NewClient(conn, netCfg.ReadTimeout, readBuff)
}

func NewHeadBuff(s config.Headers) *buffer.Buffer {
	return buffer.New(s.Space.Default, s.Space.Maximal)
}

func NewTransport(cfg *config.Config, client tcp.Client) *http1.Transport {
	respBuff := make([]byte, 0, cfg.NET.WriteBufferSize)

	return http1.New(client, NewHeadBuff(cfg.Headers), cfg.Body.MaxSize, respBuff)
}

func NewIdentity(s config.Server) http.Identity {
	return http.Identity{
		Name:       s.Name,
		Version:    s.Version,
		Connection: s.Connection,
		KeepAlive:  s.KeepAlive,
	}
}

func NewBuilder(cfg *config.Config, clock http.Clock, notFound http.PageLoader) *http.Builder {
	return http.NewBuilder(clock, NewIdentity(cfg.Server), notFound)
}

// NewStaticRouter returns the file serving router, as described by the Static group
func NewStaticRouter(cfg *config.Config) *static.Router {
	builder := NewBuilder(cfg, http.SystemClock, static.NotFoundPage(cfg.Static.NotFoundPage))

	return static.New(cfg.Static.Root, cfg.Static.Index, builder)
}
