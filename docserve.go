package docserve

import (
	"net"
	"os"
	"sync"
	"time"

	"github.com/indigo-web/docserve/config"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/docserve/internal/initialize"
	"github.com/indigo-web/docserve/internal/server/http"
	"github.com/indigo-web/docserve/internal/server/tcp"
	"github.com/indigo-web/docserve/router"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// App serves HTTP/1.1 requests on a single address, one request per connection
type App struct {
	addr   string
	cfg    *config.Config
	logger zerolog.Logger
	hooks  hooks

	mu     sync.Mutex
	server *tcp.Server
	done   chan struct{}
}

// New returns a new App instance.
func New(addr string) *App {
	return &App{
		addr:   addr,
		cfg:    config.Default(),
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, writing into stderr.
func (a *App) Logger(logger zerolog.Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound. The connections
// are accepted right after the callback returns
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed,
// that at the moment as the callback is called, the server isn't able to accept any new connections
// and all the clients are already disconnected
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the application and blocks until it's stopped. If nil is passed instead of
// a router, files are served as described by the config's Static group. Stopping the
// application results in status.ErrShutdown
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = initialize.NewStaticRouter(a.cfg)
	}

	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return errors.Wrap(err, "listen")
	}

	httpServer := http.NewServer(r, a.logger)
	server := tcp.NewServer(sock, func(conn net.Conn) {
		client := initialize.NewClient(a.cfg.NET, conn)
		httpServer.Run(client, initialize.NewTransport(a.cfg, client))
	})

	done := make(chan struct{})
	a.mu.Lock()
	a.server, a.done = server, done
	a.mu.Unlock()
	defer close(done)

	a.logger.Info().Str("addr", sock.Addr().String()).Msg("listening")
	callIfNotNil(a.hooks.OnStart)
	err = server.Start()
	callIfNotNil(a.hooks.OnStop)
	a.logger.Info().Msg("stopped")

	return err
}

// Addr returns the address the application listens on, or nil if it isn't serving yet
func (a *App) Addr() net.Addr {
	server, _ := a.running()
	if server == nil {
		return nil
	}

	return server.Addr()
}

// Stop closes the listener and all the live connections. It blocks until Serve returns
func (a *App) Stop() error {
	server, done := a.running()
	if server == nil {
		return status.ErrShutdown
	}

	if err := server.Stop(); err != nil {
		return err
	}

	<-done
	return nil
}

// GracefulStop closes the listener, letting live connections to finish their exchange
// during NET.ShutdownTimeout. Connections left after it are closed
func (a *App) GracefulStop() error {
	server, done := a.running()
	if server == nil {
		return status.ErrShutdown
	}

	if err := server.GracefulShutdown(); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-time.After(a.cfg.NET.ShutdownTimeout):
		a.logger.Warn().Msg("shutdown timeout exceeded, closing connections")
	}

	if err := server.Stop(); err != nil {
		return err
	}

	<-done
	return nil
}

func (a *App) running() (*tcp.Server, <-chan struct{}) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.server, a.done
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
