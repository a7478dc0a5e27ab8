package http

import (
	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/docserve/internal/server/tcp"
	"github.com/indigo-web/docserve/internal/transport"
	"github.com/indigo-web/docserve/router"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Server drives a single exchange per connection: frame the request, ask the router for
// a response, write it back and close the connection
type Server struct {
	router router.Router
	logger zerolog.Logger
}

func NewServer(router router.Router, logger zerolog.Logger) *Server {
	return &Server{
		router: router,
		logger: logger,
	}
}

func (s *Server) Run(client tcp.Client, trans transport.Transport) {
	logger := s.logger.With().Str("remote", remote(client)).Logger()
	logger.Debug().Msg("connection accepted")

	if err := s.HandleRequest(client, trans, logger); err != nil {
		logger.Error().Err(err).Msg("response not delivered")
	}

	trans.Reset()
	_ = client.Close()
	logger.Debug().Msg("connection closed")
}

// HandleRequest serves a single request. Framing failures are passed to the router's
// OnError, and are never returned. The only returned errors are failures to write
// the response
func (s *Server) HandleRequest(client tcp.Client, trans transport.Transport, logger zerolog.Logger) error {
	response := s.respond(trans, logger)
	if response == nil {
		return nil
	}

	if err := trans.Write(response, client); err != nil {
		return errors.Wrap(err, "write response")
	}

	logger.Info().
		Int("code", int(response.Code())).
		Msg("responded")

	return nil
}

func (s *Server) respond(trans transport.Transport, logger zerolog.Logger) *http.Document {
	request, err := trans.Frame()
	if err != nil {
		cause := errors.Cause(err)
		if _, ok := cause.(status.HTTPError); ok {
			logger.Warn().Err(err).Msg("request discarded")
		} else {
			logger.Error().Err(err).Msg("failed to read request")
		}

		return s.router.OnError(cause)
	}

	logger.Info().
		Str("method", request.Method().String()).
		Str("target", request.Target()).
		Msg("request")

	return s.router.OnRequest(request)
}

func remote(client tcp.Client) string {
	if addr := client.Remote(); addr != nil {
		return addr.String()
	}

	return "unknown"
}
