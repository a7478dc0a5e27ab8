package tcp

import (
	"net"
	"sync"

	"github.com/indigo-web/docserve/http/status"
)

type OnConnection func(net.Conn)

// Server accepts connections and runs the callback for each of them in a separate goroutine
type Server struct {
	sock     net.Listener
	onConn   OnConnection
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
	// dropped is set once the live connections were closed. Connections accepted after
	// that are closed immediately
	dropped bool
}

func NewServer(sock net.Listener, onConn OnConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

// Start runs the accept loop. It returns only after the listener is closed and every
// connection handler has exited. If the listener was closed by Stop or GracefulShutdown,
// status.ErrShutdown is returned
func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			wg.Wait()

			if s.isShutdown() {
				return status.ErrShutdown
			}

			return err
		}

		s.mu.Lock()
		if s.dropped {
			s.mu.Unlock()
			_ = conn.Close()
			continue
		}
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		wg.Add(1)
		go s.connHandler(wg, conn)
	}
}

// Addr returns the address the server is listening on
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

// Stop shuts listener and ALL the connections down
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	s.dropped = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return nil
}

// GracefulShutdown stops a listener, but leaving all the connections free to end their
// lives peacefully
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

// stopListener closes the listener once. Subsequent calls are no-op
func (s *Server) stopListener() error {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return nil
	}

	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

func (s *Server) isShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shutdown
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	defer wg.Done()

	s.onConn(conn)

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
