package dummy

import (
	"io"
	"net"
	"time"
)

// NopConn is implemented in testing purposes. Every read returns io.EOF, every write
// succeeds and is discarded
type NopConn struct {
	// Deadlines counts the read deadlines set
	Deadlines int
}

func NewNopConn() *NopConn {
	return new(NopConn)
}

func (*NopConn) Read([]byte) (n int, err error) {
	return 0, io.EOF
}

func (*NopConn) Write(b []byte) (n int, err error) {
	return len(b), nil
}

func (*NopConn) Close() error {
	return nil
}

func (*NopConn) LocalAddr() net.Addr {
	return &net.TCPAddr{}
}

func (*NopConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{}
}

func (*NopConn) SetDeadline(time.Time) error {
	return nil
}

func (n *NopConn) SetReadDeadline(time.Time) error {
	n.Deadlines++
	return nil
}

func (*NopConn) SetWriteDeadline(time.Time) error {
	return nil
}
