package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/utils/unreader"
)

// CircularClient is a client that on every read-operation returns the next chunk of the
// data it was initialised with, starting over after the last one. This is used mainly
// for benchmarking. Being switched to the one-time mode, it returns io.EOF instead of
// starting over
type CircularClient struct {
	unreader        *unreader.Unreader
	data            [][]byte
	pointer         int
	closed, oneTime bool
	// Written accumulates everything written into the client
	Written []byte
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		unreader: new(unreader.Unreader),
		data:     data,
		pointer:  -1,
	}
}

func (c *CircularClient) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	return c.unreader.PendingOr(func() ([]byte, error) {
		c.pointer++

		if c.pointer == len(c.data) {
			if c.oneTime || len(c.data) == 0 {
				c.closed = true
				return nil, io.EOF
			}

			c.pointer = 0
		}

		return c.data[c.pointer], nil
	})
}

func (c *CircularClient) Unread(takeback []byte) {
	c.unreader.Unread(takeback)
}

func (c *CircularClient) Write(b []byte) error {
	c.Written = append(c.Written, b...)
	return nil
}

func (*CircularClient) Remote() net.Addr {
	return &net.TCPAddr{}
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

// OneTime makes the client return io.EOF after the last chunk was read
func (c *CircularClient) OneTime() *CircularClient {
	c.oneTime = true
	return c
}

// Closed reports whether the client was closed, or the data was exhausted in the
// one-time mode
func (c *CircularClient) Closed() bool {
	return c.closed
}
