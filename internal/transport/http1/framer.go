package http1

import (
	"io"
	"net"

	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/docserve/internal/server/tcp"
	"github.com/indigo-web/utils/buffer"
	"github.com/pkg/errors"
)

// minHeaderLength is the length of the shortest possible header block, the terminator excluded
const minHeaderLength = len("GET / HTTP/1.1")

var headerTerminator = [3]byte{'\r', '\n', '\r'}

// Framer reads a single request document off the client. The header block is accumulated
// until the CRLFCRLF sequence is met, no matter how it's split between reads. The body
// is then read to exactly the declared length, and whatever comes after it is pushed
// back into the client
type Framer struct {
	client      tcp.Client
	head        *buffer.Buffer
	maxBodySize int
	// window holds the last 3 bytes seen, so the terminator is recognized even if it
	// spans multiple reads
	window [3]byte
}

func NewFramer(client tcp.Client, head *buffer.Buffer, maxBodySize int) *Framer {
	return &Framer{
		client:      client,
		head:        head,
		maxBodySize: maxBodySize,
	}
}

// Frame returns the next request document
func (f *Framer) Frame() (*http.Document, error) {
	defer f.Reset()

	block, extra, err := f.readHeader()
	if err != nil {
		return nil, err
	}

	if len(block) < minHeaderLength {
		return nil, status.ErrMalformedHeader
	}

	header, err := ParseHeader(block)
	if err != nil {
		return nil, err
	}

	length, found, err := header.ContentLength()
	switch {
	case err != nil:
		return nil, err
	case !found:
		f.unread(extra)
		return http.NewDocument(header, nil), nil
	case length > f.maxBodySize:
		return nil, status.ErrBodyTooLarge
	}

	body, err := f.readBody(extra, length)
	if err != nil {
		return nil, err
	}

	return http.NewDocument(header, body), nil
}

// Reset drops the accumulated state. Pushed back bytes are kept in the client
func (f *Framer) Reset() {
	f.head.Clear()
	f.window = [3]byte{}
}

// readHeader returns the header block with the terminator stripped, and the bytes of the
// last read that follow it
func (f *Framer) readHeader() (block, extra []byte, err error) {
	for {
		data, err := f.client.Read()
		if len(data) == 0 {
			if err != nil {
				return nil, nil, readErr(err, status.ErrIncompleteHeader)
			}

			continue
		}

		boundary := f.scan(data)
		if boundary == -1 {
			if !f.head.Append(data) {
				return nil, nil, status.ErrHeaderTooLarge
			}

			continue
		}

		if !f.head.Append(data[:boundary+1]) {
			return nil, nil, status.ErrHeaderTooLarge
		}

		block = f.head.Finish()

		return block[:len(block)-len("\r\n\r\n")], data[boundary+1:], nil
	}
}

// scan returns the index of the last byte of the terminator, or -1 if the data doesn't
// complete it
func (f *Framer) scan(data []byte) int {
	for i, char := range data {
		if char == '\n' && f.window == headerTerminator {
			return i
		}

		f.window[0], f.window[1], f.window[2] = f.window[1], f.window[2], char
	}

	return -1
}

func (f *Framer) readBody(extra []byte, length int) (*http.Body, error) {
	if len(extra) >= length {
		f.unread(extra[length:])
		return ParseBody(extra, length)
	}

	body := make([]byte, 0, length)
	body = append(body, extra...)

	for len(body) < length {
		data, err := f.client.Read()
		if len(data) == 0 {
			if err != nil {
				return nil, readErr(err, status.ErrIncompleteBody)
			}

			continue
		}

		if rest := length - len(body); len(data) > rest {
			f.unread(data[rest:])
			data = data[:rest]
		}

		body = append(body, data...)
	}

	return http.WrapBody(body), nil
}

func (f *Framer) unread(data []byte) {
	if len(data) > 0 {
		f.client.Unread(data)
	}
}

// readErr converts the end of the stream into the incomplete error. Any other read
// failure is returned wrapped
func readErr(err, incomplete error) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, net.ErrClosed):
		return incomplete
	default:
		return errors.Wrap(err, "read")
	}
}
