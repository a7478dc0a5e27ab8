package transport

import (
	"github.com/indigo-web/docserve/http"
)

type Writer interface {
	Write([]byte) error
}

// Framer extracts a single request document out of a connection's byte stream
type Framer interface {
	Frame() (*http.Document, error)
	Reset()
}

// Serializer converts a document into bytes and writes it
type Serializer interface {
	Write(document *http.Document, writer Writer) error
}

// Transport is a general pair of a framer and a serializer. Usually consists of both belonging
// to a same protocol major version
type Transport interface {
	Framer
	Serializer
}
