package http1

import (
	"strconv"

	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/http/headers"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/docserve/internal/transport"
	"github.com/indigo-web/iter"
)

// Serializer renders documents into the wire format. The buffer is reused between calls,
// so an instance must not be shared between connections
type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
	}
}

// Serialize renders the document and returns the result. The returned slice is valid
// only until the next call
func (s *Serializer) Serialize(document *http.Document) []byte {
	s.clear()
	s.grow(size(document))
	s.renderStartLine(document.Header)
	s.renderHeaders(document.Header.Fields)
	s.crlf()

	if document.HasBody() {
		s.buff = append(s.buff, document.Body.Bytes()...)
	}

	return s.buff
}

// Write serializes the document and writes it at once
func (s *Serializer) Write(document *http.Document, writer transport.Writer) error {
	return writer.Write(s.Serialize(document))
}

func (s *Serializer) renderStartLine(header *http.Header) {
	switch header.Kind {
	case http.Request:
		line := header.RequestLine
		s.buff = append(s.buff, line.Method.String()...)
		s.sp()
		s.buff = append(s.buff, line.Target...)
		s.sp()
		s.buff = append(s.buff, line.Version...)
	default:
		line := header.StatusLine
		s.buff = append(s.buff, line.Version...)
		s.sp()
		s.buff = strconv.AppendInt(s.buff, int64(line.Code), 10)
		s.sp()
		s.buff = append(s.buff, line.Reason()...)
	}

	s.crlf()
}

func (s *Serializer) renderHeaders(fields *headers.Headers) {
	it := fields.Iter()

	for field, cont := it.Next(); cont; field, cont = it.Next() {
		s.buff = append(s.buff, field.Name...)
		s.colonsp()
		s.buff = append(s.buff, field.Value...)
		s.crlf()
	}
}

func (s *Serializer) grow(n int) {
	if cap(s.buff) < n {
		s.buff = make([]byte, 0, n)
	}
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) colonsp() {
	s.buff = append(s.buff, ':', ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}

// size predicts the length of the serialized document, so the buffer is grown at most once
func size(document *http.Document) (n int) {
	header := document.Header

	switch header.Kind {
	case http.Request:
		line := header.RequestLine
		n += len(line.Method.String()) + 1 + len(line.Target) + 1 + len(line.Version)
	default:
		line := header.StatusLine
		n += len(line.Version) + 1 + len(status.StringCode(line.Code)) + 1 + len(line.Reason())
	}

	n += len(crlf)

	n += iter.Reduce(func(prev, curr int) int {
		return prev + curr
	}, iter.Map(fieldSize, header.Fields.Iter()), 0)

	n += len(crlf)

	if document.HasBody() {
		n += document.Body.Len()
	}

	return n
}

func fieldSize(field headers.Field) int {
	return len(field.Name) + len(": ") + len(field.Value) + len(crlf)
}
