package http

import (
	"strconv"

	"github.com/indigo-web/docserve/http/headers"
	"github.com/indigo-web/docserve/http/method"
	"github.com/indigo-web/docserve/http/status"
)

// Document is a single HTTP message: a header and an optional body. It is used once per
// connection in each direction and must not be shared.
type Document struct {
	Header *Header
	Body   *Body
}

// NewDocument composes the header and the body. A nil header is replaced by the default
// one. If the body is present, the CONTENT-LENGTH field is set to its length. A header
// declaring CONTENT-LENGTH without a body gets an empty one, so the field still
// describes what is actually sent
func NewDocument(header *Header, body *Body) *Document {
	if header == nil {
		header = DefaultHeader(SystemClock, DefaultIdentity())
	}

	if body == nil && header.Fields.Has(headers.ContentLength) {
		body = WrapBody(nil)
	}

	if body != nil {
		if header.Fields.Count(headers.ContentLength) > 1 {
			header.Fields.Merge()
		}

		header.Fields.Set(headers.ContentLength, strconv.Itoa(body.Len()))
	}

	return &Document{
		Header: header,
		Body:   body,
	}
}

// HasBody reports whether the body is present. An empty body is still present
func (d *Document) HasBody() bool {
	return d.Body != nil
}

// Method returns the request method, or method.Unknown for responses
func (d *Document) Method() method.Method {
	if d.Header.RequestLine == nil {
		return method.Unknown
	}

	return d.Header.RequestLine.Method
}

// Code returns the response status code, or 0 for requests
func (d *Document) Code() status.Code {
	if d.Header.StatusLine == nil {
		return 0
	}

	return d.Header.StatusLine.Code
}

// Target returns the request target, or an empty string for responses
func (d *Document) Target() string {
	if d.Header.RequestLine == nil {
		return ""
	}

	return d.Header.RequestLine.Target
}
