package http

import (
	"strconv"
	"time"

	"github.com/indigo-web/docserve/http/headers"
	"github.com/indigo-web/docserve/http/method"
	"github.com/indigo-web/docserve/http/status"
)

// Version is the only protocol version the server speaks
const Version = "HTTP/1.1"

// dateLayout is the IMF-fixdate format, as required for the Date field by RFC 9110
const dateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

type Kind uint8

const (
	Request Kind = iota + 1
	Response
)

type RequestLine struct {
	Method  method.Method
	Target  string
	Version string
}

type StatusLine struct {
	Version string
	Code    status.Code
}

// Reason returns the reason phrase derived from the code
func (s StatusLine) Reason() string {
	return status.Text(s.Code)
}

// String renders the status line without the line terminator
func (s StatusLine) String() string {
	return s.Version + " " + status.StringCode(s.Code) + " " + s.Reason()
}

// Header is either a request or a response header. Exactly one of RequestLine and
// StatusLine is set, depending on the Kind.
type Header struct {
	Kind        Kind
	RequestLine *RequestLine
	StatusLine  *StatusLine
	Fields      *headers.Headers
}

func NewRequestHeader(line RequestLine, fields *headers.Headers) *Header {
	if fields == nil {
		fields = headers.New()
	}

	return &Header{
		Kind:        Request,
		RequestLine: &line,
		Fields:      fields,
	}
}

func NewResponseHeader(code status.Code, version string, fields *headers.Headers) *Header {
	if fields == nil {
		fields = headers.New()
	}

	return &Header{
		Kind: Response,
		StatusLine: &StatusLine{
			Version: version,
			Code:    code,
		},
		Fields: fields,
	}
}

// Add appends a field
func (h *Header) Add(name, value string) *Header {
	h.Fields.Add(name, value)
	return h
}

// Identity describes the server in the default response header.
type Identity struct {
	Name       string
	Version    string
	Connection string
	KeepAlive  string
}

func DefaultIdentity() Identity {
	return Identity{
		Name:       "docserve",
		Version:    "0.1alpha",
		Connection: "keep-alive",
		KeepAlive:  "timeout=5, max=997",
	}
}

// Clock is the source of the current time for the Date field.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (c ClockFunc) Now() time.Time {
	return c()
}

var SystemClock Clock = ClockFunc(time.Now)

// DefaultHeader returns a fresh 200 OK response header carrying the operational fields.
func DefaultHeader(clock Clock, id Identity) *Header {
	return defaultHeader(clock, id, status.OK)
}

func defaultHeader(clock Clock, id Identity, code status.Code) *Header {
	fields := headers.NewPrealloc(6).
		Add(headers.Connection, id.Connection).
		Add(headers.Date, clock.Now().UTC().Format(dateLayout)).
		Add(headers.Server, id.Name).
		Add(headers.ServerVersion, id.Version).
		Add(headers.KeepAlive, id.KeepAlive)

	return NewResponseHeader(code, Version, fields)
}

// ContentLength returns the declared body length. The second value is false if the field
// is missing, and the error is non-nil if the field isn't a decimal integer
func (h *Header) ContentLength() (length int, found bool, err error) {
	value, found := h.Fields.Get(headers.ContentLength)
	if !found {
		return 0, false, nil
	}

	length, err = parseLength(value)
	return length, true, err
}

func parseLength(value string) (int, error) {
	if len(value) == 0 {
		return 0, status.ErrMalformedHeader
	}

	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, status.ErrMalformedHeader
		}
	}

	length, err := strconv.Atoi(value)
	if err != nil {
		// the only possible reason here is an overflow
		return 0, status.ErrMalformedHeader
	}

	return length, nil
}
