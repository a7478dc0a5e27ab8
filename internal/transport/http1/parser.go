package http1

import (
	"bytes"

	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/http/headers"
	"github.com/indigo-web/docserve/http/method"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/utils/uf"
)

var crlf = []byte("\r\n")

// ParseHeader parses the header block, the terminating empty line excluded, into a request
// header. Lines are separated by CRLF, a bare CR or LF is a part of the line. Every
// string is copied out of the raw block, so the block may be reused afterward. Fields
// with equal names are merged
func ParseHeader(raw []byte) (*http.Header, error) {
	line, rest := cutLine(raw)

	requestLine, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	fields := headers.NewPrealloc(bytes.Count(rest, crlf) + 1)

	for len(rest) > 0 {
		line, rest = cutLine(rest)

		if err = parseField(fields, line); err != nil {
			return nil, err
		}
	}

	fields.Merge()

	return http.NewRequestHeader(requestLine, fields), nil
}

// ParseBody builds a body out of exactly length first bytes of the raw data.
func ParseBody(raw []byte, length int) (*http.Body, error) {
	if length < 0 {
		return nil, status.ErrMalformedHeader
	}

	if len(raw) < length {
		return nil, status.ErrIncompleteBody
	}

	return http.NewBody(raw[:length]), nil
}

// parseRequestLine splits the line at the first two spaces into the method, the target and
// the version
func parseRequestLine(line []byte) (requestLine http.RequestLine, err error) {
	sp := bytes.IndexByte(line, ' ')
	if sp <= 0 {
		return requestLine, status.ErrMalformedHeader
	}

	methodToken, line := line[:sp], line[sp+1:]

	sp = bytes.IndexByte(line, ' ')
	if sp <= 0 || sp == len(line)-1 {
		return requestLine, status.ErrMalformedHeader
	}

	requestLine.Method = method.Parse(uf.B2S(methodToken))
	if requestLine.Method == method.Unknown {
		return requestLine, status.ErrUnknownMethod
	}

	requestLine.Target = string(line[:sp])
	requestLine.Version = string(line[sp+1:])

	return requestLine, nil
}

func parseField(fields *headers.Headers, line []byte) error {
	colon := bytes.IndexByte(line, ':')
	if colon <= 0 {
		return status.ErrMalformedHeader
	}

	fields.Add(string(line[:colon]), string(trimPrefixSpaces(line[colon+1:])))

	return nil
}

func cutLine(data []byte) (line, rest []byte) {
	if boundary := bytes.Index(data, crlf); boundary != -1 {
		return data[:boundary], data[boundary+len(crlf):]
	}

	return data, nil
}

func trimPrefixSpaces(b []byte) []byte {
	for i, char := range b {
		if char != ' ' {
			return b[i:]
		}
	}

	return b[:0]
}
