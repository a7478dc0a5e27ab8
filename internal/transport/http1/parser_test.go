package http1

import (
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/http/headers"
	"github.com/indigo-web/docserve/http/method"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/docserve/internal/requestgen"
	"github.com/stretchr/testify/require"
)

func stripTerminator(raw []byte) []byte {
	return raw[:len(raw)-len("\r\n\r\n")]
}

func TestParseHeader(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		raw := "GET /index.htm HTTP/1.1\r\nHost: localhost:8080\r\nAccept: */*"
		header, err := ParseHeader([]byte(raw))
		require.NoError(t, err)
		require.Equal(t, http.Request, header.Kind)
		require.Nil(t, header.StatusLine)
		require.Equal(t, http.RequestLine{
			Method:  method.GET,
			Target:  "/index.htm",
			Version: "HTTP/1.1",
		}, *header.RequestLine)
		require.Equal(t, []headers.Field{
			{Name: "HOST", Value: "localhost:8080"},
			{Name: "ACCEPT", Value: "*/*"},
		}, header.Fields.Unwrap())
	})

	t.Run("no fields", func(t *testing.T) {
		header, err := ParseHeader([]byte("DELETE /file HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, method.DELETE, header.RequestLine.Method)
		require.Zero(t, header.Fields.Len())
	})

	t.Run("merge duplicates", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nX: 1\r\nY: 2\r\nx: 3"
		header, err := ParseHeader([]byte(raw))
		require.NoError(t, err)
		require.Equal(t, []headers.Field{
			{Name: "X", Value: "1, 3"},
			{Name: "Y", Value: "2"},
		}, header.Fields.Unwrap())
	})

	t.Run("value spaces", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nA:no-space\r\nB:    many \r\nC:"
		header, err := ParseHeader([]byte(raw))
		require.NoError(t, err)
		require.Equal(t, "no-space", header.Fields.Value("a"))
		require.Equal(t, "many ", header.Fields.Value("b"))
		require.True(t, header.Fields.Has("c"))
		require.Empty(t, header.Fields.Value("c"))
	})

	t.Run("colon in value", func(t *testing.T) {
		header, err := ParseHeader([]byte("GET / HTTP/1.1\r\nHost: localhost:8080"))
		require.NoError(t, err)
		require.Equal(t, "localhost:8080", header.Fields.Value(headers.Host))
	})

	t.Run("strings are copied", func(t *testing.T) {
		raw := []byte("GET /path HTTP/1.1\r\nHello: world")
		header, err := ParseHeader(raw)
		require.NoError(t, err)

		for i := range raw {
			raw[i] = 'x'
		}

		require.Equal(t, "/path", header.RequestLine.Target)
		require.Equal(t, "world", header.Fields.Value("hello"))
	})

	t.Run("every method", func(t *testing.T) {
		for _, m := range method.List {
			header, err := ParseHeader([]byte(m.String() + " / HTTP/1.1"))
			require.NoError(t, err)
			require.Equal(t, m, header.RequestLine.Method)
		}
	})

	t.Run("generated", func(t *testing.T) {
		for _, n := range []int{1, 5, 10, 50} {
			want := requestgen.Headers(n)
			path := uniuri.New()
			header, err := ParseHeader(stripTerminator(requestgen.Generate(path, want)))
			require.NoError(t, err)
			require.Equal(t, "/"+path, header.RequestLine.Target)
			require.Equal(t, want.Len(), header.Fields.Len())

			for _, field := range want.Unwrap() {
				require.Equal(t, field.Value, header.Fields.Value(field.Name))
			}
		}
	})
}

func TestParseHeader_Errors(t *testing.T) {
	for _, tc := range []struct {
		Name string
		Raw  string
		Err  error
	}{
		{"unknown method", "BREW /pot HTTP/1.1", status.ErrUnknownMethod},
		{"lowercase method", "get / HTTP/1.1", status.ErrUnknownMethod},
		{"no spaces", "GET/HTTP/1.1", status.ErrMalformedHeader},
		{"single space", "GET /index.htm", status.ErrMalformedHeader},
		{"empty method", " / HTTP/1.1", status.ErrMalformedHeader},
		{"empty target", "GET  HTTP/1.1", status.ErrMalformedHeader},
		{"empty version", "GET / ", status.ErrMalformedHeader},
		{"field without colon", "GET / HTTP/1.1\r\nHost localhost", status.ErrMalformedHeader},
		{"field without name", "GET / HTTP/1.1\r\n: value", status.ErrMalformedHeader},
		{"empty line inside", "GET / HTTP/1.1\r\nA: b\r\n\r\nC: d", status.ErrMalformedHeader},
		{"empty", "", status.ErrMalformedHeader},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := ParseHeader([]byte(tc.Raw))
			require.ErrorIs(t, err, tc.Err)
		})
	}
}

func TestParseBody(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		body, err := ParseBody([]byte("Hello, world!"), 13)
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", body.String())
	})

	t.Run("excess is ignored", func(t *testing.T) {
		body, err := ParseBody([]byte("Hello, world!"), 5)
		require.NoError(t, err)
		require.Equal(t, "Hello", body.String())
	})

	t.Run("zero length", func(t *testing.T) {
		body, err := ParseBody(nil, 0)
		require.NoError(t, err)
		require.Zero(t, body.Len())
	})

	t.Run("binary", func(t *testing.T) {
		data := []byte(strings.Repeat("\x00\xff", 8))
		body, err := ParseBody(data, len(data))
		require.NoError(t, err)
		require.Equal(t, data, body.Bytes())
	})

	t.Run("incomplete", func(t *testing.T) {
		_, err := ParseBody([]byte("Hello"), 13)
		require.ErrorIs(t, err, status.ErrIncompleteBody)
	})
}
