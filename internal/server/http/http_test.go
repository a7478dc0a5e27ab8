package http

import (
	"bufio"
	"bytes"
	"io"
	stdhttp "net/http"
	"testing"

	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/http/method"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/docserve/internal/requestgen"
	"github.com/indigo-web/docserve/internal/server/tcp/dummy"
	"github.com/indigo-web/docserve/internal/transport/http1"
	"github.com/indigo-web/docserve/router"
	"github.com/indigo-web/docserve/router/simple"
	"github.com/indigo-web/utils/buffer"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTransport(client *dummy.CircularClient) *http1.Transport {
	return http1.New(client, buffer.New(64, 4096), 1024, nil)
}

func newBuilder() *http.Builder {
	return http.NewBuilder(http.SystemClock, http.DefaultIdentity(), func() *http.Body {
		return http.NewBody([]byte("not found"))
	})
}

func echoRouter(t *testing.T) router.Router {
	builder := newBuilder()

	return simple.New(func(request *http.Document) *http.Document {
		if request.Target() == "/missing" {
			return builder.Respond(status.NotFound, nil)
		}

		var body []byte
		if request.HasBody() {
			body = request.Body.Bytes()
		}

		return builder.Respond(status.OK, http.NewBody(append([]byte(request.Method().String()+" "), body...)))
	}, builder.OnError)
}

func serve(t *testing.T, r router.Router, chunks ...[]byte) *dummy.CircularClient {
	client := dummy.NewCircularClient(chunks...).OneTime()
	NewServer(r, zerolog.Nop()).Run(client, newTransport(client))
	require.True(t, client.Closed())

	return client
}

func readResponse(t *testing.T, data []byte) (*stdhttp.Response, string) {
	resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewReader(data)), nil)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestServer(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		client := serve(t, echoRouter(t), []byte("GET / HTTP/1.1\r\nAccept-Encoding: identity\r\n\r\n"))
		resp, body := readResponse(t, client.Written)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, "GET ", body)
	})

	t.Run("POST hello world", func(t *testing.T) {
		raw := []byte("POST / HTTP/1.1\r\nContent-Length: 13\r\n\r\nHello, world!")
		client := serve(t, echoRouter(t), requestgen.Disperse(raw, 3)...)
		_, body := readResponse(t, client.Written)
		require.Equal(t, "POST Hello, world!", body)
	})

	t.Run("50 headers", func(t *testing.T) {
		raw := requestgen.Generate("index.htm", requestgen.Headers(50))
		client := dummy.NewCircularClient(requestgen.Disperse(raw, 1024)...).OneTime()
		trans := http1.New(client, buffer.New(64, 16*1024), 0, nil)
		NewServer(echoRouter(t), zerolog.Nop()).Run(client, trans)
		resp, _ := readResponse(t, client.Written)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		client := serve(t, echoRouter(t), []byte("GET /missing HTTP/1.1\r\n\r\n"))
		resp, body := readResponse(t, client.Written)
		require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
		require.Equal(t, "not found", body)
	})

	t.Run("request returned as the response", func(t *testing.T) {
		r := simple.New(func(request *http.Document) *http.Document {
			return request
		}, nil)

		client := serve(t, r, []byte("GET / HTTP/1.1\r\nHost: localhost\r\n\r\n"))
		require.Equal(t, "GET / HTTP/1.1\r\nHOST: localhost\r\n\r\n", string(client.Written))
	})

	t.Run("unknown method", func(t *testing.T) {
		client := serve(t, echoRouter(t), []byte("BREW /pot HTTP/1.1\r\n\r\n"))
		resp, _ := readResponse(t, client.Written)
		require.Equal(t, stdhttp.StatusNotImplemented, resp.StatusCode)
	})

	for _, tc := range []struct {
		Name string
		Raw  string
	}{
		{"incomplete header", "GET / HTTP/1.1\r\nHost: x"},
		{"incomplete body", "POST / HTTP/1.1\r\nContent-Length: 13\r\n\r\nHello"},
		{"malformed", "GET /\r\n\r\n"},
		{"body too large", "POST / HTTP/1.1\r\nContent-Length: 4096\r\n\r\n"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			client := serve(t, echoRouter(t), []byte(tc.Raw))
			require.Empty(t, client.Written)
		})
	}
}

func TestServer_HandleRequest(t *testing.T) {
	t.Run("router sees every method", func(t *testing.T) {
		for _, m := range method.List {
			var seen method.Method
			r := simple.New(func(request *http.Document) *http.Document {
				seen = request.Method()
				return nil
			}, nil)

			client := dummy.NewCircularClient([]byte(m.String() + " / HTTP/1.1\r\n\r\n")).OneTime()
			require.NoError(t, NewServer(r, zerolog.Nop()).HandleRequest(client, newTransport(client), zerolog.Nop()))
			require.Equal(t, m, seen)
			require.Empty(t, client.Written)
		}
	})

	t.Run("errors are unwrapped for the router", func(t *testing.T) {
		var got error
		r := simple.New(nil, func(err error) *http.Document {
			got = err
			return nil
		})

		client := dummy.NewCircularClient([]byte("GET /\r\n\r\n")).OneTime()
		require.NoError(t, NewServer(r, zerolog.Nop()).HandleRequest(client, newTransport(client), zerolog.Nop()))
		require.Equal(t, status.ErrMalformedHeader, got)
	})

	t.Run("write failure", func(t *testing.T) {
		client := &failingWriter{CircularClient: dummy.NewCircularClient([]byte("GET / HTTP/1.1\r\n\r\n")).OneTime()}
		err := NewServer(echoRouter(t), zerolog.Nop()).HandleRequest(client, newTransport(client.CircularClient), zerolog.Nop())
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})
}

type failingWriter struct {
	*dummy.CircularClient
}

func (failingWriter) Write([]byte) error {
	return errors.WithStack(io.ErrClosedPipe)
}
