package requestgen

import (
	"strconv"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/docserve/http/headers"
	"github.com/indigo-web/iter"
)

// Headers returns n fields with random values. The last one is always Host
func Headers(n int) *headers.Headers {
	hdrs := headers.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), uniuri.NewLen(100))
	}

	return hdrs.Add("Host", "localhost")
}

// HeadersBlock renders the fields in their order, each terminated by CRLF
func HeadersBlock(hdrs *headers.Headers) (buff []byte) {
	lines := iter.Map(func(field headers.Field) string {
		return field.Name + ": " + field.Value + "\r\n"
	}, hdrs.Iter())

	for _, line := range iter.Extract(lines, nil) {
		buff = append(buff, line...)
	}

	return buff
}

// Generate renders a GET request to the path with the fields
func Generate(path string, hdrs *headers.Headers) (request []byte) {
	request = append(request, "GET /"+path+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}

// Disperse splits the data into parts of n bytes. The last part may be shorter
func Disperse(data []byte, n int) (parts [][]byte) {
	for i := 0; i < len(data); i += n {
		end := i + n
		if end > len(data) {
			end = len(data)
		}

		parts = append(parts, data[i:end])
	}

	return parts
}
