package static

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/http/headers"
	"github.com/indigo-web/docserve/http/mime"
	"github.com/indigo-web/docserve/http/status"
	"github.com/indigo-web/docserve/router"
)

var _ router.Router = new(Router)

// DefaultNotFoundPage is served for misses, unless a custom page is set
const DefaultNotFoundPage = "<!DOCTYPE html>\n<html><head><title>404 Not Found</title></head>" +
	"<body><h1>404 Not Found</h1></body></html>\n"

// Router serves files from the root directory for requests of any method. The request
// target is resolved against the root, and a target ending with a slash (or pointing at
// a directory) maps onto the index file inside of it
type Router struct {
	root    string
	index   string
	builder *http.Builder
}

func New(root, index string, builder *http.Builder) *Router {
	return &Router{
		root:    root,
		index:   index,
		builder: builder,
	}
}

func (r *Router) OnRequest(request *http.Document) *http.Document {
	content, file, found := r.fetch(request.Target())
	if !found {
		response := r.builder.Respond(status.NotFound, nil)
		if response.HasBody() {
			response.Header.Add(headers.ContentType, mime.HTML)
		}

		return response
	}

	response := r.builder.Respond(status.OK, http.WrapBody(content))
	if contentType := ContentType(file); len(contentType) > 0 {
		response.Header.Add(headers.ContentType, contentType)
	}

	return response
}

func (r *Router) OnError(err error) *http.Document {
	return r.builder.OnError(err)
}

// Fetch returns the content of the file the target resolves to. A miss isn't an error,
// it's just reported by the second returned value
func (r *Router) Fetch(target string) ([]byte, bool) {
	content, _, found := r.fetch(target)
	return content, found
}

func (r *Router) fetch(target string) (content []byte, file string, found bool) {
	file = r.Translate(target)

	info, err := os.Stat(file)
	if err != nil {
		return nil, file, false
	}

	if info.IsDir() {
		file = filepath.Join(file, r.index)
	}

	content, err = os.ReadFile(file)
	if err != nil {
		return nil, file, false
	}

	return content, file, true
}

// Translate maps the target onto the file system path under the root. Query and fragment
// are stripped off, and the path is cleaned as a rooted one, so dot-dot segments can't
// escape the root
func (r *Router) Translate(target string) string {
	if i := strings.IndexAny(target, "?#"); i != -1 {
		target = target[:i]
	}

	isDir := strings.HasSuffix(target, "/")
	cleaned := path.Clean("/" + target)
	if isDir {
		cleaned = path.Join(cleaned, r.index)
	}

	return filepath.Join(r.root, filepath.FromSlash(cleaned))
}

// ContentType classifies the file. Images are recognized by their leading bytes, html, css
// and javascript files by the extension. Empty string is returned for anything else
func ContentType(file string) mime.MIME {
	if kind, ok := mime.IsImageFile(file); ok {
		return mime.Image(kind)
	}

	return mime.ByExtension(file)
}

// NotFoundPage returns a loader of the custom not-found page. The file is read on every
// call, falling back to DefaultNotFoundPage if it's unavailable. An empty path means the
// default page
func NotFoundPage(file string) http.PageLoader {
	return func() *http.Body {
		if len(file) > 0 {
			if content, err := os.ReadFile(file); err == nil {
				return http.WrapBody(content)
			}
		}

		return http.NewBody([]byte(DefaultNotFoundPage))
	}
}
