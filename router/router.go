package router

import (
	"github.com/indigo-web/docserve/http"
)

// Router produces a response for each framed request. OnError is called instead if the
// request couldn't be framed. Returning nil from either of them means that nothing must
// be sent back, and the connection is just closed
type Router interface {
	OnRequest(request *http.Document) *http.Document
	OnError(err error) *http.Document
}
