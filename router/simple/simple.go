package simple

import (
	"github.com/indigo-web/docserve/http"
	"github.com/indigo-web/docserve/router"
)

type (
	Handler      func(*http.Document) *http.Document
	ErrorHandler func(error) *http.Document
)

type simpleRouter struct {
	handler    Handler
	errHandler ErrorHandler
}

// New returns a router made of two plain functions. A nil error handler sends nothing
// back on errors
func New(handler Handler, errHandler ErrorHandler) router.Router {
	if errHandler == nil {
		errHandler = func(error) *http.Document {
			return nil
		}
	}

	return simpleRouter{
		handler:    handler,
		errHandler: errHandler,
	}
}

func (r simpleRouter) OnRequest(request *http.Document) *http.Document {
	return r.handler(request)
}

func (r simpleRouter) OnError(err error) *http.Document {
	return r.errHandler(err)
}
