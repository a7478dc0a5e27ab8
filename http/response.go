package http

import "github.com/indigo-web/docserve/http/status"

// PageLoader returns the body of a canned page, or nil if the page is unavailable.
type PageLoader func() *Body

// Builder maps an outcome onto a canonical response document. It holds nothing but the
// construction parameters, so a single instance may be used by any number of connections.
type Builder struct {
	clock    Clock
	identity Identity
	notFound PageLoader
}

func NewBuilder(clock Clock, identity Identity, notFound PageLoader) *Builder {
	if clock == nil {
		clock = SystemClock
	}

	if notFound == nil {
		notFound = func() *Body {
			return nil
		}
	}

	return &Builder{
		clock:    clock,
		identity: identity,
		notFound: notFound,
	}
}

// Respond returns a document for the code. The body is used only for status.OK:
//   - status.OK: default header and the body (which might be nil);
//   - status.NotFound: 404 with the not-found page as the body;
//   - status.NotImplemented: 501 without a body;
//   - everything else: 500 without a body.
func (b *Builder) Respond(code status.Code, body *Body) *Document {
	switch code {
	case status.OK:
		return NewDocument(defaultHeader(b.clock, b.identity, status.OK), body)
	case status.NotFound:
		return NewDocument(defaultHeader(b.clock, b.identity, status.NotFound), b.notFound())
	case status.NotImplemented:
		return NewDocument(defaultHeader(b.clock, b.identity, status.NotImplemented), nil)
	default:
		return NewDocument(defaultHeader(b.clock, b.identity, status.InternalServerError), nil)
	}
}

// OnError returns a document for the error, or nil if nothing must be sent back.
func (b *Builder) OnError(err error) *Document {
	if !status.Respondable(err) {
		return nil
	}

	httpErr, ok := err.(status.HTTPError)
	if !ok {
		return b.Respond(status.InternalServerError, nil)
	}

	return b.Respond(httpErr.Code, nil)
}
