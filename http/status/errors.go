package status

// HTTPError is an error that is bound to a status code. Errors of the framing layer use
// it as well, even if they never reach the wire: the code tells the server which
// response, if any, fits the failure.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrIncompleteHeader = NewError(BadRequest, "connection closed before the header block was complete")
	ErrIncompleteBody   = NewError(BadRequest, "connection closed before the body was complete")
	ErrMalformedHeader  = NewError(BadRequest, "malformed header block")
	ErrHeaderTooLarge   = NewError(RequestHeaderFieldsTooLarge, "too large header block")
	ErrBodyTooLarge     = NewError(ContentTooLarge, "request body is too large")
	ErrUnknownMethod    = NewError(NotImplemented, "request method is not supported")
	ErrShutdown         = NewError(ServiceUnavailable, "server is shutting down")
)

// Respondable reports whether a response must be sent back to the client after the error.
// The rest of the framing errors leave the connection in an undefined state, so it is
// just closed.
func Respondable(err error) bool {
	return err == ErrUnknownMethod
}
