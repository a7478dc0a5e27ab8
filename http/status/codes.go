package status

import "strconv"

type Code uint16

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2
	Processing         Code = 102 // RFC 2518, 10.1
	EarlyHints         Code = 103 // RFC 8297

	OK                   Code = 200 // RFC 9110, 15.3.1
	Created              Code = 201 // RFC 9110, 15.3.2
	Accepted             Code = 202 // RFC 9110, 15.3.3
	NonAuthoritativeInfo Code = 203 // RFC 9110, 15.3.4
	NoContent            Code = 204 // RFC 9110, 15.3.5
	ResetContent         Code = 205 // RFC 9110, 15.3.6
	PartialContent       Code = 206 // RFC 9110, 15.3.7
	MultiStatus          Code = 207 // RFC 4918, 11.1
	AlreadyReported      Code = 208 // RFC 5842, 7.1
	IMUsed               Code = 226 // RFC 3229, 10.4.1

	MultipleChoices   Code = 300 // RFC 9110, 15.4.1
	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	UseProxy          Code = 305 // RFC 9110, 15.4.6
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9

	BadRequest                   Code = 400 // RFC 9110, 15.5.1
	Unauthorized                 Code = 401 // RFC 9110, 15.5.2
	PaymentRequired              Code = 402 // RFC 9110, 15.5.3
	Forbidden                    Code = 403 // RFC 9110, 15.5.4
	NotFound                     Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed             Code = 405 // RFC 9110, 15.5.6
	NotAcceptable                Code = 406 // RFC 9110, 15.5.7
	ProxyAuthRequired            Code = 407 // RFC 9110, 15.5.8
	RequestTimeout               Code = 408 // RFC 9110, 15.5.9
	Conflict                     Code = 409 // RFC 9110, 15.5.10
	Gone                         Code = 410 // RFC 9110, 15.5.11
	LengthRequired               Code = 411 // RFC 9110, 15.5.12
	PreconditionFailed           Code = 412 // RFC 9110, 15.5.13
	ContentTooLarge              Code = 413 // RFC 9110, 15.5.14
	URITooLong                   Code = 414 // RFC 9110, 15.5.15
	UnsupportedMediaType         Code = 415 // RFC 9110, 15.5.16
	RequestedRangeNotSatisfiable Code = 416 // RFC 9110, 15.5.17
	ExpectationFailed            Code = 417 // RFC 9110, 15.5.18
	Teapot                       Code = 418 // RFC 9110, 15.5.19 (Unused)
	MisdirectedRequest           Code = 421 // RFC 9110, 15.5.20
	UnprocessableContent         Code = 422 // RFC 9110, 15.5.21
	Locked                       Code = 423 // RFC 4918, 11.3
	FailedDependency             Code = 424 // RFC 4918, 11.4
	TooEarly                     Code = 425 // RFC 8470, 5.2.
	UpgradeRequired              Code = 426 // RFC 9110, 15.5.22
	PreconditionRequired         Code = 428 // RFC 6585, 3
	TooManyRequests              Code = 429 // RFC 6585, 4
	RequestHeaderFieldsTooLarge  Code = 431 // RFC 6585, 5
	UnavailableForLegalReasons   Code = 451 // RFC 7725, 3

	InternalServerError           Code = 500 // RFC 9110, 15.6.1
	NotImplemented                Code = 501 // RFC 9110, 15.6.2
	BadGateway                    Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable            Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout                Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported       Code = 505 // RFC 9110, 15.6.6
	VariantAlsoNegotiates         Code = 506 // RFC 2295, 8.1
	InsufficientStorage           Code = 507 // RFC 4918, 11.5
	LoopDetected                  Code = 508 // RFC 5842, 7.2
	NotExtended                   Code = 510 // RFC 2774, 7
	NetworkAuthenticationRequired Code = 511 // RFC 6585, 6
)

// Unknown is the reason phrase for every code without a registered one.
const Unknown = "Unknown Code"

const (
	minCode = 100
	maxCode = 599
)

var phrases = [maxCode - minCode + 1]string{
	Continue - minCode:           "Continue",
	SwitchingProtocols - minCode: "Switching Protocols",
	Processing - minCode:         "Processing",
	EarlyHints - minCode:         "Early Hints",

	OK - minCode:                   "OK",
	Created - minCode:              "Created",
	Accepted - minCode:             "Accepted",
	NonAuthoritativeInfo - minCode: "Non-Authoritative Information",
	NoContent - minCode:            "No Content",
	ResetContent - minCode:         "Reset Content",
	PartialContent - minCode:       "Partial Content",
	MultiStatus - minCode:          "Multi-Status",
	AlreadyReported - minCode:      "Already Reported",
	IMUsed - minCode:               "IM Used",

	MultipleChoices - minCode:   "Multiple Choices",
	MovedPermanently - minCode:  "Moved Permanently",
	Found - minCode:             "Found",
	SeeOther - minCode:          "See Other",
	NotModified - minCode:       "Not Modified",
	UseProxy - minCode:          "Use Proxy",
	TemporaryRedirect - minCode: "Temporary Redirect",
	PermanentRedirect - minCode: "Permanent Redirect",

	BadRequest - minCode:                   "Bad Request",
	Unauthorized - minCode:                 "Unauthorized",
	PaymentRequired - minCode:              "Payment Required",
	Forbidden - minCode:                    "Forbidden",
	NotFound - minCode:                     "Not Found",
	MethodNotAllowed - minCode:             "Method Not Allowed",
	NotAcceptable - minCode:                "Not Acceptable",
	ProxyAuthRequired - minCode:            "Proxy Authentication Required",
	RequestTimeout - minCode:               "Request Timeout",
	Conflict - minCode:                     "Conflict",
	Gone - minCode:                         "Gone",
	LengthRequired - minCode:               "Length Required",
	PreconditionFailed - minCode:           "Precondition Failed",
	ContentTooLarge - minCode:              "Content Too Large",
	URITooLong - minCode:                   "URI Too Long",
	UnsupportedMediaType - minCode:         "Unsupported Media Type",
	RequestedRangeNotSatisfiable - minCode: "Range Not Satisfiable",
	ExpectationFailed - minCode:            "Expectation Failed",
	Teapot - minCode:                       "I'm a teapot",
	MisdirectedRequest - minCode:           "Misdirected Request",
	UnprocessableContent - minCode:         "Unprocessable Content",
	Locked - minCode:                       "Locked",
	FailedDependency - minCode:             "Failed Dependency",
	TooEarly - minCode:                     "Too Early",
	UpgradeRequired - minCode:              "Upgrade Required",
	PreconditionRequired - minCode:         "Precondition Required",
	TooManyRequests - minCode:              "Too Many Requests",
	RequestHeaderFieldsTooLarge - minCode:  "Request Header Fields Too Large",
	UnavailableForLegalReasons - minCode:   "Unavailable For Legal Reasons",

	InternalServerError - minCode:           "Internal Server Error",
	NotImplemented - minCode:                "Not Implemented",
	BadGateway - minCode:                    "Bad Gateway",
	ServiceUnavailable - minCode:            "Service Unavailable",
	GatewayTimeout - minCode:                "Gateway Timeout",
	HTTPVersionNotSupported - minCode:       "HTTP Version Not Supported",
	VariantAlsoNegotiates - minCode:         "Variant Also Negotiates",
	InsufficientStorage - minCode:           "Insufficient Storage",
	LoopDetected - minCode:                  "Loop Detected",
	NotExtended - minCode:                   "Not Extended",
	NetworkAuthenticationRequired - minCode: "Network Authentication Required",
}

// KnownCodes lists every code having a registered reason phrase, in ascending order.
var KnownCodes = func() (codes []Code) {
	for i, phrase := range phrases {
		if len(phrase) > 0 {
			codes = append(codes, Code(i+minCode))
		}
	}

	return codes
}()

// Text returns the reason phrase of the code. Codes out of the 100-599 range, as well as
// unassigned ones inside it, result in Unknown.
func Text(code Code) string {
	if code < minCode || code > maxCode {
		return Unknown
	}

	if phrase := phrases[code-minCode]; len(phrase) > 0 {
		return phrase
	}

	return Unknown
}

// StringCode returns the decimal representation of the code.
func StringCode(code Code) string {
	return strconv.FormatUint(uint64(code), 10)
}
