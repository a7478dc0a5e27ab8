package method

var names = [...]string{
	Unknown: "UNKNOWN",
	GET:     "GET",
	POST:    "POST",
	PUT:     "PUT",
	OPTIONS: "OPTIONS",
	HEAD:    "HEAD",
	DELETE:  "DELETE",
	TRACE:   "TRACE",
	CONNECT: "CONNECT",
}

// String returns the wire token of the method.
func (m Method) String() string {
	if int(m) >= len(names) {
		return names[Unknown]
	}

	return names[m]
}
