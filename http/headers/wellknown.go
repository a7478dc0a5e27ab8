package headers

// Names of the fields the server itself reads or writes. They're already normalized.
const (
	ContentLength = "CONTENT-LENGTH"
	ContentType   = "CONTENT-TYPE"
	Connection    = "CONNECTION"
	Date          = "DATE"
	Server        = "SERVER"
	ServerVersion = "SERVER-VERSION"
	KeepAlive     = "KEEP-ALIVE"
	Host          = "HOST"
)
