package config

import (
	"os"
	"time"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type (
	HeadersSpace struct {
		Default, Maximal int
	}
)

type (
	Headers struct {
		// Space limits the amount of memory occupied by the request header block. Default
		// is the initial capacity of the buffer, Maximal is the limit, exceeding which results
		// in status.ErrHeaderTooLarge.
		Space HeadersSpace
	}

	Body struct {
		// MaxSize describes the maximal size of a body, that can be processed. Requests
		// declaring a bigger one are discarded with status.ErrBodyTooLarge.
		MaxSize int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout is set as a deadline for every read from the socket. If no data was
		// received in this period of time, the connection is closed.
		ReadTimeout time.Duration
		// WriteBufferSize is the initial capacity of the buffer responses are serialized into.
		// It grows to fit a bigger response.
		WriteBufferSize int
		// ShutdownTimeout limits how long App.Stop waits for the live connections to be
		// closed.
		ShutdownTimeout time.Duration
	}

	Static struct {
		// Root is the directory files are served from.
		Root string
		// Index is the file name a directory target is mapped onto.
		Index string
		// NotFoundPage is the path to a custom 404 page. Empty means the built-in one.
		NotFoundPage string `test:"nullable"`
	}

	// Server describes the server in the default response header fields.
	Server struct {
		Name       string
		Version    string
		Connection string
		KeepAlive  string
	}
)

// Config holds settings used across various parts of docserve, mainly restrictions,
// limitations and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Body    Body
	NET     NET
	Static  Static
	Server  Server
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Space: HeadersSpace{
				Default: 1 * 1024,  // 1kb for headers must be fairly enough in most cases.
				Maximal: 16 * 1024, // However, there also might be extremely long cookies.
			},
		},
		Body: Body{
			MaxSize: 16 * 1024 * 1024, // 16 megabytes
		},
		NET: NET{
			ReadBufferSize:  1024,
			ReadTimeout:     90 * time.Second,
			WriteBufferSize: 4 * 1024,
			ShutdownTimeout: 5 * time.Second,
		},
		Static: Static{
			Root:  "target",
			Index: "index.htm",
		},
		Server: Server{
			Name:       "docserve",
			Version:    "0.1alpha",
			Connection: "keep-alive",
			KeepAlive:  "timeout=5, max=997",
		},
	}
}

// Load reads the JSON file at path on top of the defaults. Fields missing in the file
// keep their default values
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	return Parse(data)
}

// Parse decodes the JSON document on top of the defaults. Durations are strings in the
// time.ParseDuration format, e.g. "90s"
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	return cfg, nil
}

func (n *NET) UnmarshalJSON(data []byte) error {
	var fields struct {
		ReadBufferSize  *int
		ReadTimeout     *string
		WriteBufferSize *int
		ShutdownTimeout *string
	}

	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if fields.ReadBufferSize != nil {
		n.ReadBufferSize = *fields.ReadBufferSize
	}

	if fields.WriteBufferSize != nil {
		n.WriteBufferSize = *fields.WriteBufferSize
	}

	if err := setDuration(&n.ReadTimeout, fields.ReadTimeout); err != nil {
		return errors.Wrap(err, "NET.ReadTimeout")
	}

	return errors.Wrap(setDuration(&n.ShutdownTimeout, fields.ShutdownTimeout), "NET.ShutdownTimeout")
}

func setDuration(dst *time.Duration, value *string) error {
	if value == nil {
		return nil
	}

	duration, err := time.ParseDuration(*value)
	if err != nil {
		return err
	}

	*dst = duration
	return nil
}
