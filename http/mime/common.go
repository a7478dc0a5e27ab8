package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	JS          MIME = "application/javascript"
	AVIF        MIME = "image/avif"
	HEIF        MIME = "image/heif"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	WEBP        MIME = "image/webp"
)

// Image returns the MIME of an image kind, as returned by SniffImage
func Image(ext string) MIME {
	if ext == "svg" {
		return SVG
	}

	return "image/" + ext
}
