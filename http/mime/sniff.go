package mime

import (
	"bytes"
	"io"
	"os"
)

// SniffLen is the number of leading bytes image classification looks at
const SniffLen = 1024

// minSniffLen is the length of the shortest signature, including the ISO-BMFF brand
const minSniffLen = 12

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	gif87a    = []byte("GIF87a")
	gif89a    = []byte("GIF89a")
	riff      = []byte("RIFF")
	webp      = []byte("WEBP")
	ftyp      = []byte("ftyp")
	svgOpen   = []byte("<svg")
	xmlOpen   = []byte("<?xml")
)

// isobmffBrands maps major brands of the ISO base media file format onto the image kind
var isobmffBrands = map[string]string{
	"avif": "avif",
	"avis": "avif",
	"mif1": "heif",
	"heic": "heif",
	"heix": "heif",
	"hevc": "heif",
	"hevx": "heif",
}

// SniffImage classifies the data by its magic bytes. Returned kind is one of jpeg, png,
// gif, webp, avif, heif and svg. Only the first SniffLen bytes are looked at
func SniffImage(data []byte) (kind string, ok bool) {
	if len(data) > SniffLen {
		data = data[:SniffLen]
	}

	if len(data) < minSniffLen {
		return "", false
	}

	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return "jpeg", true
	case bytes.HasPrefix(data, pngMagic):
		return "png", true
	case bytes.HasPrefix(data, gif87a), bytes.HasPrefix(data, gif89a):
		return "gif", true
	case bytes.HasPrefix(data, riff) && bytes.Equal(data[8:12], webp):
		return "webp", true
	case bytes.Equal(data[4:8], ftyp):
		kind, ok = isobmffBrands[string(data[8:12])]
		return kind, ok
	}

	if isSVG(data) {
		return "svg", true
	}

	return "", false
}

// isSVG reports whether the first non-space element is either <svg, or an XML declaration
// followed by an <svg element within the data
func isSVG(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n\f\v")

	switch {
	case hasPrefixFold(data, svgOpen):
		return true
	case hasPrefixFold(data, xmlOpen):
		return bytes.Contains(bytes.ToLower(data), svgOpen)
	default:
		return false
	}
}

func hasPrefixFold(data, prefix []byte) bool {
	return len(data) >= len(prefix) && bytes.EqualFold(data[:len(prefix)], prefix)
}

// IsImageFile sniffs the beginning of the file. A file that can't be read isn't an image
func IsImageFile(path string) (kind string, ok bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}

	defer file.Close()

	buff := make([]byte, SniffLen)
	n, err := io.ReadFull(file, buff)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", false
	}

	return SniffImage(buff[:n])
}
