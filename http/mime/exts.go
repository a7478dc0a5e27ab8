package mime

import (
	"path/filepath"
	"strings"
)

// Extension maps the file extensions of the text documents served as-is
var Extension = map[string]MIME{
	".htm":  HTML,
	".html": HTML,
	".css":  CSS,
	".js":   JS,
	".mjs":  JS,
}

// ByExtension returns the MIME by the path's extension, which is matched case-insensitively.
// An empty string is returned if the extension is unknown
func ByExtension(path string) MIME {
	return Extension[strings.ToLower(filepath.Ext(path))]
}
