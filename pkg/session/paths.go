package session

import (
	"path/filepath"
	"strings"
)

// ValidSourcePath reports whether path carries the one recognized source
// extension. The open dialog filters on it; headless mode checks it here.
func ValidSourcePath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".fdb")
}

// ValidExportPath reports whether path carries one of the two recognized
// export extensions.
func ValidExportPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".sqlite" || ext == ".db"
}
