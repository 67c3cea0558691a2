package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// SanitizeComponent makes a tag value safe to use inside a single filename.
// Path separators and NUL bytes become underscores so the result can never
// point outside the directory it is joined to.
func SanitizeComponent(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == os.PathSeparator || r == 0 {
			return '_'
		}
		return r
	}, s)
}

// SplitExt splits the base name of path into stem and extension.
// "dir/Artist - Title.mp3" gives ("Artist - Title", ".mp3").
func SplitExt(path string) (stem, ext string) {
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}

// SameDir reports whether a and b live in the same parent directory.
func SameDir(a, b string) bool {
	return filepath.Clean(filepath.Dir(a)) == filepath.Clean(filepath.Dir(b))
}
