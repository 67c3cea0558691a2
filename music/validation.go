package music

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AnjaliPhukan/song-renamer/tags"
	"github.com/spf13/afero"
)

// supportedExtensions is the container whitelist, lowercase with leading dot
var supportedExtensions = []string{tags.ExtMP3, tags.ExtM4A}

// IsMusicFile checks if the file extension is one of the supported containers
func IsMusicFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path)) // handle cases where extension is upper case

	for _, v := range supportedExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// classify stats path (following symlinks) and reports its kind.
func classify(fsys afero.Fs, path string) (EntryKind, os.FileInfo, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return KindOther, nil, err
	}
	return kindOf(fi), fi, nil
}

func kindOf(fi os.FileInfo) EntryKind {
	switch {
	case fi.Mode().IsRegular():
		return KindFile
	case fi.IsDir():
		return KindDir
	default:
		return KindOther
	}
}
