package music

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnjaliPhukan/song-renamer/logging"
	"github.com/AnjaliPhukan/song-renamer/tags"
	"github.com/AnjaliPhukan/song-renamer/utils"
	"github.com/spf13/afero"
	"github.com/spf13/afero/mem"
)

// ResolveField returns the tag value, or Placeholder when the field has no
// value. An empty string is a value and is returned as-is.
func ResolveField(v *string) string {
	if v == nil {
		return Placeholder
	}
	return *v
}

// TargetName builds "<Artist> - <Title><ext>" for a file with extension ext.
func TargetName(md tags.Metadata, ext string) string {
	artist := utils.SanitizeComponent(ResolveField(md.Artist))
	title := utils.SanitizeComponent(ResolveField(md.Title))
	return fmt.Sprintf("%s - %s%s", artist, title, ext)
}

// disambiguate inserts the "(i)" counter between stem and extension.
func disambiguate(candidate string, i int) string {
	stem, ext := utils.SplitExt(candidate)
	return filepath.Join(filepath.Dir(candidate), fmt.Sprintf("%s(%d)%s", stem, i, ext))
}

// resolveCollision polls the filesystem until it finds a name that does not
// exist. The counter always suffixes the base candidate, so the third file
// becomes "X(2)", never "X(1)(1)". unchanged is true when the search lands
// on source itself, meaning the file already carries an acceptable name.
// A target that differs from source only in case and resolves to the same
// file is free: on a case-insensitive filesystem that is the source itself.
//
// The existence check and the later rename are not atomic; another process
// can claim the name in between.
func resolveCollision(fsys afero.Fs, source, candidate string) (target string, unchanged bool, err error) {
	source = filepath.Clean(source)
	target = filepath.Clean(candidate)

	for i := 1; ; i++ {
		if target == source {
			return target, true, nil
		}
		exists, err := afero.Exists(fsys, target)
		if err != nil {
			return "", false, err
		}
		if !exists {
			return target, false, nil
		}
		if strings.EqualFold(target, source) {
			same, err := sameFile(fsys, source, target)
			if err != nil {
				return "", false, err
			}
			if same {
				return target, false, nil
			}
		}
		logging.Debug("target %s exists, trying counter %d", target, i)
		target = disambiguate(candidate, i)
	}
}

// sameFile reports whether a and b name the same file.
func sameFile(fsys afero.Fs, a, b string) (bool, error) {
	fa, err := fsys.Stat(a)
	if err != nil {
		return false, err
	}
	fb, err := fsys.Stat(b)
	if err != nil {
		return false, err
	}
	// In-memory files have no inode; compare the backing data instead.
	if ma, ok := fa.(*mem.FileInfo); ok {
		mb, ok := fb.(*mem.FileInfo)
		return ok && ma.FileData == mb.FileData, nil
	}
	return os.SameFile(fa, fb), nil
}
