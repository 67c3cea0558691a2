// Package tags reads the title and artist fields embedded in music files.
//
// MP3 files are read with github.com/bogem/id3v2, falling back to
// github.com/dhowden/tag for ID3v1 trailers. Everything else, M4A included,
// goes through github.com/dhowden/tag.
package tags

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"github.com/spf13/afero"
)

// File extensions with a dedicated reader.
const (
	ExtMP3 = ".mp3"
	ExtM4A = ".m4a"
)

// ErrRead is returned when a file's container cannot be parsed.
var ErrRead = errors.New("cannot read tags")

// Metadata holds the fields used for naming. A nil field had no value in the
// file; an empty string is a value.
type Metadata struct {
	Title  *string
	Artist *string
}

// Raw keys holding title and artist, across the formats dhowden/tag parses.
var (
	titleKeys  = []string{"\xa9nam", "TIT2", "TT2"}
	artistKeys = []string{"\xa9ART", "TPE1", "TP1"}
)

// Reader dispatches on the file extension.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read opens path on fsys and extracts its title and artist.
func (r *Reader) Read(fsys afero.Fs, path string) (Metadata, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer func() { _ = f.Close() }()

	if strings.ToLower(filepath.Ext(path)) == ExtMP3 {
		return readMP3(f)
	}
	return readGeneric(f, false)
}

// readMP3 prefers the ID3v2 frames and only falls back to the generic
// reader when neither TIT2 nor TPE1 is present.
func readMP3(rs io.ReadSeeker) (Metadata, error) {
	t, err := id3v2.ParseReader(rs, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Title", "Artist"},
	})
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: id3v2: %v", ErrRead, err)
	}

	var md Metadata
	if t.GetLastFrame(t.CommonID("Title")) != nil {
		md.Title = ptr(t.Title())
	}
	if t.GetLastFrame(t.CommonID("Artist")) != nil {
		md.Artist = ptr(t.Artist())
	}
	if md.Title != nil || md.Artist != nil {
		return md, nil
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return readGeneric(rs, true)
}

// readGeneric reads any format dhowden/tag knows. When noTagsOK is set a file
// without any recognised tag block yields empty Metadata instead of an error.
func readGeneric(rs io.ReadSeeker, noTagsOK bool) (Metadata, error) {
	m, err := tag.ReadFrom(rs)
	if err != nil {
		if noTagsOK && errors.Is(err, tag.ErrNoTagsFound) {
			return Metadata{}, nil
		}
		return Metadata{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return fromTag(m), nil
}

func fromTag(m tag.Metadata) Metadata {
	// ID3v1 fields are fixed width and always there; empty means unset.
	if m.Format() == tag.ID3v1 {
		return Metadata{Title: nonEmpty(m.Title()), Artist: nonEmpty(m.Artist())}
	}

	raw := m.Raw()
	var md Metadata
	if hasAny(raw, titleKeys) {
		md.Title = ptr(m.Title())
	}
	if hasAny(raw, artistKeys) {
		md.Artist = ptr(m.Artist())
	}
	return md
}

func hasAny(raw map[string]interface{}, keys []string) bool {
	for _, k := range keys {
		if _, ok := raw[k]; ok {
			return true
		}
	}
	return false
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr(s string) *string {
	return &s
}
