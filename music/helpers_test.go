package music

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/AnjaliPhukan/song-renamer/tags"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func meta(artist, title string) tags.Metadata {
	return tags.Metadata{Artist: str(artist), Title: str(title)}
}

// fakeReader returns canned metadata keyed by the path it is asked about.
type fakeReader struct {
	md   map[string]tags.Metadata
	errs map[string]error
}

func (f *fakeReader) Read(_ afero.Fs, path string) (tags.Metadata, error) {
	if err, ok := f.errs[path]; ok {
		return tags.Metadata{}, err
	}
	if md, ok := f.md[path]; ok {
		return md, nil
	}
	return tags.Metadata{}, errors.New("no fixture for " + path)
}

type panicReader struct{}

func (panicReader) Read(afero.Fs, string) (tags.Metadata, error) {
	panic("slice bounds out of range")
}

// vanishingFs lists entries normally but reports the paths in gone as
// missing on Stat, as if they were deleted right after the listing.
type vanishingFs struct {
	afero.Fs
	gone map[string]bool
}

func (v vanishingFs) Stat(name string) (os.FileInfo, error) {
	if v.gone[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
	}
	return v.Fs.Stat(name)
}

// foldingFs resolves names case-insensitively within a directory, like the
// default filesystems on macOS and Windows.
type foldingFs struct {
	afero.Fs
}

func (f foldingFs) Stat(name string) (os.FileInfo, error) {
	if fi, err := f.Fs.Stat(name); err == nil {
		return fi, nil
	}
	dir, base := filepath.Split(name)
	if entries, err := afero.ReadDir(f.Fs, dir); err == nil {
		for _, e := range entries {
			if strings.EqualFold(e.Name(), base) {
				return f.Fs.Stat(filepath.Join(dir, e.Name()))
			}
		}
	}
	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
}

func newTestRenamer() (*Renamer, afero.Fs, *fakeReader, *bytes.Buffer) {
	fs := afero.NewMemMapFs()
	reader := &fakeReader{md: map[string]tags.Metadata{}, errs: map[string]error{}}
	out := &bytes.Buffer{}
	return &Renamer{Fs: fs, Tags: reader, Out: out}, fs, reader, out
}

func touch(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	writeContent(t, fs, path, filepath.Base(path))
}

func writeContent(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func readContent(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(b)
}

// names returns the sorted base names of dir's entries.
func names(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

type countingTracker struct{ n int }

func (c *countingTracker) Add(n int) error {
	c.n += n
	return nil
}
