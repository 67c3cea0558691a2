package music

import (
	"github.com/AnjaliPhukan/song-renamer/tags"
	"github.com/spf13/afero"
)

// Placeholder replaces a tag field that has no value.
const Placeholder = "Unknown"

// EntryKind classifies a path at the moment it was inspected
type EntryKind int

const (
	KindOther EntryKind = iota
	KindFile
	KindDir
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "other"
	}
}

// Status describes what RenameFile did with a file
type Status int

const (
	// StatusRenamed means the file now lives at Result.Target.
	StatusRenamed Status = iota
	// StatusUnchanged means the file already had its canonical name.
	StatusUnchanged
	// StatusPlanned means a dry run computed Result.Target without renaming.
	StatusPlanned
)

// Result contains the outcome of a successful RenameFile call
type Result struct {
	Source string
	Target string
	Status Status
}

// Stats counts outcomes across a run
type Stats struct {
	Renamed   int
	Unchanged int
	Planned   int
	Skipped   int // unsupported or non-regular entries
	Failed    int // metadata or rename failures
}

// TagReader extracts title and artist from a file
type TagReader interface {
	Read(fsys afero.Fs, path string) (tags.Metadata, error)
}

// ProgressTracker is advanced once per file visited.
// *progressbar.ProgressBar satisfies it.
type ProgressTracker interface {
	Add(n int) error
}
