package music

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnjaliPhukan/song-renamer/logging"
	"github.com/AnjaliPhukan/song-renamer/tags"
	"github.com/AnjaliPhukan/song-renamer/ui"
	"github.com/AnjaliPhukan/song-renamer/utils"
	"github.com/spf13/afero"
)

// Renamer renames music files after their embedded artist and title.
// It is not safe for concurrent use.
type Renamer struct {
	Fs       afero.Fs
	Tags     TagReader
	Out      io.Writer
	DryRun   bool
	Progress ProgressTracker

	stats Stats
}

// NewRenamer returns a Renamer on the real filesystem that prints outcomes to out
func NewRenamer(out io.Writer) *Renamer {
	return &Renamer{
		Fs:   afero.NewOsFs(),
		Tags: tags.NewReader(),
		Out:  out,
	}
}

// Stats returns the counters accumulated since the Renamer was created
func (r *Renamer) Stats() Stats {
	return r.stats
}

// validateFile runs the existence, kind and extension checks in order
func (r *Renamer) validateFile(path string) error {
	kind, _, err := classify(r.Fs, path)
	if err != nil {
		ui.Failure(r.Out, "Input path %s does not exist.", path)
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if kind != KindFile {
		ui.Warning(r.Out, "Input path %s was not a file.", path)
		r.stats.Skipped++
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	if !IsMusicFile(path) {
		ui.Warning(r.Out, "File %s was not an .mp3 or .m4a file, skipping", path)
		r.stats.Skipped++
		return fmt.Errorf("%w: %s", ErrUnsupportedType, path)
	}

	return nil
}

// readMetadata converts reader errors and panics into ErrMetadataRead.
func (r *Renamer) readMetadata(path string) (md tags.Metadata, err error) {
	defer func() {
		if p := recover(); p != nil {
			logging.Error("tag reader panicked on %s: %v", path, p)
			err = fmt.Errorf("%v", p)
		}
		if err != nil {
			ui.Failure(r.Out, "Could not read metadata from %s: %v", path, err)
			r.stats.Failed++
			err = fmt.Errorf("%w: %s: %v", ErrMetadataRead, path, err)
		}
	}()

	return r.Tags.Read(r.Fs, path)
}

// RenameFile renames a single music file to "<Artist> - <Title><ext>" in its
// own directory. Every outcome prints one line to r.Out before returning.
// On error the filesystem is left untouched.
func (r *Renamer) RenameFile(path string) (Result, error) {
	if r.Progress != nil {
		_ = r.Progress.Add(1)
	}

	if err := r.validateFile(path); err != nil {
		return Result{}, err
	}

	md, err := r.readMetadata(path)
	if err != nil {
		return Result{}, err
	}

	_, ext := utils.SplitExt(path)
	candidate := filepath.Join(filepath.Dir(path), TargetName(md, ext))
	logging.Debug("candidate for %s is %s", path, candidate)

	target, unchanged, err := resolveCollision(r.Fs, path, candidate)
	if err != nil {
		ui.Failure(r.Out, "Could not check target names for %s: %v", path, err)
		r.stats.Failed++
		return Result{}, fmt.Errorf("%w: %s: %v", ErrRenameFailed, path, err)
	}

	result := Result{Source: path, Target: target}

	if unchanged {
		result.Status = StatusUnchanged
		ui.Info(r.Out, "%s is already named correctly", path)
		r.stats.Unchanged++
		return result, nil
	}

	if r.DryRun {
		result.Status = StatusPlanned
		ui.Info(r.Out, "Would rename %s → %s", path, filepath.Base(target))
		r.stats.Planned++
		return result, nil
	}

	if err := r.renameMusicFile(path, target); err != nil {
		ui.Failure(r.Out, "Error renaming %s: %v", path, err)
		r.stats.Failed++
		return Result{}, fmt.Errorf("%w: %s: %v", ErrRenameFailed, path, err)
	}

	result.Status = StatusRenamed
	ui.Success(r.Out, "%s → %s", path, filepath.Base(target))
	r.stats.Renamed++
	return result, nil
}

// renameMusicFile performs the actual rename, refusing anything that would
// leave the source directory.
func (r *Renamer) renameMusicFile(oldPath, newPath string) error {
	if !utils.SameDir(oldPath, newPath) {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: os.ErrInvalid}
	}
	logging.Debug("renaming %s to %s", oldPath, newPath)
	return r.Fs.Rename(oldPath, newPath)
}
