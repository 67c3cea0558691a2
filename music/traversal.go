package music

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnjaliPhukan/song-renamer/logging"
	"github.com/AnjaliPhukan/song-renamer/ui"
	"github.com/spf13/afero"
)

// RenameTree renames every supported file below root, depth first.
//
// Files that fail individually (unsupported type, unreadable tags, failed
// rename) are reported and skipped. An entry that disappears between listing
// and processing aborts the walk with ErrMissingDuringTraversal, and any
// error from a subdirectory aborts its parents too. Files renamed before the
// abort stay renamed.
func (r *Renamer) RenameTree(root string) error {
	kind, _, err := classify(r.Fs, root)
	if err != nil {
		ui.Failure(r.Out, "Input path %s does not exist.", root)
		return fmt.Errorf("%w: %s", ErrNotFound, root)
	}
	if kind != KindDir {
		ui.Failure(r.Out, "Input path %s was not a directory.", root)
		return fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	entries, err := afero.ReadDir(r.Fs, root)
	if err != nil {
		ui.Failure(r.Out, "Could not list %s: %v", root, err)
		return fmt.Errorf("%w: %s: %v", ErrNotFound, root, err)
	}
	logging.Debug("listed %d entries in %s", len(entries), root)

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		// Re-check right before acting; the listing may be stale.
		kind, _, err := classify(r.Fs, path)
		if err != nil {
			ui.Failure(r.Out, "File path %s does not exist. Aborting.", path)
			return fmt.Errorf("%w: %s", ErrMissingDuringTraversal, path)
		}

		switch kind {
		case KindFile:
			if _, err := r.RenameFile(path); err != nil {
				logging.Debug("skipped %s: %v", path, err)
			}
		case KindDir:
			if entry.Mode()&os.ModeSymlink != 0 {
				ui.Warning(r.Out, "Not following symlinked directory %s", path)
				r.stats.Skipped++
				continue
			}
			if err := r.RenameTree(path); err != nil {
				return err
			}
		default:
			ui.Warning(r.Out, "%s is neither a file nor a directory, skipping", path)
			r.stats.Skipped++
		}
	}

	return nil
}
