package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AnjaliPhukan/song-renamer/logging"
	"github.com/AnjaliPhukan/song-renamer/music"
	"github.com/AnjaliPhukan/song-renamer/types"
	"github.com/AnjaliPhukan/song-renamer/ui"
	"github.com/AnjaliPhukan/song-renamer/utils"
	"github.com/schollz/progressbar/v3"
)

// ErrNoPath is returned when Run is called without an input path.
var ErrNoPath = errors.New("no input path given")

// RenameCmd renames a single music file, or every supported file below a
// directory, to "<Artist> - <Title><ext>" using the embedded tags.
type RenameCmd struct {
	Path     string `arg:"" optional:"" name:"path" help:"Music file or directory to rename"`
	DryRun   bool   `name:"dry-run" help:"Show what would be renamed without touching any file"`
	Verbose  bool   `short:"v" help:"Print debug logging to stderr"`
	Progress bool   `help:"Show a progress spinner on stderr while walking a directory"`
}

// Run dispatches on the kind of Path. Outcome lines are printed as they
// happen, so the returned error only signals failure to the caller.
func (cmd *RenameCmd) Run(appCtx *types.AppContext) error {
	version, stdout, stderr := types.DefaultVersion, io.Writer(os.Stdout), io.Writer(os.Stderr)
	if appCtx != nil {
		version = appCtx.Version
		if appCtx.Stdout != nil {
			stdout = appCtx.Stdout
		}
		if appCtx.Stderr != nil {
			stderr = appCtx.Stderr
		}
	}

	logging.SetVerbose(cmd.Verbose)
	defer logging.Sync()

	if cmd.Path == "" {
		return ErrNoPath
	}

	ui.Header(stdout, fmt.Sprintf("Song Renamer %s", version))

	fi, err := os.Stat(cmd.Path)
	if err != nil {
		ui.Failure(stdout, "Input path %s does not exist.", cmd.Path)
		return fmt.Errorf("%w: %s", music.ErrNotFound, cmd.Path)
	}

	if utils.IsNetworkDrive(cmd.Path) {
		logging.Warn("%s looks like a network mount, renames there may not be atomic", cmd.Path)
	}

	renamer := music.NewRenamer(stdout)
	renamer.DryRun = cmd.DryRun
	if cmd.DryRun {
		logging.Info("dry run, no file will be renamed")
	}

	if fi.IsDir() {
		return cmd.renameDirectory(renamer, stdout, stderr)
	}
	return cmd.renameFile(renamer, stdout)
}

func (cmd *RenameCmd) renameFile(renamer *music.Renamer, stdout io.Writer) error {
	res, err := renamer.RenameFile(cmd.Path)
	if err != nil {
		return err
	}
	if res.Status == music.StatusRenamed {
		ui.Success(stdout, "Input file renamed!")
	}
	return nil
}

func (cmd *RenameCmd) renameDirectory(renamer *music.Renamer, stdout, stderr io.Writer) error {
	if cmd.Progress {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("Renaming"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
		renamer.Progress = bar
		defer func() { _ = bar.Finish() }()
	}

	ui.Processing(stdout, "Renaming music files under %s", cmd.Path)
	err := renamer.RenameTree(cmd.Path)
	printSummary(stdout, renamer.Stats(), cmd.DryRun)
	if err != nil {
		return err
	}

	ui.Success(stdout, "Finished renaming everything in directory!")
	return nil
}

func printSummary(w io.Writer, s music.Stats, dryRun bool) {
	if dryRun {
		ui.Info(w, "\nPlanned: %d, unchanged: %d, skipped: %d, failed: %d", s.Planned, s.Unchanged, s.Skipped, s.Failed)
		return
	}
	ui.Info(w, "\nRenamed: %d, unchanged: %d, skipped: %d, failed: %d", s.Renamed, s.Unchanged, s.Skipped, s.Failed)
}
