package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AnjaliPhukan/song-renamer/cmd"
	"github.com/AnjaliPhukan/song-renamer/logging"
	"github.com/AnjaliPhukan/song-renamer/types"
	"github.com/alecthomas/kong"
)

var Version = "dev"

const description = `Rename music files after their Artist and Title tags.

If the input is a file, only that file is renamed. If it is a directory,
every .mp3 and .m4a file below it is renamed, recursively.

Files end up named "<Artist> - <Title>.<ext>" in the directory they already
live in. A missing tag becomes "Unknown", and when the name is taken a
counter is appended: "<Artist> - <Title>(1).<ext>".`

type CLI struct {
	cmd.RenameCmd `embed:""`

	Version kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	logging.Sync()
	os.Exit(code)
}

// exitCode carries a kong-requested exit (--help, --version) out of the
// parser so run can return it instead of terminating the process.
type exitCode int

// run parses args, renames, and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("song-renamer"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": Version},
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "song-renamer: %v\n", err)
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	if wantsHelp(args) {
		return usage(parser, stderr)
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "song-renamer: %v\n", err)
		return 1
	}

	// Flags alone are not a request to rename anything.
	if cli.Path == "" {
		return usage(parser, stderr)
	}

	appCtx := &types.AppContext{Version: Version, Stdout: stdout, Stderr: stderr}
	if err := cli.Run(appCtx); err != nil {
		logging.Debug("rename failed: %v", err)
		return 1
	}
	return 0
}

func wantsHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "help", "-h", "--help":
		return true
	}
	return false
}

func usage(parser *kong.Kong, stderr io.Writer) int {
	ctx, err := kong.Trace(parser, nil)
	if err == nil {
		err = ctx.PrintUsage(false)
	}
	if err != nil {
		fmt.Fprintf(stderr, "song-renamer: %v\n", err)
		return 1
	}
	return 0
}
