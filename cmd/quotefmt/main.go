// Package main is the entry point for the quotefmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/quotefmt/quotefmt/internal/cli"
	"github.com/quotefmt/quotefmt/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrChangesFound is just a signal for the exit code, not a failure
		// worth logging.
		if !errors.Is(err, cli.ErrChangesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}

	return 0
}
