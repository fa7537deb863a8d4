package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer receives report output, os.Stdout in the CLI.
	Writer io.Writer

	// ErrorWriter receives per-file error lines, os.Stderr in the CLI.
	ErrorWriter io.Writer

	// Format selects the reporter implementation.
	Format Format

	// Color is the color mode: "auto", "always", or "never".
	Color string

	// ShowSummary appends the aggregate summary after per-file output.
	ShowSummary bool

	// Compact minifies output where the format supports it.
	Compact bool

	// WorkingDir, when set, is stripped from reported paths so output
	// shows paths relative to the invocation directory.
	WorkingDir string
}

// DefaultOptions returns Options matching a plain CLI invocation.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}
