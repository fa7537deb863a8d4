package cli

import "errors"

// Exit codes for quotefmt.
const (
	// ExitSuccess indicates successful execution with no pending changes.
	ExitSuccess = 0

	// ExitChangesFound indicates files would change (check mode) or
	// files failed to process.
	ExitChangesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors carried out of commands so main can pick an exit code
// without string matching.
var (
	// ErrChangesFound signals that check mode found files needing rewriting.
	ErrChangesFound = errors.New("files would be rewritten")

	// ErrFilesErrored signals that one or more files failed to process.
	ErrFilesErrored = errors.New("some files failed to process")

	// ErrConfig signals a configuration problem.
	ErrConfig = errors.New("configuration error")

	// ErrIO signals a file I/O failure.
	ErrIO = errors.New("i/o error")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesFound), errors.Is(err, ErrFilesErrored):
		return ExitChangesFound
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitChangesFound
	}
}
