package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldWrite   = "write"
	FieldCheck   = "check"
	FieldDiff    = "diff"
	FieldJobs    = "jobs"
	FieldBackups = "backups"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesProcessed    = "files_processed"
	FieldFilesRewritten    = "files_rewritten"
	FieldFilesErrored      = "files_errored"
	FieldLiteralsRewritten = "literals_rewritten"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Parse fields.
	FieldLine   = "line"
	FieldColumn = "column"
	FieldOffset = "offset"
)
