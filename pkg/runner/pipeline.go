package runner

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quotefmt/quotefmt/pkg/config"
	"github.com/quotefmt/quotefmt/pkg/fix"
	"github.com/quotefmt/quotefmt/pkg/fsutil"
	"github.com/quotefmt/quotefmt/pkg/rewrite"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Changed is true if rewriting produced different content.
	Changed bool

	// RewrittenContent is the content after quote normalization
	// (nil when unchanged).
	RewrittenContent []byte

	// EditsApplied is the number of string literals rewritten.
	EditsApplied int

	// Diff is the unified diff (nil unless diff mode requested one).
	Diff *fix.Diff

	// Skipped is true if the file was skipped (e.g., concurrent modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "rewritten (backup created)"
	case pr.Written:
		return "rewritten"
	case pr.Changed:
		return "changes pending"
	default:
		return "ok"
	}
}

// PipelineOptions controls per-file pipeline behavior.
type PipelineOptions struct {
	// Write rewrites files in place.
	Write bool

	// WantDiff generates a unified diff for changed files.
	WantDiff bool

	// Backup configures backup behavior for in-place writes.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// Verify re-parses the rewritten content before it is accepted. A file
	// whose output no longer tokenizes is skipped rather than written.
	Verify bool
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		StrictRaceDetection: true,
		Verify:              true,
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Write:               cfg.Write,
		WantDiff:            cfg.Diff || cfg.Format == config.FormatDiff,
		Backup:              fsutil.BackupConfig{Enabled: cfg.BackupsEnabled()},
		StrictRaceDetection: true,
		Verify:              true,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct{}

// NewPipeline creates a new pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// ProcessFile runs the full pipeline for a single file.
//
// The pipeline performs the following steps:
//  1. Read and hash the original file.
//  2. Parse and rewrite quote delimiters in memory.
//  3. Optionally verify the rewritten content still parses.
//  4. Generate a diff (diff mode).
//  5. Check for concurrent modifications.
//  6. Create a backup (if enabled).
//  7. Write the rewritten content atomically (write mode).
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	opts PipelineOptions,
) (*PipelineResult, error) {
	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result := &PipelineResult{
		Path:         path,
		OriginalInfo: info,
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	rw, err := rewrite.Source(path, originalContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	result.Changed = rw.Changed
	result.EditsApplied = len(rw.Edits)

	if !rw.Changed {
		return result, nil
	}
	result.RewrittenContent = rw.Content

	if opts.Verify {
		if _, err := rewrite.Source(path, rw.Content); err != nil {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("rewritten content failed to parse: %v", err)
			result.Changed = false
			result.RewrittenContent = nil
			return result, nil
		}
	}

	if opts.WantDiff {
		result.Diff = fix.GenerateDiff(path, originalContent, rw.Content)
	}

	if !opts.Write {
		return result, nil
	}

	modified, err := checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, rw.Content, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent processes in-memory content without file I/O.
// This is the path used for stdin input and in tests.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	rw, err := rewrite.Source(path, originalContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	result.Changed = rw.Changed
	result.EditsApplied = len(rw.Edits)

	if !rw.Changed {
		return result, nil
	}
	result.RewrittenContent = rw.Content

	if opts.Verify {
		if _, err := rewrite.Source(path, rw.Content); err != nil {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("rewritten content failed to parse: %v", err)
			result.Changed = false
			result.RewrittenContent = nil
			return result, nil
		}
	}

	if opts.WantDiff {
		result.Diff = fix.GenerateDiff(path, originalContent, rw.Content)
	}

	return result, nil
}

// checkModified checks if a file has been modified since it was read.
func checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure)
}
