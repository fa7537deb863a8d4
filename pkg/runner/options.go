// Package runner provides multi-file rewrite orchestration.
package runner

import "github.com/quotefmt/quotefmt/pkg/config"

// Options controls multi-file rewriting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Python. Defaults to [".py", ".pyi"] via config.DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// DetectShebang enables content sniffing so extensionless scripts
	// with a Python shebang are discovered too.
	DetectShebang bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// OptionsFromConfig builds runner Options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string, workDir string) Options {
	opts := Options{
		Paths:      paths,
		WorkingDir: workDir,
		Config:     cfg,
	}
	if cfg != nil {
		opts.Extensions = cfg.Extensions
		opts.ExcludeGlobs = cfg.Ignore
		opts.DetectShebang = cfg.DetectShebang
		opts.FollowSymlinks = cfg.FollowSymlinks
		opts.Jobs = cfg.Jobs
	}
	return opts
}
