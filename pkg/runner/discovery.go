package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quotefmt/quotefmt/pkg/langdetect"
)

// shebangSniffLimit bounds how much of an extensionless file we read.
const shebangSniffLimit = 256

// Discover finds Python files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute file
// paths with duplicates removed.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		switch {
		case info.IsDir():
			if err := d.walkTree(ctx, absPath); err != nil {
				return nil, err
			}
		case d.allowedExplicit(absPath):
			// An explicitly named file skips extension checks: the user
			// asked for it, so only ignore globs can exclude it.
			d.add(absPath)
		}
	}

	sort.Strings(d.files)
	return d.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(workDir)
}

// discoverer accumulates matching files across all input paths.
type discoverer struct {
	workDir    string
	extensions []string
	opts       Options
	seen       map[string]struct{}
	files      []string
}

// add records a file unless already discovered through another path.
func (d *discoverer) add(path string) {
	if _, dup := d.seen[path]; dup {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

// walkTree walks one directory tree, collecting matching files into d.
func (d *discoverer) walkTree(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			return d.enterDir(root, path, entry)
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.visitSymlink(ctx, path)
		}

		d.visitFile(path, entry.Name())
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// enterDir decides whether the walk descends into a directory.
func (d *discoverer) enterDir(root, path string, entry fs.DirEntry) error {
	// Hidden directories are skipped, except the walk root itself.
	if path != root && strings.HasPrefix(entry.Name(), ".") {
		return filepath.SkipDir
	}
	if anyGlobMatch(d.rel(path), d.opts.ExcludeGlobs) {
		return filepath.SkipDir
	}
	return nil
}

// visitSymlink resolves a symlink entry. File targets go through the
// regular file checks; directory targets are walked only when
// FollowSymlinks is set, and the walk follows the resolved target so
// WalkDir's Lstat-based traversal cannot loop.
func (d *discoverer) visitSymlink(ctx context.Context, path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped silently
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Inaccessible symlink targets are skipped
	}

	if info.IsDir() {
		if !d.opts.FollowSymlinks {
			return nil
		}
		return d.walkTree(ctx, target)
	}

	d.visitFile(path, filepath.Base(path))
	return nil
}

// visitFile records a walked file when it passes the hidden-name,
// extension/shebang, and glob checks.
func (d *discoverer) visitFile(path, name string) {
	if strings.HasPrefix(name, ".") {
		return
	}
	if !d.looksLikePython(path) {
		return
	}

	rel := d.rel(path)
	if anyGlobMatch(rel, d.opts.ExcludeGlobs) {
		return
	}
	if len(d.opts.IncludeGlobs) > 0 && !anyGlobMatch(rel, d.opts.IncludeGlobs) {
		return
	}

	d.add(path)
}

// allowedExplicit checks an explicitly named file. Extension rules do not
// apply, but exclude globs still do.
func (d *discoverer) allowedExplicit(path string) bool {
	return !anyGlobMatch(d.rel(path), d.opts.ExcludeGlobs)
}

// rel makes a path relative to the working directory for glob matching.
func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// looksLikePython reports whether a walked file should be treated as
// Python source: by extension, or by shebang when it has no extension.
func (d *discoverer) looksLikePython(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		for _, e := range d.extensions {
			if strings.ToLower(e) == ext {
				return true
			}
		}
		return false
	}
	return d.opts.DetectShebang && hasPythonShebang(path)
}

// hasPythonShebang reads the head of a file and checks for a Python shebang.
func hasPythonShebang(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, shebangSniffLimit)
	n, err := f.Read(head)
	if n == 0 || (err != nil && err != io.EOF) {
		return false
	}
	return langdetect.IsPythonScript(head[:n])
}

// anyGlobMatch checks the path against every pattern.
func anyGlobMatch(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if globMatch(relPath, pattern) {
			return true
		}
	}
	return false
}

// globMatch matches a slash-normalized path against one glob pattern.
// Plain patterns use filepath.Match against the full path and the base
// name; patterns containing ** get recursive treatment.
func globMatch(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return doubleStarMatch(path, pattern)
	}

	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

// doubleStarMatch handles the ** forms: "**/x" (x anywhere), "x/**"
// (anything under x), and "x/**/y" (prefix plus suffix).
func doubleStarMatch(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	if len(parts) == 1 {
		ok, err := filepath.Match(pattern, path)
		return err == nil && ok
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	// Leading **: the suffix may match the path tail, any single path
	// component, or any subpath.
	if prefix == "" {
		if suffix == "" {
			return true
		}
		if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
			return true
		}
		for _, component := range strings.Split(path, "/") {
			if ok, err := filepath.Match(suffix, component); err == nil && ok {
				return true
			}
		}
		return false
	}

	// Trailing **: everything under (or exactly at) the prefix.
	if suffix == "" {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	// ** in the middle: prefix anchors the start, suffix the end (or the
	// base name).
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if strings.HasSuffix(path, suffix) {
		return true
	}
	ok, err := filepath.Match(suffix, filepath.Base(path))
	return err == nil && ok
}
