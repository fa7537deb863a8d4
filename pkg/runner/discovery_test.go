package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quotefmt/quotefmt/pkg/runner"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()

	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscover_ByExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.py":       "x = 1\n",
		"types.pyi":     "x: int\n",
		"readme.md":     "# doc\n",
		"pkg/util.py":   "y = 2\n",
		"pkg/data.json": "{}\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: root,
	})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	got := relPaths(t, root, files)
	expected := []string{"main.py", "pkg/util.py", "types.pyi"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("file %d: expected %s, got %s", i, want, got[i])
		}
	}
}

func TestDiscover_SortedAndDeduplicated(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.py": "x = 1\n",
		"a.py": "x = 1\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: root,
		Paths:      []string{".", "a.py", "b.py"},
	})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	got := relPaths(t, root, files)
	if len(got) != 2 || got[0] != "a.py" || got[1] != "b.py" {
		t.Errorf("expected sorted deduplicated [a.py b.py], got %v", got)
	}
}

func TestDiscover_HiddenDirectoriesSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"visible.py":          "x = 1\n",
		".venv/lib/hidden.py": "x = 1\n",
		".git/hook.py":        "x = 1\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: root,
	})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	got := relPaths(t, root, files)
	if len(got) != 1 || got[0] != "visible.py" {
		t.Errorf("expected only visible.py, got %v", got)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.py":             "x = 1\n",
		"build/generated.py":  "x = 1\n",
		"pkg/test_skipme.py":  "x = 1\n",
		"pkg/keep_nested.py":  "x = 1\n",
		"vendor/dep/thing.py": "x = 1\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   root,
		ExcludeGlobs: []string{"build/*", "**/test_*.py", "vendor/**"},
	})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	got := relPaths(t, root, files)
	expected := []string{"keep.py", "pkg/keep_nested.py"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("file %d: expected %s, got %s", i, want, got[i])
		}
	}
}

func TestDiscover_ExplicitFileSkipsExtensionCheck(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"script": "#!/usr/bin/env python3\nx = 1\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: root,
		Paths:      []string{"script"},
	})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	got := relPaths(t, root, files)
	if len(got) != 1 || got[0] != "script" {
		t.Errorf("explicitly named file should be discovered, got %v", got)
	}
}

func TestDiscover_ExplicitFileStillHonorsExcludes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"generated.py": "x = 1\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   root,
		Paths:        []string{"generated.py"},
		ExcludeGlobs: []string{"generated.py"},
	})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("excluded explicit file should be dropped, got %v", files)
	}
}

func TestDiscover_ShebangDetection(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"bin/manage":  "#!/usr/bin/env python3\nx = 1\n",
		"bin/deploy":  "#!/bin/bash\necho hi\n",
		"bin/notes":   "just some text\n",
		"regular.py":  "x = 1\n",
		"named.patch": "--- a\n+++ b\n",
	})

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()

		files, err := runner.Discover(context.Background(), runner.Options{
			WorkingDir:    root,
			DetectShebang: true,
		})
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}

		got := relPaths(t, root, files)
		expected := []string{"bin/manage", "regular.py"}
		if len(got) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, got)
		}
		for i, want := range expected {
			if got[i] != want {
				t.Errorf("file %d: expected %s, got %s", i, want, got[i])
			}
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		files, err := runner.Discover(context.Background(), runner.Options{
			WorkingDir: root,
		})
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}

		got := relPaths(t, root, files)
		if len(got) != 1 || got[0] != "regular.py" {
			t.Errorf("expected only regular.py, got %v", got)
		}
	})
}

func TestDiscover_MissingPathFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: root,
		Paths:      []string{"no-such-dir"},
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"mod.pyx": "x = 1\n",
		"mod.py":  "x = 1\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: root,
		Extensions: []string{".pyx"},
	})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	got := relPaths(t, root, files)
	if len(got) != 1 || got[0] != "mod.pyx" {
		t.Errorf("expected only mod.pyx, got %v", got)
	}
}
