package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quotefmt/quotefmt/pkg/config"
)

func isolatedOptions(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected default format text, got %q", result.Config.Format)
	}
	if !result.Config.DetectShebang {
		t.Error("expected shebang detection on by default")
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("no config files should load from an empty dir, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".quotefmt.yml", `
extensions:
  - .py
  - .pyx
ignore:
  - "build/*"
jobs: 4
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != ".pyx" {
		t.Errorf("extensions not applied: %v", cfg.Extensions)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "build/*" {
		t.Errorf("ignore not applied: %v", cfg.Ignore)
	}
	if cfg.Jobs != 4 {
		t.Errorf("jobs not applied: %d", cfg.Jobs)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected one loaded file, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".quotefmt.yml", "jobs: 2\n")

	nested := filepath.Join(tmpDir, "src", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolatedOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Jobs != 2 {
		t.Errorf("upward search missed the project config, jobs = %d", result.Config.Jobs)
	}
}

func TestLoad_UpwardSearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".quotefmt.yml", "jobs: 7\n")

	// The nested repo root shields its subtree from the outer config.
	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(repo, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolatedOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Jobs == 7 {
		t.Error("search should stop at the VCS root before reaching the outer config")
	}
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".quotefmt.yml", "jobs: 2\n")
	explicit := writeConfig(t, tmpDir, "special.yml", "jobs: 8\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Jobs != 8 {
		t.Errorf("explicit config should win over project, jobs = %d", result.Config.Jobs)
	}
	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected both files loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverridesEverything(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".quotefmt.yml", "jobs: 2\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{Jobs: 16, Format: config.FormatDiff}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Jobs != 16 {
		t.Errorf("CLI jobs should win, got %d", result.Config.Jobs)
	}
	if result.Config.Format != config.FormatDiff {
		t.Errorf("CLI format should win, got %q", result.Config.Format)
	}
}

func TestLoad_EnvOverridesProject(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".quotefmt.yml", "jobs: 2\n")

	t.Setenv("QUOTEFMT_JOBS", "5")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Jobs != 5 {
		t.Errorf("env jobs should win over project, got %d", result.Config.Jobs)
	}
}

func TestLoad_InvalidConfigFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"negative jobs", "jobs: -1\n"},
		{"extension without dot", "extensions:\n  - py\n"},
		{"malformed glob", "ignore:\n  - '[unclosed'\n"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			explicit := writeConfig(t, tmpDir, "bad.yml", testCase.content)

			opts := isolatedOptions(tmpDir)
			opts.ExplicitPath = explicit

			_, err := Load(context.Background(), opts)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestLoad_InvalidCLIFormatFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{Format: "xml"}

	_, err := Load(context.Background(), opts)
	if err == nil {
		t.Fatal("expected validation error for invalid format")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "format" {
		t.Errorf("expected format validation error, got %v", err)
	}
}

func TestLoad_MissingExplicitConfigFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = filepath.Join(tmpDir, "absent.yml")

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	explicit := writeConfig(t, tmpDir, "bad.yml", "jobs: [not an int\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected YAML parse error")
	}
}
