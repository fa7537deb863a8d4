package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/quotefmt/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/quotefmt/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.quotefmt.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigNames are the project config file names, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{
	".quotefmt.yml",
	".quotefmt.yaml",
	"quotefmt.yml",
	"quotefmt.yaml",
}

// dirConfigNames are the config file names inside system/user config
// directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var dirConfigNames = []string{"config.yaml", "config.yml"}

// vcsMarkers are directory names that mark a repository root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations: the
// system config directory, the XDG user config directory, and the project
// tree (upward search from workDir). A missing file is an empty string,
// not an error.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstExisting(systemConfigDir(), dirConfigNames),
		User:    firstExisting(userConfigDir(), dirConfigNames),
		Project: project,
	}, nil
}

// systemConfigDir returns the platform's system config directory.
func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, "quotefmt")
	}
	return "/etc/quotefmt"
}

// userConfigDir returns the XDG user config directory for quotefmt.
func userConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quotefmt")
}

// firstExisting returns the first name under dir that exists as a regular
// file, or empty string.
func firstExisting(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if isRegularFile(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config
// file. The search stops without a result at a VCS root (config outside
// the repository does not apply), at the home directory, or at the
// filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if found := firstExisting(dir, projectConfigNames); found != "" {
			return found, nil
		}

		parent := filepath.Dir(dir)
		atBoundary := hasVCSMarker(dir) ||
			(home != "" && dir == home) ||
			parent == dir
		if atBoundary {
			return "", nil
		}
		dir = parent
	}
}

// hasVCSMarker reports whether dir contains a repository root marker.
func hasVCSMarker(dir string) bool {
	for _, marker := range vcsMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// isRegularFile reports whether path exists and is not a directory.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
