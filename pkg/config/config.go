// Package config defines the configuration types for quotefmt. These are
// pure data structures; loading and merging live in internal/configloader.
package config

// OutputFormat specifies how run results are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatDiff OutputFormat = "diff"
	FormatJSON OutputFormat = "json"
)

// IsValid reports whether the format is one quotefmt knows how to render.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatDiff, FormatJSON:
		return true
	default:
		return false
	}
}

// BackupsConfig controls sidecar backups when rewriting in place.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration for quotefmt.
type Config struct {
	// Extensions are the file extensions treated as Python source
	// (lowercase, with leading dot). Defaults to .py and .pyi.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// DetectShebang enables content-based detection of extensionless
	// Python scripts during discovery.
	DetectShebang bool `yaml:"detect_shebang"`

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// Backups configures sidecar backups before in-place writes.
	Backups BackupsConfig `yaml:"backups"`

	// Jobs is the number of parallel workers (0 = number of CPUs).
	Jobs int `yaml:"jobs"`

	// CLI-level options, not persisted to config files.

	// Write rewrites files in place instead of printing to stdout.
	Write bool `yaml:"-"`

	// Check reports whether files would change, without writing.
	Check bool `yaml:"-"`

	// Diff prints unified diffs instead of rewritten content.
	Diff bool `yaml:"-"`

	// ListChanged prints only the paths of files that would change.
	ListChanged bool `yaml:"-"`

	// Format selects the report format.
	Format OutputFormat `yaml:"-"`

	// NoBackups disables backup creation regardless of config.
	NoBackups bool `yaml:"-"`
}

// DefaultExtensions returns the extensions treated as Python by default.
func DefaultExtensions() []string {
	return []string{".py", ".pyi"}
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Extensions:    DefaultExtensions(),
		DetectShebang: true,
		Format:        FormatText,
	}
}

// BackupsEnabled resolves the effective backup switch.
func (c *Config) BackupsEnabled() bool {
	return c.Backups.Enabled && !c.NoBackups
}
