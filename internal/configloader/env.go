package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quotefmt/quotefmt/pkg/config"
)

// envVarPrefix is the prefix for all quotefmt environment variables.
const envVarPrefix = "QUOTEFMT_"

// envVar binds one QUOTEFMT_* variable to a config field. The apply
// closure parses the raw value and writes it into the config.
type envVar struct {
	suffix string // variable name without the QUOTEFMT_ prefix
	field  string // config field path, as reported in validation errors
	desc   string
	apply  func(cfg *config.Config, raw string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{
		suffix: "FORMAT",
		field:  "format",
		desc:   "Output format: text, diff, or json",
		apply: func(cfg *config.Config, raw string) error {
			cfg.Format = config.OutputFormat(raw)
			return nil
		},
	},
	{
		suffix: "JOBS",
		field:  "jobs",
		desc:   "Number of parallel workers (0 = auto)",
		apply: func(cfg *config.Config, raw string) error {
			n, err := envInt(raw, "QUOTEFMT_JOBS")
			if err != nil {
				return err
			}
			cfg.Jobs = n
			return nil
		},
	},
	{
		suffix: "EXTENSIONS",
		field:  "extensions",
		desc:   "Comma-separated list of Python file extensions",
		apply: func(cfg *config.Config, raw string) error {
			cfg.Extensions = splitCommaList(raw)
			return nil
		},
	},
	{
		suffix: "IGNORE",
		field:  "ignore",
		desc:   "Comma-separated list of ignore patterns",
		apply: func(cfg *config.Config, raw string) error {
			cfg.Ignore = splitCommaList(raw)
			return nil
		},
	},
	{
		suffix: "DETECT_SHEBANG",
		field:  "detect_shebang",
		desc:   "Detect extensionless Python scripts by shebang: true or false",
		apply: func(cfg *config.Config, raw string) error {
			b, err := envBool(raw, "QUOTEFMT_DETECT_SHEBANG")
			if err != nil {
				return err
			}
			cfg.DetectShebang = b
			return nil
		},
	},
	{
		suffix: "FOLLOW_SYMLINKS",
		field:  "follow_symlinks",
		desc:   "Follow directory symlinks: true or false",
		apply: func(cfg *config.Config, raw string) error {
			b, err := envBool(raw, "QUOTEFMT_FOLLOW_SYMLINKS")
			if err != nil {
				return err
			}
			cfg.FollowSymlinks = b
			return nil
		},
	},
	{
		suffix: "BACKUPS_ENABLED",
		field:  "backups.enabled",
		desc:   "Create backups before in-place writes: true or false",
		apply: func(cfg *config.Config, raw string) error {
			b, err := envBool(raw, "QUOTEFMT_BACKUPS_ENABLED")
			if err != nil {
				return err
			}
			cfg.Backups.Enabled = b
			return nil
		},
	},
	{
		suffix: "NO_BACKUPS",
		field:  "no_backups",
		desc:   "Disable backups: true or false",
		apply: func(cfg *config.Config, raw string) error {
			b, err := envBool(raw, "QUOTEFMT_NO_BACKUPS")
			if err != nil {
				return err
			}
			cfg.NoBackups = b
			return nil
		},
	},
}

// LoadFromEnv applies QUOTEFMT_* environment overrides to the config.
// Unset and empty variables leave the config untouched.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, v := range envVars {
		raw := os.Getenv(envVarPrefix + v.suffix)
		if raw == "" {
			continue
		}
		if err := v.apply(cfg, raw); err != nil {
			return err
		}
	}
	return nil
}

func envBool(raw, name string) (bool, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", name, raw)
	}
	return b, nil
}

func envInt(raw, name string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", name, raw)
	}
	return n, nil
}

// splitCommaList splits a comma-separated value, trimming whitespace and
// dropping empty elements.
func splitCommaList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetEnvVarName returns the environment variable overriding the given
// config field, or empty string when the field has no override.
func GetEnvVarName(field string) string {
	for _, v := range envVars {
		if v.field == field {
			return envVarPrefix + v.suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported environment variable with its
// description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for _, v := range envVars {
		out[envVarPrefix+v.suffix] = v.desc
	}
	return out
}
