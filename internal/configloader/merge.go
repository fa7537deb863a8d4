package configloader

import "github.com/quotefmt/quotefmt/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: only a true in override is visible; config files cannot
//     unset a boolean set by a lower-precedence source
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans: false is the zero value, so only true overrides.
	if override.Write {
		result.Write = override.Write
	}
	if override.Check {
		result.Check = override.Check
	}
	if override.Diff {
		result.Diff = override.Diff
	}
	if override.ListChanged {
		result.ListChanged = override.ListChanged
	}
	if override.NoBackups {
		result.NoBackups = override.NoBackups
	}
	if override.DetectShebang {
		result.DetectShebang = override.DetectShebang
	}
	if override.FollowSymlinks {
		result.FollowSymlinks = override.FollowSymlinks
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = override.Backups.Enabled
	}

	// Slices: override replaces base entirely if non-nil
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
