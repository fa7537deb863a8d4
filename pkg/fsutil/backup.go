package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file's path for its sidecar backup.
const BackupSuffix = ".quotefmt.bak"

// BackupConfig controls backup behavior when rewriting files in place.
type BackupConfig struct {
	// Enabled indicates whether backups should be created before writes.
	Enabled bool
}

// BackupPath returns the sidecar backup path for a file.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the file at path to its sidecar backup unless one
// already exists. Idempotent: repeated runs never overwrite the backup, so
// the original pre-rewrite content survives multiple invocations. Returns
// true only when a backup was actually written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}

// RestoreBackup copies a file's sidecar backup back over the original and
// removes the backup. Returns ErrNotFound if no backup exists.
func RestoreBackup(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("restore backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)

	content, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("restore %s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("read backup: %w", err)
	}

	mode := os.FileMode(DefaultFileMode)
	if stat, err := os.Stat(path); err == nil {
		mode = stat.Mode()
	}

	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return fmt.Errorf("restore original: %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		return fmt.Errorf("remove backup: %w", err)
	}

	return nil
}
