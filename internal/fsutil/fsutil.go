// Package fsutil holds small filesystem helpers shared by the adapters.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafeName is returned when a filename would escape its directory.
var ErrUnsafeName = errors.New("unsafe file name")

// WriteAtomic writes data to a temp file next to path and renames it into
// place, so readers never observe a partially written file.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// JoinName joins dir and a bare file name, rejecting names that carry path
// separators or parent references.
func JoinName(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return filepath.Join(dir, name), nil
}

// SafeName replaces path separators in name so it can be used as a single
// file name.
func SafeName(name string) string {
	return strings.NewReplacer("/", "-", `\`, "-").Replace(name)
}

// Save writes data to dir under name, after replacing path separators in
// name, and returns the written path.
func Save(dir, name string, data []byte) (string, error) {
	path, err := JoinName(dir, SafeName(name))
	if err != nil {
		return "", err
	}
	if err := WriteAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
