// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fsx provides crash-safe file writes for the output writers.
package fsx

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to path through a temp file in the same directory,
// renaming it into place. An interrupted run therefore never leaves a
// partially written output file; re-running overwrites, never appends.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file for %s: %w", path, closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	return nil
}
