// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stub locates and parses per-application stub files: small
// INI-style texts, one per application, listing the file paths a dotfile
// manager tracks for it.
package stub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locate probes the candidate subpaths beneath root in order and returns
// the first that exists as a directory. It fails when none does; the
// whole run stops there, no partial processing.
func Locate(root string, candidates []string) (string, error) {
	for _, rel := range candidates {
		dir := filepath.Join(root, rel)
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("source layout not found under %s (tried: %s)",
		root, strings.Join(candidates, ", "))
}

// List returns the paths of all stub files in dir, i.e. regular files
// whose name ends in ext. Order is whatever the directory listing gives;
// each file becomes an independently keyed record, so order does not
// affect output.
func List(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading stub directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ext {
			continue
		}
		// A file named exactly the extension (e.g. ".cfg") has an empty
		// stem and cannot key a record.
		if entry.Name() == ext {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
