// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flatten explodes application stubs into a flat directory tree:
// three parallel subdirectories holding, per application, its display
// name, its standard path list, and its XDG path list.
package flatten

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/stubconv/internal/fsx"
	"github.com/pdiddy/stubconv/internal/stub"
	"github.com/pdiddy/stubconv/pkg/types"
)

// Output subdirectories created under the output root.
const (
	appsDir  = "applications"
	pathsDir = "configuration_files"
	xdgDir   = "xdg_configuration_files"
)

// BatchResult holds the outcome of one flatten run.
type BatchResult struct {
	Flattened int
	Skipped   int
}

// Total returns the total number of stub files processed.
func (r BatchResult) Total() int {
	return r.Flattened + r.Skipped
}

// Run converts every stub file in srcDir into the flat tree under
// cfg.OutputDir, printing per-file status to w and returning a summary.
// Per-file failures and empty stubs are counted as skipped and the batch
// continues; only structural failures (unreadable source directory,
// unwritable output root) stop the run.
func Run(srcDir string, cfg types.FlattenConfig, w io.Writer) (BatchResult, error) {
	var result BatchResult

	files, err := stub.List(srcDir, cfg.StubExt)
	if err != nil {
		return result, err
	}
	fmt.Fprintf(w, "found %d stub files in %s\n", len(files), srcDir)

	for _, sub := range []string{appsDir, pathsDir, xdgDir} {
		dir := filepath.Join(cfg.OutputDir, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	for _, path := range files {
		rec, err := stub.ParseFile(path)
		if err != nil {
			fmt.Fprintf(w, "skipped: %s (%v)\n", filepath.Base(path), err)
			result.Skipped++
			continue
		}
		if rec.Empty() {
			fmt.Fprintf(w, "skipped: %s (no usable data)\n", rec.ID)
			result.Skipped++
			continue
		}

		if err := writeRecord(rec, cfg.OutputDir, cfg.FlatExt); err != nil {
			return result, err
		}
		result.Flattened++

		if cfg.ProgressInterval > 0 && result.Flattened%cfg.ProgressInterval == 0 {
			fmt.Fprintf(w, "flattened %d applications...\n", result.Flattened)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d flattened, %d skipped (total: %d)\n",
		result.Flattened, result.Skipped, result.Total())
	return result, nil
}

// writeRecord materializes one record as up to three same-named files.
// The name file is omitted when the stub has no display name; the two
// path listings are always written, a zero-byte file standing in for an
// empty list so every application stays discoverable in all three trees.
func writeRecord(rec types.StubRecord, outDir, ext string) error {
	if rec.Name != "" {
		path := filepath.Join(outDir, appsDir, rec.ID+ext)
		content := fmt.Sprintf("name = %s\n", rec.Name)
		if err := fsx.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}

	if err := writeListing(filepath.Join(outDir, pathsDir, rec.ID+ext), rec.Paths); err != nil {
		return err
	}
	return writeListing(filepath.Join(outDir, xdgDir, rec.ID+ext), rec.XDGPaths)
}

// writeListing writes one newline-terminated path pattern per line, or a
// zero-byte file when the list is empty.
func writeListing(path string, patterns []string) error {
	var b strings.Builder
	for _, p := range patterns {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return fsx.WriteFile(path, []byte(b.String()), 0o644)
}
