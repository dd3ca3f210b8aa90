// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package consolidate builds a single lookup table from a batch of
// application stubs and serializes it as one JSON document, optionally
// mirrored into a SQLite index.
package consolidate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/stubconv/internal/fsx"
	"github.com/pdiddy/stubconv/internal/stub"
	"github.com/pdiddy/stubconv/pkg/types"
)

// Entry is one application's row in the consolidated table.
type Entry struct {
	// Name is the display name, falling back to the title-cased stub ID.
	Name string `json:"name"`

	// ConfigFiles is the effective path list: the standard paths when
	// any exist, otherwise the XDG paths. Never both.
	ConfigFiles []string `json:"config_files"`
}

// Table maps stub ID to its consolidated entry.
type Table map[string]Entry

// BatchResult holds the outcome of one consolidation run.
type BatchResult struct {
	Consolidated int
	Skipped      int
}

// Total returns the total number of stub files processed.
func (r BatchResult) Total() int {
	return r.Consolidated + r.Skipped
}

// Build parses every stub file in srcDir into the consolidated table,
// printing status to w. Empty and unreadable stubs are skipped and the
// batch continues. An interrupt cancels ctx and stops the batch between
// files with a non-nil error.
func Build(ctx context.Context, srcDir string, cfg types.ConsolidateConfig, w io.Writer) (Table, BatchResult, error) {
	var result BatchResult

	files, err := stub.List(srcDir, cfg.StubExt)
	if err != nil {
		return nil, result, err
	}
	fmt.Fprintf(w, "found %d stub files in %s\n", len(files), srcDir)

	table := make(Table, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, result, fmt.Errorf("interrupted: %w", err)
		}

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

		paths := rec.EffectivePaths()
		if paths == nil {
			paths = []string{}
		}
		table[rec.ID] = Entry{
			Name:        rec.DisplayName(),
			ConfigFiles: paths,
		}
		result.Consolidated++

		if cfg.ProgressInterval > 0 && result.Consolidated%cfg.ProgressInterval == 0 {
			fmt.Fprintf(w, "consolidated %d applications...\n", result.Consolidated)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d consolidated, %d skipped (total: %d)\n",
		result.Consolidated, result.Skipped, result.Total())
	return table, result, nil
}

// WriteJSON serializes the table to path as a 2-space-indented JSON
// object. Map keys marshal in sorted order, so byte output is fully
// deterministic for a given table. The write is atomic.
func WriteJSON(t Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling consolidated table: %w", err)
	}
	data = append(data, '\n')

	return fsx.WriteFile(path, data, 0o644)
}
