// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes an optional run manifest: a small YAML document
// recording what a conversion run read, wrote, and counted.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/stubconv/internal/fsx"
)

// Manifest is the on-disk record of one conversion run.
type Manifest struct {
	// Source is the stub directory the run read from.
	Source string `yaml:"source"`

	// Output is the output root (flat tree) or document path (table).
	Output string `yaml:"output"`

	// Processed counts records emitted to the output.
	Processed int `yaml:"processed"`

	// Skipped counts stub files dropped for parse failure or lack of data.
	Skipped int `yaml:"skipped"`

	// OutputBytes is the consolidated document's size; zero for the
	// flat-tree mode.
	OutputBytes int64 `yaml:"output_bytes,omitempty"`

	// Timestamp is when the run finished.
	Timestamp time.Time `yaml:"timestamp"`
}

// Write saves the manifest to a YAML file at path. The write is atomic,
// like every other output this tool produces.
func Write(path string, m Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return fsx.WriteFile(path, data, 0o644)
}

// Read loads a previously written manifest from path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
