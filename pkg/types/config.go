// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the domain record and configuration structs shared
// across the conversion stages.
package types

// SourceConfig holds settings for locating and enumerating stub files,
// shared by both conversion modes.
type SourceConfig struct {
	// CandidateDirs lists relative subpaths probed in order beneath the
	// source root; the first that exists as a directory wins.
	CandidateDirs []string `json:"candidate_dirs" yaml:"candidate_dirs"`

	// StubExt is the stub file extension, including the dot (e.g. ".cfg").
	StubExt string `json:"stub_ext" yaml:"stub_ext"`

	// ProgressInterval is how many processed records between progress
	// lines (0 disables progress output).
	ProgressInterval int `json:"progress_interval" yaml:"progress_interval"`
}

// FlattenConfig holds settings for the flat-tree conversion mode.
type FlattenConfig struct {
	SourceConfig `yaml:",inline"`

	// OutputDir is the root under which the three flat subdirectories
	// are created.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// FlatExt is the extension for emitted per-application files,
	// including the dot (e.g. ".conf").
	FlatExt string `json:"flat_ext" yaml:"flat_ext"`
}

// ConsolidateConfig holds settings for the consolidated-table mode.
type ConsolidateConfig struct {
	SourceConfig `yaml:",inline"`

	// RepoURL is the upstream repository to clone for stub sources.
	RepoURL string `json:"repo_url" yaml:"repo_url"`

	// CloneDir is the temporary directory the repository is cloned into.
	// It is removed when the run ends, including on failure or interrupt.
	CloneDir string `json:"clone_dir" yaml:"clone_dir"`

	// OutputPath is where the consolidated JSON document is written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// SQLitePath, when set, is where the supplementary SQLite index
	// is written.
	SQLitePath string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty"`
}
