// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StubRecord holds the data parsed from one application stub file.
// A record lives only for the duration of one file's conversion: the
// parser produces it, exactly one writer consumes it.
type StubRecord struct {
	// ID is the stub identifier, the source file's base name without
	// extension (e.g. "sublime-text-3").
	ID string `json:"id" yaml:"id"`

	// Name is the application display name from the [application] section.
	// Empty when the stub carries none.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Paths lists file-path patterns from [configuration_files], in file order.
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty"`

	// XDGPaths lists file-path patterns from [xdg_configuration_files],
	// in file order.
	XDGPaths []string `json:"xdg_paths,omitempty" yaml:"xdg_paths,omitempty"`
}

// Empty reports whether the record carries no usable data. Empty records
// are dropped by both writers and counted as skipped.
func (r StubRecord) Empty() bool {
	return r.Name == "" && len(r.Paths) == 0 && len(r.XDGPaths) == 0
}

var titler = cases.Title(language.English)

// DisplayName returns Name, or a default derived from ID when the stub
// carries no name: hyphens become spaces and each word is title-cased,
// so "sublime-text-3" yields "Sublime Text 3".
func (r StubRecord) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return titler.String(strings.ReplaceAll(r.ID, "-", " "))
}

// EffectivePaths returns Paths when non-empty, otherwise XDGPaths. The
// two lists are never concatenated; the XDG list is purely a fallback.
func (r StubRecord) EffectivePaths() []string {
	if len(r.Paths) > 0 {
		return r.Paths
	}
	return r.XDGPaths
}
