// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	m := Manifest{
		Source:      "/tmp/mackup/applications",
		Output:      "data/default_db.json",
		Processed:   512,
		Skipped:     3,
		OutputBytes: 48213,
		Timestamp:   time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, Write(path, m))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, &m, got)
}

func TestWrite_OverwritesCleanly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")

	require.NoError(t, Write(path, Manifest{Processed: 1}))
	require.NoError(t, Write(path, Manifest{Processed: 2}))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Processed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left beside the manifest")
	assert.Equal(t, "manifest.yaml", entries[0].Name())
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRead_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "malformed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unclosed"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}
