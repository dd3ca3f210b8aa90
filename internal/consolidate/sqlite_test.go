// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package consolidate

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSQLite(t *testing.T) {
	table := Table{
		"zsh":   {Name: "Zsh", ConfigFiles: []string{".zshrc", ".zprofile"}},
		"alpha": {Name: "Alpha", ConfigFiles: []string{}},
	}

	path := filepath.Join(t.TempDir(), "index", "stubs.db")
	require.NoError(t, WriteSQLite(table, path))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT id, name, config_files FROM stubs ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	type row struct{ id, name, files string }
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.id, &r.name, &r.files))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []row{
		{id: "alpha", name: "Alpha", files: "[]"},
		{id: "zsh", name: "Zsh", files: `[".zshrc",".zprofile"]`},
	}, got)
}

func TestWriteSQLite_RecreatesIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stubs.db")

	require.NoError(t, WriteSQLite(Table{
		"old": {Name: "Old", ConfigFiles: []string{".oldrc"}},
	}, path))
	require.NoError(t, WriteSQLite(Table{
		"new": {Name: "New", ConfigFiles: []string{".newrc"}},
	}, path))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM stubs WHERE id = 'old'`).Scan(&count))
	assert.Zero(t, count, "previous run's rows should be gone")

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM stubs`).Scan(&count))
	assert.Equal(t, 1, count)
}
