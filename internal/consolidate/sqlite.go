// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package consolidate

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
)

// WriteSQLite mirrors the consolidated table into a SQLite index at path,
// one row per application with the effective path list stored as a JSON
// array string. The index is recreated from scratch on every run and rows
// are inserted in sorted key order inside one transaction.
func WriteSQLite(t Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating index directory %s: %w", dir, err)
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing previous index %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening index database: %w", err)
	}
	defer db.Close()

	const schema = `CREATE TABLE stubs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		config_files TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	insert, err := tx.Prepare(`INSERT INTO stubs (id, name, config_files) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	for _, id := range ids {
		entry := t[id]
		files, err := json.Marshal(entry.ConfigFiles)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshaling paths for %s: %w", id, err)
		}
		if _, err := insert.Exec(id, entry.Name, string(files)); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index: %w", err)
	}
	return nil
}
