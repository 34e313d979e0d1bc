// ABOUTME: SQLite handle for the sync bookkeeping database
// ABOUTME: Opens the attempt log with WAL mode and applies the schema
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// OpenDatabase opens (creating if needed) the sync attempt log at path.
func OpenDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Single connection keeps SQLite from reporting locked-database errors
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
