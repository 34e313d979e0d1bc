// ABOUTME: Schema definition for sync bookkeeping tables
// ABOUTME: Tracks bulk sync attempts with status, counts, and error messages
package db

import "database/sql"

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sync_attempts (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			error_message TEXT,
			contacts INTEGER NOT NULL DEFAULT 0,
			companies INTEGER NOT NULL DEFAULT 0,
			tasks INTEGER NOT NULL DEFAULT 0,
			started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			finished_at TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_sync_attempts_started
			ON sync_attempts(started_at DESC);
	`)
	return err
}
