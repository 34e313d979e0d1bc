// ABOUTME: Database operations for the sync_attempts table
// ABOUTME: Records bulk sync attempts so the status command can report history
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Attempt status values.
const (
	AttemptSyncing   = "syncing"
	AttemptSucceeded = "succeeded"
	AttemptFailed    = "failed"
)

// SyncAttempt is one recorded bulk sync attempt.
type SyncAttempt struct {
	ID           string
	Status       string
	ErrorMessage *string
	Contacts     int
	Companies    int
	Tasks        int
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// BeginAttempt records a new attempt in the syncing state.
func BeginAttempt(db *sql.DB, id string, contacts, companies, tasks int) error {
	_, err := db.Exec(`
		INSERT INTO sync_attempts (id, status, contacts, companies, tasks, started_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, id, AttemptSyncing, contacts, companies, tasks)

	if err != nil {
		return fmt.Errorf("failed to record sync attempt: %w", err)
	}

	return nil
}

// FinishAttempt marks an attempt succeeded or failed.
func FinishAttempt(db *sql.DB, id, status string, errorMsg *string) error {
	var errorMsgVal sql.NullString
	if errorMsg != nil {
		errorMsgVal = sql.NullString{String: *errorMsg, Valid: true}
	}

	res, err := db.Exec(`
		UPDATE sync_attempts
		SET status = ?, error_message = ?, finished_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, status, errorMsgVal, id)

	if err != nil {
		return fmt.Errorf("failed to finish sync attempt: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("sync attempt not found: %s", id)
	}

	return nil
}

// LastAttempt returns the most recent attempt, or nil when none exist.
func LastAttempt(db *sql.DB) (*SyncAttempt, error) {
	attempts, err := ListAttempts(db, 1)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	return &attempts[0], nil
}

// ListAttempts returns attempts newest-first.
func ListAttempts(db *sql.DB, limit int) ([]SyncAttempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT id, status, error_message, contacts, companies, tasks, started_at, finished_at
		FROM sync_attempts
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var attempts []SyncAttempt
	for rows.Next() {
		var a SyncAttempt
		var errorMessage sql.NullString
		var finishedAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.Status,
			&errorMessage,
			&a.Contacts,
			&a.Companies,
			&a.Tasks,
			&a.StartedAt,
			&finishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync attempt: %w", err)
		}

		if errorMessage.Valid {
			a.ErrorMessage = &errorMessage.String
		}
		if finishedAt.Valid {
			a.FinishedAt = &finishedAt.Time
		}

		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sync attempts: %w", err)
	}

	return attempts, nil
}
