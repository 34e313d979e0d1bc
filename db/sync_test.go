// ABOUTME: Tests for the sync attempt log
// ABOUTME: Begin/finish bookkeeping and listing order
package db

import (
	"path/filepath"
	"testing"
)

func TestBeginAndFinishAttempt(t *testing.T) {
	database, err := OpenDatabase(filepath.Join(t.TempDir(), "sync.db"))
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer database.Close()

	if err := BeginAttempt(database, "attempt-1", 2, 1, 0); err != nil {
		t.Fatalf("BeginAttempt failed: %v", err)
	}

	last, err := LastAttempt(database)
	if err != nil {
		t.Fatalf("LastAttempt failed: %v", err)
	}
	if last == nil {
		t.Fatal("expected an attempt")
	}
	if last.Status != AttemptSyncing {
		t.Errorf("Status = %q, want %q", last.Status, AttemptSyncing)
	}
	if last.Contacts != 2 || last.Companies != 1 || last.Tasks != 0 {
		t.Errorf("counts = %d/%d/%d", last.Contacts, last.Companies, last.Tasks)
	}
	if last.FinishedAt != nil {
		t.Error("expected no finish time yet")
	}

	if err := FinishAttempt(database, "attempt-1", AttemptSucceeded, nil); err != nil {
		t.Fatalf("FinishAttempt failed: %v", err)
	}

	last, err = LastAttempt(database)
	if err != nil {
		t.Fatalf("LastAttempt failed: %v", err)
	}
	if last.Status != AttemptSucceeded {
		t.Errorf("Status = %q, want %q", last.Status, AttemptSucceeded)
	}
	if last.FinishedAt == nil {
		t.Error("expected finish time")
	}
}

func TestFinishAttemptRecordsError(t *testing.T) {
	database, err := OpenDatabase(filepath.Join(t.TempDir(), "sync.db"))
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer database.Close()

	if err := BeginAttempt(database, "attempt-1", 1, 0, 0); err != nil {
		t.Fatalf("BeginAttempt failed: %v", err)
	}
	msg := "service unavailable"
	if err := FinishAttempt(database, "attempt-1", AttemptFailed, &msg); err != nil {
		t.Fatalf("FinishAttempt failed: %v", err)
	}

	last, err := LastAttempt(database)
	if err != nil {
		t.Fatalf("LastAttempt failed: %v", err)
	}
	if last.Status != AttemptFailed {
		t.Errorf("Status = %q", last.Status)
	}
	if last.ErrorMessage == nil || *last.ErrorMessage != msg {
		t.Errorf("ErrorMessage = %v", last.ErrorMessage)
	}
}

func TestFinishUnknownAttempt(t *testing.T) {
	database, err := OpenDatabase(filepath.Join(t.TempDir(), "sync.db"))
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer database.Close()

	if err := FinishAttempt(database, "missing", AttemptSucceeded, nil); err == nil {
		t.Error("expected error finishing an unknown attempt")
	}
}

func TestListAttemptsNewestFirst(t *testing.T) {
	database, err := OpenDatabase(filepath.Join(t.TempDir(), "sync.db"))
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer database.Close()

	// ulid-style ids sort with creation order; insertion order breaks ties here
	for _, id := range []string{"01A", "01B", "01C"} {
		if err := BeginAttempt(database, id, 1, 0, 0); err != nil {
			t.Fatalf("BeginAttempt(%s) failed: %v", id, err)
		}
	}

	attempts, err := ListAttempts(database, 2)
	if err != nil {
		t.Fatalf("ListAttempts failed: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != "01C" {
		t.Errorf("first attempt = %q, want newest", attempts[0].ID)
	}
}
