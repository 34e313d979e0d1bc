// ABOUTME: Durable local store backed by badger, one key per collection
// ABOUTME: Reads of missing or corrupt keys yield the caller's default instead of failing
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

// Collection keys. Each holds the JSON-encoded list for one collection.
const (
	KeyContacts  = "crm-contacts"
	KeyCompanies = "crm-companies"
	KeyTasks     = "crm-tasks"

	// FlagShownSync marks that the one-time sync prompt was already shown
	// for this profile. It lives beside the collections, not inside them.
	FlagShownSync = "hasShownSync"
)

// CollectionKeys lists the record collections in a stable order.
var CollectionKeys = []string{KeyContacts, KeyCompanies, KeyTasks}

// Store is the durable key/value layer used when no session is active. It is
// local to one profile; nothing else writes it concurrently.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// getRaw returns the raw bytes at key, or nil if the key is absent.
func (s *Store) getRaw(key string) ([]byte, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *Store) setRaw(key string, raw []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
}

// Flag reports whether a boolean-like flag key is set.
func (s *Store) Flag(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, err := s.getRaw(key)
	if err != nil {
		return false
	}
	return string(raw) == "true"
}

// SetFlag sets or clears a boolean-like flag key.
func (s *Store) SetFlag(key string, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !on {
		return s.db.Update(func(txn *badger.Txn) error {
			err := txn.Delete([]byte(key))
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		})
	}
	return s.setRaw(key, []byte("true"))
}

// Get decodes the value at key into a fresh T. A missing or corrupt value
// returns def; reads never fail from the caller's perspective.
func Get[T any](s *Store, key string, def T) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.getRaw(key)
	if err != nil || raw == nil {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Set writes the value at key. Writes are synchronous; there is no pending or
// error state beyond the returned error.
func Set[T any](s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setRaw(key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Update applies fn to the current value (or def when absent) and writes the
// result back under the same lock, the updater form of Set.
func Update[T any](s *Store, key string, def T, fn func(T) T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := def
	if raw, err := s.getRaw(key); err == nil && raw != nil {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			cur = v
		}
	}

	next := fn(cur)
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.setRaw(key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
