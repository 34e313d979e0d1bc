// ABOUTME: Local store variant of the data source
// ABOUTME: Synchronous reads and writes against one badger collection key
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Davi-web/cms-dashboard/models"
	"github.com/Davi-web/cms-dashboard/store"
)

// localSource serves one collection straight from the local store. Writes
// complete before the call returns; there is no pending state.
type localSource[T any] struct {
	store     *store.Store
	key       string
	idOf      func(T) string
	onCreate  func(rec *T, now time.Time)
	onUpdate  func(rec *T, existing T, now time.Time)
	normalize func([]T) []T
}

func (l localSource[T]) List(_ context.Context) ([]T, error) {
	records := store.Get(l.store, l.key, []T{})
	return l.normalize(records), nil
}

func (l localSource[T]) Create(_ context.Context, record T) (T, error) {
	l.onCreate(&record, time.Now())
	err := store.Update(l.store, l.key, []T{}, func(cur []T) []T {
		return append(cur, record)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

func (l localSource[T]) Update(_ context.Context, id string, record T) (T, error) {
	found := false
	err := store.Update(l.store, l.key, []T{}, func(cur []T) []T {
		for i := range cur {
			if l.idOf(cur[i]) == id {
				l.onUpdate(&record, cur[i], time.Now())
				cur[i] = record
				found = true
				break
			}
		}
		return cur
	})
	var zero T
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return record, nil
}

func (l localSource[T]) Delete(_ context.Context, id string) error {
	found := false
	err := store.Update(l.store, l.key, []T{}, func(cur []T) []T {
		out := cur[:0]
		for _, rec := range cur {
			if l.idOf(rec) == id {
				found = true
				continue
			}
			out = append(out, rec)
		}
		return out
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func newLocalContacts(st *store.Store) Source[models.Contact] {
	return localSource[models.Contact]{
		store: st,
		key:   store.KeyContacts,
		idOf:  func(c models.Contact) string { return c.ID },
		onCreate: func(c *models.Contact, now time.Time) {
			c.ID = uuid.New().String()
			c.CreatedAt = models.Timestamp(now)
			c.LastContact = models.Timestamp(now)
			*c = models.NormalizeContact(*c)
		},
		onUpdate: func(c *models.Contact, existing models.Contact, now time.Time) {
			c.ID = existing.ID
			c.CreatedAt = existing.CreatedAt
			// Every edit counts as contact
			c.LastContact = models.Timestamp(now)
			*c = models.NormalizeContact(*c)
		},
		normalize: models.NormalizeContacts,
	}
}

func newLocalCompanies(st *store.Store) Source[models.Company] {
	return localSource[models.Company]{
		store: st,
		key:   store.KeyCompanies,
		idOf:  func(c models.Company) string { return c.ID },
		onCreate: func(c *models.Company, now time.Time) {
			c.ID = uuid.New().String()
			c.CreatedAt = models.Timestamp(now)
		},
		onUpdate: func(c *models.Company, existing models.Company, _ time.Time) {
			c.ID = existing.ID
			c.CreatedAt = existing.CreatedAt
		},
		normalize: models.NormalizeCompanies,
	}
}

func newLocalTasks(st *store.Store) Source[models.Task] {
	return localSource[models.Task]{
		store: st,
		key:   store.KeyTasks,
		idOf:  func(t models.Task) string { return t.ID },
		onCreate: func(t *models.Task, now time.Time) {
			t.ID = uuid.New().String()
			t.CreatedAt = models.Timestamp(now)
			*t = models.NormalizeTask(*t)
		},
		onUpdate: func(t *models.Task, existing models.Task, _ time.Time) {
			t.ID = existing.ID
			t.CreatedAt = existing.CreatedAt
			*t = models.NormalizeTask(*t)
		},
		normalize: models.NormalizeTasks,
	}
}
