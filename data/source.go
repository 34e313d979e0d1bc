// ABOUTME: Polymorphic data source abstraction over local and remote storage
// ABOUTME: One Source interface, two variants, picked per collection access
package data

import (
	"context"
	"errors"
)

// Collection names used for caching and query status.
const (
	ColContacts  = "contacts"
	ColCompanies = "companies"
	ColTasks     = "tasks"
)

// ErrNotFound is returned when an id does not exist in the chosen source.
var ErrNotFound = errors.New("record not found")

// Source is the uniform read/write facade over one collection. Exactly one
// variant (local or remote) backs it for any given access; the two are never
// mixed inside one operation.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, id string, record T) (T, error)
	Delete(ctx context.Context, id string) error
}

// QueryStatus is the per-collection pending/error state of remote reads.
// Loading is not an error.
type QueryStatus struct {
	Loading bool
	Err     error
}
