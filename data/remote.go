// ABOUTME: Remote record service variant of the data source
// ABOUTME: List results are cached per collection and invalidated by writes
package data

import "context"

// remoteSource wraps the api client for one collection. Reads go through the
// selector's cache; any successful write invalidates that collection so the
// next read observes it (read-your-writes via invalidation, not merging).
type remoteSource[T any] struct {
	sel *Selector
	key string

	list   func(ctx context.Context) ([]T, error)
	create func(ctx context.Context, record T) (T, error)
	update func(ctx context.Context, id string, record T) (T, error)
	remove func(ctx context.Context, id string) error
}

func (r remoteSource[T]) List(ctx context.Context) ([]T, error) {
	if cached, ok := cachedList[T](r.sel, r.key); ok {
		return cached, nil
	}

	gen := r.sel.beginLoad(r.key)
	records, err := r.list(ctx)
	// A fill from a superseded generation is discarded: last-completed-wins.
	r.sel.endLoad(r.key, gen, records, err)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r remoteSource[T]) Create(ctx context.Context, record T) (T, error) {
	created, err := r.create(ctx, record)
	if err != nil {
		var zero T
		return zero, err
	}
	r.sel.Invalidate(r.key)
	return created, nil
}

func (r remoteSource[T]) Update(ctx context.Context, id string, record T) (T, error) {
	updated, err := r.update(ctx, id, record)
	if err != nil {
		var zero T
		return zero, err
	}
	r.sel.Invalidate(r.key)
	return updated, nil
}

func (r remoteSource[T]) Delete(ctx context.Context, id string) error {
	if err := r.remove(ctx, id); err != nil {
		return err
	}
	r.sel.Invalidate(r.key)
	return nil
}
