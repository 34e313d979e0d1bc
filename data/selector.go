// ABOUTME: Data source selector deciding between local store and remote service
// ABOUTME: Owns the per-collection remote read cache and its invalidation
package data

import (
	"sync"

	"github.com/Davi-web/cms-dashboard/api"
	"github.com/Davi-web/cms-dashboard/models"
	"github.com/Davi-web/cms-dashboard/session"
	"github.com/Davi-web/cms-dashboard/store"
)

// Selector hands out the authoritative source per collection: the local store
// when no session is active, the remote record service otherwise. The choice
// is made once per collection access.
type Selector struct {
	store    *store.Store
	client   *api.Client
	sessions *session.Manager

	mu     sync.Mutex
	caches map[string]*cacheState
}

// cacheState tracks one collection's remote read cache. gen increments on
// every invalidation so an in-flight read from before the invalidation cannot
// repopulate the cache with stale data.
type cacheState struct {
	gen     int
	valid   bool
	records any
	loading bool
	err     error
}

// NewSelector wires the selector to its inputs. Session changes drop all
// cached remote reads, since a sign-in or sign-out swaps the authoritative
// source out from under every collection.
func NewSelector(st *store.Store, client *api.Client, sessions *session.Manager) *Selector {
	s := &Selector{
		store:    st,
		client:   client,
		sessions: sessions,
		caches:   make(map[string]*cacheState),
	}
	sessions.Subscribe(func(*session.Session) { s.InvalidateAll() })
	return s
}

// Contacts returns the authoritative contacts source for this access.
func (s *Selector) Contacts() Source[models.Contact] {
	if !s.sessions.Active() {
		return newLocalContacts(s.store)
	}
	return remoteSource[models.Contact]{
		sel:    s,
		key:    ColContacts,
		list:   s.client.ListContacts,
		create: s.client.CreateContact,
		update: s.client.UpdateContact,
		remove: s.client.DeleteContact,
	}
}

// Companies returns the authoritative companies source for this access.
func (s *Selector) Companies() Source[models.Company] {
	if !s.sessions.Active() {
		return newLocalCompanies(s.store)
	}
	return remoteSource[models.Company]{
		sel:    s,
		key:    ColCompanies,
		list:   s.client.ListCompanies,
		create: s.client.CreateCompany,
		update: s.client.UpdateCompany,
		remove: s.client.DeleteCompany,
	}
}

// Tasks returns the authoritative tasks source for this access.
func (s *Selector) Tasks() Source[models.Task] {
	if !s.sessions.Active() {
		return newLocalTasks(s.store)
	}
	return remoteSource[models.Task]{
		sel:    s,
		key:    ColTasks,
		list:   s.client.ListTasks,
		create: s.client.CreateTask,
		update: s.client.UpdateTask,
		remove: s.client.DeleteTask,
	}
}

// Status reports the pending/error state of the last remote read for a
// collection.
func (s *Selector) Status(collection string) QueryStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.caches[collection]
	if !ok {
		return QueryStatus{}
	}
	return QueryStatus{Loading: cs.loading, Err: cs.err}
}

// Invalidate drops the cached list for one collection.
func (s *Selector) Invalidate(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked(collection)
}

// InvalidateAll drops every cached list, e.g. after a successful bulk sync or
// a session change.
func (s *Selector) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.caches {
		s.invalidateLocked(key)
	}
}

func (s *Selector) invalidateLocked(collection string) {
	cs, ok := s.caches[collection]
	if !ok {
		return
	}
	cs.gen++
	cs.valid = false
	cs.records = nil
}

func (s *Selector) state(collection string) *cacheState {
	cs, ok := s.caches[collection]
	if !ok {
		cs = &cacheState{}
		s.caches[collection] = cs
	}
	return cs
}

// cachedList returns the cached records for a collection, if still valid.
func cachedList[T any](s *Selector, collection string) ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.caches[collection]
	if !ok || !cs.valid {
		return nil, false
	}
	records, ok := cs.records.([]T)
	return records, ok
}

// beginLoad marks the collection as loading and returns the generation this
// read belongs to.
func (s *Selector) beginLoad(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.state(collection)
	cs.loading = true
	return cs.gen
}

// endLoad records the outcome of a remote read. The fill is dropped when the
// collection was invalidated while the read was in flight.
func (s *Selector) endLoad(collection string, gen int, records any, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.state(collection)
	cs.loading = false
	cs.err = err
	if err != nil || cs.gen != gen {
		return
	}
	cs.valid = true
	cs.records = records
}
