// Package resource implements the client-side resource-store protocol once:
// a cached, ordered collection of one backend resource, with loading and
// error state, kept in step with confirmed remote writes only.
package resource

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/Leestalion/quittance/internal/api"
	"github.com/Leestalion/quittance/internal/client"
)

// Entity is anything identified by a server-assigned id.
type Entity interface {
	GetID() string
}

// API is the remote side of a store.
type API[T Entity, C, U any] interface {
	List(filter string) ([]T, error)
	Get(id string) (T, error)
	Create(payload C) (T, error)
	Update(id string, patch U) (T, error)
	Delete(id string) error
}

// Names drive the default error messages, e.g. "Failed to load leases".
type Names struct {
	Singular string
	Plural   string
}

type Option func(*options)

type options struct {
	resetOnListError bool
}

// ResetOnListError makes Fetch swallow failures: the collection is emptied,
// the error is recorded and nil is returned. Only the properties store uses
// it; every other store returns list failures to the caller.
func ResetOnListError() Option {
	return func(o *options) { o.resetOnListError = true }
}

// Store caches one remote collection. State is guarded by a mutex that is
// never held across a network call, so overlapping operations interleave and
// the last response to arrive wins.
type Store[T Entity, C, U any] struct {
	api   API[T, C, U]
	names Names
	opts  options

	mu      sync.RWMutex
	items   []T
	loading bool
	err     string

	subMu  sync.Mutex
	nextID int
	subs   map[int]func()
}

func NewStore[T Entity, C, U any](remote API[T, C, U], names Names, opts ...Option) *Store[T, C, U] {
	s := &Store[T, C, U]{
		api:   remote,
		names: names,
		items: []T{},
		subs:  make(map[int]func()),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Items returns a copy of the cached collection in server order.
func (s *Store[T, C, U]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store[T, C, U]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the display message of the last failed operation, or "".
func (s *Store[T, C, U]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store[T, C, U]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

func (s *Store[T, C, U]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Fetch replaces the collection with the server's list.
func (s *Store[T, C, U]) Fetch(filter string) ([]T, error) {
	items := []T{}
	err := s.Run("Failed to load "+s.names.Plural, func() error {
		list, err := s.api.List(filter)
		if err != nil {
			if !s.opts.resetOnListError {
				return err
			}
			s.replace([]T{})
			if errors.Is(err, api.ErrNotArray) {
				return nil
			}
			return err
		}
		items = uniqueByID(list)
		s.replace(items)
		return nil
	})
	if err != nil && s.opts.resetOnListError {
		slog.Warn("list failure swallowed", "resource", s.names.Plural, "error", err)
		return []T{}, nil
	}
	return slices.Clone(items), err
}

// FetchOne loads a single entity and upserts it.
func (s *Store[T, C, U]) FetchOne(id string) (T, error) {
	var item T
	err := s.Run("Failed to load "+s.names.Singular, func() error {
		got, err := s.api.Get(id)
		if err != nil {
			return err
		}
		item = got
		s.Upsert(got)
		return nil
	})
	return item, err
}

func (s *Store[T, C, U]) Create(payload C) (T, error) {
	var item T
	err := s.Run("Failed to create "+s.names.Singular, func() error {
		created, err := s.api.Create(payload)
		if err != nil {
			return err
		}
		item = created
		s.Upsert(created)
		return nil
	})
	return item, err
}

// Update writes the patch remotely and replaces the cached entry in place.
// An id that was never loaded stays absent locally even though the remote
// write happened.
func (s *Store[T, C, U]) Update(id string, patch U) (T, error) {
	var item T
	err := s.Run("Failed to update "+s.names.Singular, func() error {
		updated, err := s.api.Update(id, patch)
		if err != nil {
			return err
		}
		item = updated
		s.mu.Lock()
		if i := s.indexOf(id); i >= 0 {
			s.items[i] = updated
		}
		s.mu.Unlock()
		return nil
	})
	return item, err
}

func (s *Store[T, C, U]) Delete(id string) error {
	return s.Run("Failed to delete "+s.names.Singular, func() error {
		if err := s.api.Delete(id); err != nil {
			return err
		}
		s.Remove(id)
		return nil
	})
}

// Run wraps op in the store protocol: loading is raised and the error
// cleared before op runs; a failure is recorded as a display message; loading
// always drops back to false.
func (s *Store[T, C, U]) Run(fallback string, op func() error) (err error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.notify()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
	}()

	if err = op(); err != nil {
		msg := client.Message(err, fallback)
		s.mu.Lock()
		s.err = msg
		s.mu.Unlock()
		slog.Warn("store operation failed", "resource", s.names.Plural, "message", msg, "error", err)
	}
	return err
}

// Upsert replaces the entry with the same id or appends it.
func (s *Store[T, C, U]) Upsert(item T) {
	s.mu.Lock()
	if i := s.indexOf(item.GetID()); i >= 0 {
		s.items[i] = item
	} else {
		s.items = append(s.items, item)
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store[T, C, U]) Remove(id string) {
	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(item T) bool {
		return item.GetID() == id
	})
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers fn to run after every state change. The returned func
// removes it.
func (s *Store[T, C, U]) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store[T, C, U]) replace(items []T) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.notify()
}

func (s *Store[T, C, U]) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// indexOf expects s.mu to be held.
func (s *Store[T, C, U]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool {
		return item.GetID() == id
	})
}

// uniqueByID keeps the first position of each id and the last value seen
// for it.
func uniqueByID[T Entity](items []T) []T {
	out := make([]T, 0, len(items))
	pos := make(map[string]int, len(items))
	for _, item := range items {
		if i, ok := pos[item.GetID()]; ok {
			out[i] = item
			continue
		}
		pos[item.GetID()] = len(out)
		out = append(out, item)
	}
	return out
}
