// Package memory provides the in-memory ItemStore implementation. The list
// lives for the lifetime of the process; nothing is persisted.
package memory

import (
	"context"
	"sync"

	"github.com/groceryworks/listd/internal/app/domain/item"
	"github.com/groceryworks/listd/internal/app/storage"
)

// Store is an in-memory, insertion-ordered item store. A single mutex guards
// every read-modify-write, so concurrent adds or removes of the same name
// resolve to one winner and one domain error.
type Store struct {
	mu    sync.RWMutex
	items []item.Item
}

var _ storage.ItemStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, it item.Item) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key(it.Name)
	for _, existing := range s.items {
		if item.Key(existing.Name) == key {
			return nil, &item.DuplicateError{Name: it.Name}
		}
	}
	s.items = append(s.items, it)
	return s.snapshotLocked(), nil
}

func (s *Store) List(_ context.Context) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(), nil
}

func (s *Store) Remove(_ context.Context, name string) (item.Item, []item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key(name)
	for i, existing := range s.items {
		if item.Key(existing.Name) == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return existing, s.snapshotLocked(), nil
		}
	}
	return item.Item{}, nil, &item.NotFoundError{Name: name}
}

func (s *Store) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := len(s.items)
	s.items = nil
	return dropped, nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

func (s *Store) snapshotLocked() []item.Item {
	snapshot := make([]item.Item, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}
