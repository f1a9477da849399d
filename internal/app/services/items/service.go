// Package items implements the shopping list business rules: validation,
// normalization, deduplication and removal semantics.
package items

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/groceryworks/listd/internal/app/domain/item"
	"github.com/groceryworks/listd/internal/app/metrics"
	"github.com/groceryworks/listd/internal/app/storage"
	"github.com/groceryworks/listd/pkg/logger"
)

// Service owns all reads and writes of the shared list. The store is
// injected so tests can run against a fresh in-memory list.
type Service struct {
	store storage.ItemStore
	log   *logger.Logger
}

// New constructs an items service.
func New(store storage.ItemStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("items")
	}
	return &Service{store: store, log: log}
}

// AddResult reports a successful add: the stored item and the full list
// snapshot taken at the moment of the append.
type AddResult struct {
	Added item.Item
	Items []item.Item
}

// RemoveResult reports a successful removal: the removed item in its stored
// form and the snapshot of what remains.
type RemoveResult struct {
	Removed   item.Item
	Remaining []item.Item
}

// CountResult reports the current count and, when nonzero, the items.
type CountResult struct {
	Count int
	Items []item.Item
}

// Add validates, normalizes and appends a name. A name that trims to empty
// or exceeds the length cap fails with *item.ValidationError; a
// case-insensitive collision fails with *item.DuplicateError.
func (s *Service) Add(ctx context.Context, name string) (AddResult, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return AddResult{}, &item.ValidationError{Reason: "name must not be empty"}
	}
	if utf8.RuneCountInString(trimmed) > item.MaxNameLength {
		return AddResult{}, &item.ValidationError{Reason: "name must be at most 100 characters"}
	}

	normalized := item.Normalize(trimmed)
	snapshot, err := s.store.Append(ctx, item.Item{Name: normalized, AddedAt: time.Now().UTC()})
	if err != nil {
		return AddResult{}, err
	}

	metrics.RecordAdd(len(snapshot))
	s.log.Debugf("added %q, list size %d", normalized, len(snapshot))
	return AddResult{
		Added: snapshot[len(snapshot)-1],
		Items: snapshot,
	}, nil
}

// List returns a snapshot of the list in insertion order.
func (s *Service) List(ctx context.Context) ([]item.Item, error) {
	return s.store.List(ctx)
}

// Remove normalizes the name and deletes its first case-insensitive match.
// A miss fails with *item.NotFoundError carrying the normalized name.
func (s *Service) Remove(ctx context.Context, name string) (RemoveResult, error) {
	normalized := item.Normalize(name)
	removed, remaining, err := s.store.Remove(ctx, normalized)
	if err != nil {
		return RemoveResult{}, err
	}

	metrics.RecordRemove(1, len(remaining))
	s.log.Debugf("removed %q, list size %d", removed.Name, len(remaining))
	return RemoveResult{Removed: removed, Remaining: remaining}, nil
}

// Clear unconditionally empties the list and reports the prior count.
func (s *Service) Clear(ctx context.Context) (int, error) {
	dropped, err := s.store.Clear(ctx)
	if err != nil {
		return 0, err
	}

	metrics.RecordRemove(dropped, 0)
	s.log.Debugf("cleared %d items", dropped)
	return dropped, nil
}

// Count reports the current count along with a snapshot for rendering.
func (s *Service) Count(ctx context.Context) (CountResult, error) {
	snapshot, err := s.store.List(ctx)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Count: len(snapshot), Items: snapshot}, nil
}
