// Package storage declares the persistence surface used by the application
// services. Implementations must serialize every read-modify-write so that
// concurrent requests observe at-most-one-winner semantics.
package storage

import (
	"context"

	"github.com/groceryworks/listd/internal/app/domain/item"
)

// ItemStore stores the shared shopping list. Names passed to Append and
// Remove must already be normalized; lookups are case-insensitive.
type ItemStore interface {
	// Append adds the item to the end of the list and returns the snapshot
	// after the append. It returns *item.DuplicateError when a
	// case-insensitive match already exists; the list is then unchanged.
	Append(ctx context.Context, it item.Item) ([]item.Item, error)

	// List returns a snapshot of all items in insertion order.
	List(ctx context.Context) ([]item.Item, error)

	// Remove deletes the first case-insensitive match for name and returns
	// it along with the snapshot of the remaining items. It returns
	// *item.NotFoundError when nothing matches. Relative order of the
	// remaining items is preserved.
	Remove(ctx context.Context, name string) (item.Item, []item.Item, error)

	// Clear empties the list and reports how many items were dropped.
	Clear(ctx context.Context) (int, error)

	// Count reports the current number of items.
	Count(ctx context.Context) (int, error)
}
