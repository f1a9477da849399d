package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/groceryworks/listd/internal/app/domain/item"
)

func TestAppendRejectsCaseInsensitiveDuplicate(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.Append(ctx, item.Item{Name: "Milk"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	_, err := store.Append(ctx, item.Item{Name: "Milk"})
	var dup *item.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if dup.Name != "Milk" {
		t.Fatalf("expected duplicate name Milk, got %q", dup.Name)
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Fatalf("list changed on failed append, count %d", count)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	store := New()
	ctx := context.Background()

	for _, name := range []string{"Eggs", "Bread", "Butter"} {
		if _, err := store.Append(ctx, item.Item{Name: name}); err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}

	removed, remaining, err := store.Remove(ctx, "Bread")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Name != "Bread" {
		t.Fatalf("expected removed Bread, got %q", removed.Name)
	}
	if len(remaining) != 2 || remaining[0].Name != "Eggs" || remaining[1].Name != "Butter" {
		t.Fatalf("order not preserved: %v", remaining)
	}
}

func TestRemoveMissing(t *testing.T) {
	store := New()

	_, _, err := store.Remove(context.Background(), "Bread")
	var notFound *item.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Name != "Bread" {
		t.Fatalf("expected name Bread, got %q", notFound.Name)
	}
}

func TestClearReportsDropped(t *testing.T) {
	store := New()
	ctx := context.Background()

	for _, name := range []string{"Eggs", "Bread"} {
		if _, err := store.Append(ctx, item.Item{Name: name}); err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}

	dropped, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if dropped != 2 {
		t.Fatalf("expected 2 dropped, got %d", dropped)
	}

	count, _ := store.Count(ctx)
	if count != 0 {
		t.Fatalf("expected empty store, count %d", count)
	}

	// Clearing an empty store reports zero.
	dropped, _ = store.Clear(ctx)
	if dropped != 0 {
		t.Fatalf("expected 0 dropped, got %d", dropped)
	}
}

func TestConcurrentAddsHaveOneWinner(t *testing.T) {
	store := New()
	ctx := context.Background()

	const attempts = 32
	errCh := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			_, err := store.Append(ctx, item.Item{Name: "Milk"})
			errCh <- err
		}()
	}

	var wins, duplicates int
	for i := 0; i < attempts; i++ {
		err := <-errCh
		switch {
		case err == nil:
			wins++
		default:
			var dup *item.DuplicateError
			if !errors.As(err, &dup) {
				t.Fatalf("unexpected error: %v", err)
			}
			duplicates++
		}
	}
	if wins != 1 || duplicates != attempts-1 {
		t.Fatalf("expected exactly one winner, got %d wins, %d duplicates", wins, duplicates)
	}
}

func TestListReturnsIsolatedSnapshot(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.Append(ctx, item.Item{Name: "Milk"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	snapshot, _ := store.List(ctx)
	snapshot[0].Name = "Mutated"

	fresh, _ := store.List(ctx)
	if fresh[0].Name != "Milk" {
		t.Fatalf("snapshot mutation leaked into store: %q", fresh[0].Name)
	}
}
