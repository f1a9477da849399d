package items

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groceryworks/listd/internal/app/domain/item"
	"github.com/groceryworks/listd/internal/app/storage/memory"
)

func newService() *Service {
	return New(memory.New(), nil)
}

func TestAddNormalizesAndAppends(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	result, err := svc.Add(ctx, "milk")
	require.NoError(t, err)
	require.Equal(t, "Milk", result.Added.Name)
	require.Len(t, result.Items, 1)

	result, err = svc.Add(ctx, "organic BROWN eggs")
	require.NoError(t, err)
	require.Equal(t, "Organic Brown Eggs", result.Added.Name)
	require.Equal(t, "Milk", result.Items[0].Name, "insertion order must hold")
}

func TestAddRejectsDuplicateAnyCasing(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "milk")
	require.NoError(t, err)

	_, err = svc.Add(ctx, " MILK ")
	var dup *item.DuplicateError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Milk", dup.Name)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "failed add must not mutate the list")
}

func TestAddValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	var validation *item.ValidationError

	_, err := svc.Add(ctx, "   ")
	require.ErrorAs(t, err, &validation)

	_, err = svc.Add(ctx, strings.Repeat("a", 101))
	require.ErrorAs(t, err, &validation)

	// Exactly at the cap is accepted.
	_, err = svc.Add(ctx, strings.Repeat("a", 100))
	require.NoError(t, err)
}

func TestRemoveMatchesCaseInsensitively(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "eggs")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "bread")
	require.NoError(t, err)

	result, err := svc.Remove(ctx, "EGGS")
	require.NoError(t, err)
	require.Equal(t, "Eggs", result.Removed.Name)
	require.Len(t, result.Remaining, 1)
	require.Equal(t, "Bread", result.Remaining[0].Name)

	// A second removal of the same name misses.
	_, err = svc.Remove(ctx, "eggs")
	var notFound *item.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "Eggs", notFound.Name)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "failed remove must not mutate the list")
}

func TestClearReportsPriorCount(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, name := range []string{"milk", "eggs", "bread"} {
		_, err := svc.Add(ctx, name)
		require.NoError(t, err)
	}

	dropped, err := svc.Clear(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, dropped)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count.Count)
}

func TestCountIsIdempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "milk")
	require.NoError(t, err)

	first, err := svc.Count(ctx)
	require.NoError(t, err)
	second, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	list1, err := svc.List(ctx)
	require.NoError(t, err)
	list2, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, list1, list2)
}
