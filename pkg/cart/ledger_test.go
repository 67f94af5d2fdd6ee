package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"getsbiplay.ru/store/api/pkg/models"
)

func newLedger() *Ledger {
	return NewLedger(NewMemoryStore(), "session-1")
}

func TestAddAppendsAndIncrements(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	require.NoError(t, l.Add(ctx, "p1", 2))
	require.NoError(t, l.Add(ctx, "p2", 1))
	require.NoError(t, l.Add(ctx, "p1", 3))

	entries, err := l.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.CartEntry{ProductID: "p1", Quantity: 5}, entries[0])
	assert.Equal(t, models.CartEntry{ProductID: "p2", Quantity: 1}, entries[1])
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	require.NoError(t, l.Add(ctx, "p1", 2))
	require.NoError(t, l.SetQuantity(ctx, "p1", 7))

	entries, err := l.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].Quantity)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	require.NoError(t, l.Add(ctx, "p1", 2))
	require.NoError(t, l.SetQuantity(ctx, "p1", 0))

	entries, err := l.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	require.NoError(t, l.Add(ctx, "p1", 1))
	require.NoError(t, l.Remove(ctx, "missing"))

	entries, err := l.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	require.NoError(t, l.Add(ctx, "p1", 1))
	require.NoError(t, l.Clear(ctx))

	entries, err := l.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMaterializeAppliesDiscounts(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	require.NoError(t, l.Add(ctx, "p1", 2))
	require.NoError(t, l.Add(ctx, "p1", 3))

	listing := []models.Product{
		{ID: "p1", Name: "Game", Price: 100, Discount: 10, Category: models.CategoryGames},
	}

	items, total, err := l.Materialize(ctx, listing)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.InDelta(t, 450.0, total, 0.001)
}

func TestMaterializeDropsMissingProducts(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	require.NoError(t, l.Add(ctx, "gone", 4))
	require.NoError(t, l.Add(ctx, "p1", 1))

	listing := []models.Product{
		{ID: "p1", Name: "Game", Price: 500, Category: models.CategoryGames},
	}

	items, total, err := l.Materialize(ctx, listing)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.InDelta(t, 500.0, total, 0.001)
}

func TestLedgersAreSessionScoped(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore()

	a := NewLedger(shared, "a")
	b := NewLedger(shared, "b")

	require.NoError(t, a.Add(ctx, "p1", 1))

	entries, err := b.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
