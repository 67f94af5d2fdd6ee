package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"getsbiplay.ru/store/api/pkg/models"
)

func TestCartLoadMissingKey(t *testing.T) {
	s := NewCartStore(newTestClient(t))

	entries, err := s.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartLoadCorruptPayloadReadsAsEmpty(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Set(ctx, cartKey("s1"), "not json at all", 0).Err())

	entries, err := NewCartStore(client).Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartSaveLoadRoundTrip(t *testing.T) {
	s := NewCartStore(newTestClient(t))
	ctx := context.Background()

	stored := []models.CartEntry{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}
	require.NoError(t, s.Save(ctx, "s1", stored))

	entries, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, stored, entries)
}

func TestCartKeysAreSessionScoped(t *testing.T) {
	s := NewCartStore(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a", []models.CartEntry{{ProductID: "p1", Quantity: 1}}))

	entries, err := s.Load(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartClear(t *testing.T) {
	s := NewCartStore(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "s1", []models.CartEntry{{ProductID: "p1", Quantity: 1}}))
	require.NoError(t, s.Clear(ctx, "s1"))

	entries, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing an already-empty cart succeeds.
	require.NoError(t, s.Clear(ctx, "s1"))
}
