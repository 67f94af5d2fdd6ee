package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"getsbiplay.ru/store/api/pkg/models"
)

func newTestClient(t *testing.T) *redisclient.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redisclient.NewClient(&redisclient.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func testProduct(id, name string) models.Product {
	return models.Product{ID: id, Name: name, Price: 100, Category: models.CategoryGames}
}

func TestProductListMissingKey(t *testing.T) {
	s := NewProductStore(newTestClient(t))

	products, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductListCorruptPayloadReadsAsEmpty(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Set(ctx, productsKey, "{not json", 0).Err())

	products, err := NewProductStore(client).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductSaveRoundTrip(t *testing.T) {
	s := NewProductStore(newTestClient(t))
	ctx := context.Background()

	_, err := s.Save(ctx, testProduct("p1", "PS5"))
	require.NoError(t, err)
	_, err = s.Save(ctx, testProduct("p2", "DualSense"))
	require.NoError(t, err)

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
}

func TestProductSaveReplacesByID(t *testing.T) {
	s := NewProductStore(newTestClient(t))
	ctx := context.Background()

	_, err := s.Save(ctx, testProduct("p1", "PS5"))
	require.NoError(t, err)
	_, err = s.Save(ctx, testProduct("p2", "DualSense"))
	require.NoError(t, err)
	_, err = s.Save(ctx, testProduct("p1", "PS5 Slim"))
	require.NoError(t, err)

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	// Replaced in place, position preserved.
	assert.Equal(t, "PS5 Slim", products[0].Name)
}

func TestProductSaveRecoversCorruptListing(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Set(ctx, productsKey, `[{"id":`, 0).Err())

	s := NewProductStore(client)
	_, err := s.Save(ctx, testProduct("p1", "PS5"))
	require.NoError(t, err)

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestProductDeleteIsIdempotent(t *testing.T) {
	s := NewProductStore(newTestClient(t))
	ctx := context.Background()

	_, err := s.Save(ctx, testProduct("p1", "PS5"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "p1"))
	require.NoError(t, s.Delete(ctx, "p1"))

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}
