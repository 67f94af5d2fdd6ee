package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redisclient "github.com/redis/go-redis/v9"

	"getsbiplay.ru/store/api/pkg/models"
)

const productsKey = "getsbi:products"

// ProductStore is the local fallback tier: the full listing lives under one
// JSON-encoded key. Saves are read-modify-write, replacing the entry with a
// matching id or appending.
type ProductStore struct {
	client *redisclient.Client
}

func NewProductStore(client *redisclient.Client) *ProductStore {
	return &ProductStore{client: client}
}

// List returns the stored listing. A missing key or corrupt payload reads as
// an empty catalog.
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	payload, err := s.client.Get(ctx, productsKey).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("read local product listing: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		return []models.Product{}, nil
	}
	return products, nil
}

func (s *ProductStore) Save(ctx context.Context, product models.Product) (models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return models.Product{}, err
	}

	replaced := false
	for i, existing := range products {
		if existing.ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}

	if err := s.write(ctx, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, existing := range products {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}

	return s.write(ctx, kept)
}

func (s *ProductStore) write(ctx context.Context, products []models.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal local product listing: %w", err)
	}

	// No TTL: the fallback store is durable.
	if err := s.client.Set(ctx, productsKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("write local product listing: %w", err)
	}
	return nil
}
