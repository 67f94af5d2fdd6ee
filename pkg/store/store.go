// Package store defines the product persistence contract and the two-tier
// fallback repository composed from a remote primary and a local secondary.
package store

import (
	"context"

	"getsbiplay.ru/store/api/pkg/models"
)

// ProductStore is the persistence contract shared by the remote Mongo store,
// the local Redis fallback and the in-memory store.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
}
