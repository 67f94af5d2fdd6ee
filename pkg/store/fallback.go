package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"getsbiplay.ru/store/api/pkg/models"
)

// ErrUnavailable is returned when an operation could not be served by either
// tier.
var ErrUnavailable = errors.New("product store unavailable")

// ErrInvalidProduct is returned by Save for a product that fails field
// validation; nothing is persisted in either tier.
var ErrInvalidProduct = errors.New("invalid product")

// Fallback is the product repository: it tries the remote primary and falls
// back to the local secondary when the primary fails or is not configured.
// There is no transaction across the two tiers; a fallback write is not
// replayed against the primary later, so the stores may diverge.
type Fallback struct {
	primary   ProductStore // may be nil when the remote store is unconfigured
	secondary ProductStore
}

func NewFallback(primary, secondary ProductStore) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

// List returns the primary listing verbatim when reachable, the secondary
// listing otherwise, and an empty listing when both fail. Reads never error.
func (f *Fallback) List(ctx context.Context) ([]models.Product, error) {
	if f.primary != nil {
		products, err := f.primary.List(ctx)
		if err == nil {
			return products, nil
		}
		log.Printf("Warning: remote product listing failed, serving local store: %v", err)
	}

	products, err := f.secondary.List(ctx)
	if err != nil {
		log.Printf("Warning: local product listing failed, serving empty catalog: %v", err)
		return []models.Product{}, nil
	}
	return products, nil
}

// Save validates the product, assigns an identifier when absent, refreshes
// timestamps and upserts into the primary, falling back to the secondary on
// failure. A write that reaches the stores errors only when both tiers
// reject it.
func (f *Fallback) Save(ctx context.Context, product models.Product) (models.Product, error) {
	if errs := product.Validate(); len(errs) > 0 {
		return models.Product{}, fmt.Errorf("%w: %s", ErrInvalidProduct, errs[0].Message)
	}

	if product.ID == "" {
		product.ID = models.NewProductID()
	}
	product.SetTimestamps()

	if f.primary != nil {
		saved, err := f.primary.Save(ctx, product)
		if err == nil {
			return saved, nil
		}
		log.Printf("Warning: remote save of product %s failed, writing to local store: %v", product.ID, err)
	}

	saved, err := f.secondary.Save(ctx, product)
	if err != nil {
		return models.Product{}, ErrUnavailable
	}
	return saved, nil
}

// Delete removes the product from the primary, falling back to the
// secondary. Deleting an absent identifier is not an error in either tier.
func (f *Fallback) Delete(ctx context.Context, id string) error {
	if f.primary != nil {
		err := f.primary.Delete(ctx, id)
		if err == nil {
			return nil
		}
		log.Printf("Warning: remote delete of product %s failed, deleting from local store: %v", id, err)
	}

	if err := f.secondary.Delete(ctx, id); err != nil {
		return ErrUnavailable
	}
	return nil
}
