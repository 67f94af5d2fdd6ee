// Package cart implements the per-session cart ledger: a durable mapping of
// product id to quantity, materialized into priced line items by joining
// against the current product listing.
package cart

import (
	"context"

	"getsbiplay.ru/store/api/pkg/models"
	"getsbiplay.ru/store/api/pkg/pricing"
)

// Store persists ledger entries for a session.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]models.CartEntry, error)
	Save(ctx context.Context, sessionID string, entries []models.CartEntry) error
	Clear(ctx context.Context, sessionID string) error
}

// Ledger is one session's cart.
type Ledger struct {
	store     Store
	sessionID string
}

func NewLedger(store Store, sessionID string) *Ledger {
	return &Ledger{store: store, sessionID: sessionID}
}

// Entries returns the raw ledger records.
func (l *Ledger) Entries(ctx context.Context) ([]models.CartEntry, error) {
	return l.store.Load(ctx, l.sessionID)
}

// Add increments the quantity of an existing entry or appends a new one.
// Quantity clamping is the caller's responsibility.
func (l *Ledger) Add(ctx context.Context, productID string, quantity int) error {
	entries, err := l.store.Load(ctx, l.sessionID)
	if err != nil {
		return err
	}

	found := false
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, models.CartEntry{ProductID: productID, Quantity: quantity})
	}

	return l.store.Save(ctx, l.sessionID, entries)
}

// SetQuantity replaces an entry's quantity; a quantity of zero or less
// removes the entry.
func (l *Ledger) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return l.Remove(ctx, productID)
	}

	entries, err := l.store.Load(ctx, l.sessionID)
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity = quantity
			break
		}
	}

	return l.store.Save(ctx, l.sessionID, entries)
}

// Remove deletes the entry for the product; removing an absent product is a
// no-op.
func (l *Ledger) Remove(ctx context.Context, productID string) error {
	entries, err := l.store.Load(ctx, l.sessionID)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.ProductID != productID {
			kept = append(kept, entry)
		}
	}

	return l.store.Save(ctx, l.sessionID, kept)
}

// Clear empties the ledger. Called after a successful order submission.
func (l *Ledger) Clear(ctx context.Context) error {
	return l.store.Clear(ctx, l.sessionID)
}

// Materialize joins the ledger against a product listing and returns the
// priced line items plus the discount-aware total. Entries whose product no
// longer exists are dropped silently.
func (l *Ledger) Materialize(ctx context.Context, products []models.Product) ([]models.CartItem, float64, error) {
	entries, err := l.store.Load(ctx, l.sessionID)
	if err != nil {
		return nil, 0, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]models.CartItem, 0, len(entries))
	var total float64
	for _, entry := range entries {
		product, ok := byID[entry.ProductID]
		if !ok {
			continue
		}
		items = append(items, models.CartItem{Product: product, Quantity: entry.Quantity})
		total += pricing.DiscountedPrice(product.Price, product.Discount) * float64(entry.Quantity)
	}

	return items, total, nil
}
