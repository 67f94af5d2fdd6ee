package store

import (
	"context"
	"sync"

	"getsbiplay.ru/store/api/pkg/models"
)

// Memory is an in-process ProductStore. It backs tests and serves as the
// secondary of last resort when no Redis address is configured.
type Memory struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) List(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listing := make([]models.Product, len(m.products))
	copy(listing, m.products)
	return listing, nil
}

func (m *Memory) Save(ctx context.Context, product models.Product) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.products {
		if existing.ID == product.ID {
			m.products[i] = product
			return product, nil
		}
	}
	m.products = append(m.products, product)
	return product, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.products[:0]
	for _, existing := range m.products {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	m.products = kept
	return nil
}
