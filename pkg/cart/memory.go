package cart

import (
	"context"
	"sync"

	"getsbiplay.ru/store/api/pkg/models"
)

// MemoryStore is an in-process ledger store. It backs tests and serves as
// the fallback when no Redis address is configured.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]models.CartEntry)}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) ([]models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.CartEntry, len(s.carts[sessionID]))
	copy(entries, s.carts[sessionID])
	return entries, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, entries []models.CartEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]models.CartEntry, len(entries))
	copy(stored, entries)
	s.carts[sessionID] = stored
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
