package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redisclient "github.com/redis/go-redis/v9"

	"getsbiplay.ru/store/api/pkg/models"
)

// CartStore persists one cart ledger per session under a single JSON key.
// Ledgers are scoped to a session and never shared across callers.
type CartStore struct {
	client *redisclient.Client
}

func NewCartStore(client *redisclient.Client) *CartStore {
	return &CartStore{client: client}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("getsbi:cart:%s", sessionID)
}

// Load returns the session's ledger entries. A missing key or corrupt
// payload reads as an empty ledger.
func (s *CartStore) Load(ctx context.Context, sessionID string) ([]models.CartEntry, error) {
	payload, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return []models.CartEntry{}, nil
		}
		return nil, fmt.Errorf("read cart %s: %w", sessionID, err)
	}

	var entries []models.CartEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return []models.CartEntry{}, nil
	}
	return entries, nil
}

func (s *CartStore) Save(ctx context.Context, sessionID string, entries []models.CartEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal cart %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), payload, 0).Err(); err != nil {
		return fmt.Errorf("write cart %s: %w", sessionID, err)
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart %s: %w", sessionID, err)
	}
	return nil
}
