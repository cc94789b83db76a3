package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"soapbox/internal/domain/board"
)

const viewPreferenceKeyPrefix = "board:viewpref"

// ViewPreferenceStore remembers each visitor's per-board view choice in
// redis. Entries carry a TTL so abandoned sessions age out on their own.
type ViewPreferenceStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewViewPreferenceStore creates a new ViewPreferenceStore instance.
func NewViewPreferenceStore(client *redis.Client, ttl time.Duration) *ViewPreferenceStore {
	return &ViewPreferenceStore{client: client, ttl: ttl}
}

// Get returns the stored view for the session and board, or false when no
// preference has been recorded. A stored value that no longer parses is
// treated as a miss rather than an error.
func (s *ViewPreferenceStore) Get(ctx context.Context, sessionKey, boardSlug string) (board.ViewType, bool, error) {
	val, err := s.client.Get(ctx, viewPreferenceKey(sessionKey, boardSlug)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get view preference: %w", err)
	}

	view, ok := board.ParseViewType(val)
	if !ok {
		return "", false, nil
	}

	return view, true, nil
}

// Set persists the view choice, refreshing the TTL.
func (s *ViewPreferenceStore) Set(ctx context.Context, sessionKey, boardSlug string, v board.ViewType) error {
	key := viewPreferenceKey(sessionKey, boardSlug)
	if err := s.client.Set(ctx, key, string(v), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save view preference: %w", err)
	}
	return nil
}

func viewPreferenceKey(sessionKey, boardSlug string) string {
	return fmt.Sprintf("%s:%s:%s", viewPreferenceKeyPrefix, sessionKey, boardSlug)
}
