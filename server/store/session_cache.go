// server/store/session_cache.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/streamkit/stream-manager/shared/models"
)

// SessionCache keeps session JSON in Redis for the overlay read path.
// Every overlay page polls its session about once a second; the cache
// absorbs those reads so MongoDB only sees dashboard traffic. Mutations
// invalidate the key, so staleness is bounded by the TTL.
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionCache(client *redis.Client, ttl time.Duration) *SessionCache {
	return &SessionCache{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:{%s}", id)
}

// Get returns the cached session, or (nil, nil) on a miss.
func (sc *SessionCache) Get(ctx context.Context, id string) (*models.Session, error) {
	raw, err := sc.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s from cache: %w", id, err)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("corrupt cache entry for session %s: %w", id, err)
	}
	return &session, nil
}

// Set stores the session with the configured TTL.
func (sc *SessionCache) Set(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s for cache: %w", session.ID, err)
	}
	if err := sc.client.Set(ctx, sessionKey(session.ID), raw, sc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session %s: %w", session.ID, err)
	}
	return nil
}

// Invalidate drops the cached entry so the next poll sees fresh state.
func (sc *SessionCache) Invalidate(ctx context.Context, id string) error {
	if err := sc.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached session %s: %w", id, err)
	}
	return nil
}
