package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis with per-key TTL.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a new RedisStore instance.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// sessionKey returns the Redis key for a session.
func (s *RedisStore) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

// Touch refreshes the TTL of a known session. A key Redis no longer holds
// (expired or never saved) reports false.
func (s *RedisStore) Touch(ctx context.Context, id string) (bool, error) {
	known, err := s.client.Expire(ctx, s.sessionKey(id), s.ttl).Result()
	if err != nil {
		return false, err
	}
	return known, nil
}

// Save persists a new session id with the configured TTL.
func (s *RedisStore) Save(ctx context.Context, id string) error {
	return s.client.Set(ctx, s.sessionKey(id), time.Now().UTC().Format(time.RFC3339), s.ttl).Err()
}
