// Package adapters provides the quota counter stores.
package adapters

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_insights/internal/feature/quota/usecase"
)

// RedisCounter implements the fixed-window counter on redis. INCR is the
// atomic compare-and-increment: two concurrent calls can never observe the
// same post-increment count.
type RedisCounter struct {
	client *redis.Client
}

var _ usecase.CounterStore = (*RedisCounter)(nil)

// NewRedisCounter creates a RedisCounter over the given client.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr increments the key and returns the new count. The first increment
// of a window arms the expiry; later ones leave the remaining TTL alone.
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}
