// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_insights/internal/feature/candles/domain/entity"
	"stock_insights/internal/feature/candles/usecase"
)

// CachingShardRepository decorates a ShardRepository with Redis caching.
// The shard files are produced offline and only change on redeploy, so
// per-query results can be cached aggressively; a short TTL keeps a stale
// window bounded after a data refresh.
type CachingShardRepository struct {
	inner     usecase.ShardRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ShardRepository = (*CachingShardRepository)(nil)

// NewCachingShardRepository decorates a ShardRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "candles".
func NewCachingShardRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ShardRepository, namespace string) *CachingShardRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "candles"
	}
	return &CachingShardRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// HasShards is answered from the shard set itself; it never touches redis.
func (c *CachingShardRepository) HasShards(ticker string) bool {
	return c.inner.HasShards(ticker)
}

// DatesByShard retrieves the shard date lists, checking cache first.
func (c *CachingShardRepository) DatesByShard(ctx context.Context, ticker string) ([][]string, error) {
	key := fmt.Sprintf("%s:dates:%s", c.namespace, safe(ticker))
	return cached(ctx, c, key, func() ([][]string, error) {
		return c.inner.DatesByShard(ctx, ticker)
	})
}

// CandlesByShard retrieves one day's shard candles, checking cache first.
func (c *CachingShardRepository) CandlesByShard(ctx context.Context, ticker, date string) ([][]entity.Candle, error) {
	key := fmt.Sprintf("%s:rows:%s:%s", c.namespace, safe(ticker), safe(date))
	return cached(ctx, c, key, func() ([][]entity.Candle, error) {
		return c.inner.CandlesByShard(ctx, ticker, date)
	})
}

// cached is the read-through path: cache hit, else load and store best effort.
func cached[T any](ctx context.Context, c *CachingShardRepository, key string, load func() (T, error)) (T, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort: don't fail if caching fails
	}
	return out, nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
