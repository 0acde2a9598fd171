// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	quotaadapters "stock_insights/internal/feature/quota/adapters"
	quotaentity "stock_insights/internal/feature/quota/domain/entity"
	"stock_insights/internal/feature/quota/usecase"
	"stock_insights/internal/platform/config"
	"stock_insights/internal/platform/session"
)

// NewSessionStore creates a session.Store implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to process memory.
func NewSessionStore(rdb *redis.Client, ttl time.Duration) session.Store {
	if rdb != nil {
		return session.NewRedisStore(rdb, "session", ttl)
	}
	return session.NewMemoryStore(ttl)
}

// NewQuotaGate creates the quota gate. With redis present the gate counts
// there and keeps the in-process store as its degraded path; without redis
// the in-process store carries everything.
func NewQuotaGate(rdb *redis.Client, cfg config.QuotaConfig) *usecase.Gate {
	limits := map[string]quotaentity.Limit{
		quotaentity.ClassDefault:  {Max: cfg.Default.Max, Window: cfg.Default.Window},
		quotaentity.ClassInsights: {Max: cfg.Insights.Max, Window: cfg.Insights.Window},
	}

	var primary usecase.CounterStore
	if rdb != nil {
		primary = quotaadapters.NewRedisCounter(rdb)
	}
	return usecase.NewGate(primary, quotaadapters.NewMemoryCounter(), limits)
}
