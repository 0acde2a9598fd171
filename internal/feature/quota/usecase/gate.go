// Package usecase implements the session quota gate.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"stock_insights/internal/feature/quota/domain"
	"stock_insights/internal/feature/quota/domain/entity"
)

// CounterStore is a fixed-window counter. Incr atomically increments the
// key's counter and returns the post-increment count; a fresh counter
// starts its window at the first increment and expires after window.
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Gate admits or rejects operations against per-session, per-class limits.
// The primary store is typically redis; when it errors the gate degrades
// to the fallback (in-process) store for the rest of the process lifetime.
type Gate struct {
	primary  CounterStore // may be nil when redis is not configured
	fallback CounterStore
	limits   map[string]entity.Limit

	degraded atomic.Bool
	logOnce  sync.Once
}

// NewGate creates a Gate. primary may be nil; fallback must not be.
func NewGate(primary, fallback CounterStore, limits map[string]entity.Limit) *Gate {
	return &Gate{primary: primary, fallback: fallback, limits: limits}
}

// CheckAndConsume consumes one slot for the session in the given class.
// It returns nil when the request is admitted, a *domain.QuotaExceededError
// when the allowance is used up, and the store error otherwise. The slot is
// consumed before the delegated work begins; rejected requests still count.
func (g *Gate) CheckAndConsume(ctx context.Context, sessionID, class string) error {
	limit, ok := g.limits[class]
	if !ok {
		return fmt.Errorf("unknown quota class %q", class)
	}

	key := fmt.Sprintf("quota:%s:%s", class, sessionID)
	count, err := g.incr(ctx, key, limit.Window)
	if err != nil {
		return fmt.Errorf("quota counter: %w", err)
	}
	if count > int64(limit.Max) {
		return &domain.QuotaExceededError{Class: class, Max: limit.Max, Window: limit.Window}
	}
	return nil
}

// incr tries the primary store until it fails once, then sticks with the
// fallback. Counts do not carry over across the switch; sessions start a
// fresh window in the fallback store.
func (g *Gate) incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if g.primary != nil && !g.degraded.Load() {
		count, err := g.primary.Incr(ctx, key, window)
		if err == nil {
			return count, nil
		}
		g.degraded.Store(true)
		g.logOnce.Do(func() {
			slog.Warn("quota counter degraded to in-process store", "error", err)
		})
	}
	return g.fallback.Incr(ctx, key, window)
}
