package adapters

import (
	"context"
	"sync"
	"time"

	"stock_insights/internal/feature/quota/usecase"
)

type windowCounter struct {
	count   int64
	resetAt time.Time
}

// MemoryCounter implements the fixed-window counter in process memory.
// It backs single-instance deployments and the degraded path when redis
// is unreachable.
type MemoryCounter struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
	now      func() time.Time
}

var _ usecase.CounterStore = (*MemoryCounter)(nil)

// NewMemoryCounter creates an empty in-process counter store.
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		counters: make(map[string]*windowCounter),
		now:      time.Now,
	}
}

// Incr increments the key's counter within its current window and returns
// the new count. An expired window resets to a fresh one starting now.
func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	w, ok := c.counters[key]
	if !ok || !now.Before(w.resetAt) {
		w = &windowCounter{resetAt: now.Add(window)}
		c.counters[key] = w
	}
	w.count++
	return w.count, nil
}
