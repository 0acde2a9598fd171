package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with an in-process map. It is the fallback
// when Redis is unavailable; sessions are then per-process only.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	expires map[string]time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new MemoryStore instance.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, expires: make(map[string]time.Time)}
}

// Touch refreshes the TTL of a known, unexpired session.
func (s *MemoryStore) Touch(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.expires[id]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(s.expires, id)
		return false, nil
	}
	s.expires[id] = time.Now().Add(s.ttl)
	return true, nil
}

// Save persists a new session id with the configured TTL.
func (s *MemoryStore) Save(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[id] = time.Now().Add(s.ttl)
	return nil
}
