package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is a process-local fixed-window counter compatible with the
// redis-backed IncrWithTTL seam. Windows reset lazily: the first increment
// after expiry starts a fresh window. Entries are never evicted, which is
// acceptable for the low-traffic surfaces this throttles.
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

// NewMemoryStore builds a store on the wall clock.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock builds a store with an injectable clock.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now, entries: map[string]entry{}}
}

// IncrWithTTL increments the counter at key, starting a new window of the
// given length when none is active.
func (s *MemoryStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.now()
	e, ok := s.entries[key]
	if !ok || !current.Before(e.resetAt) {
		e = entry{count: 0, resetAt: current.Add(ttl)}
	}
	e.count++
	s.entries[key] = e
	return e.count, nil
}
