package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestIncrWithTTL_CountsWithinWindow(t *testing.T) {
	store := NewMemoryStore()
	for i := 1; i <= 4; i++ {
		count, err := store.IncrWithTTL(context.Background(), "rl:ip:order:1.2.3.4", time.Hour)
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if count != int64(i) {
			t.Fatalf("expected count %d, got %d", i, count)
		}
	}
}

func TestIncrWithTTL_LazyWindowReset(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStoreWithClock(func() time.Time { return current })

	for i := 0; i < 3; i++ {
		if _, err := store.IncrWithTTL(context.Background(), "k", time.Hour); err != nil {
			t.Fatalf("incr: %v", err)
		}
	}

	// Still inside the window: the counter keeps growing.
	current = current.Add(59 * time.Minute)
	count, err := store.IncrWithTTL(context.Background(), "k", time.Hour)
	if err != nil {
		t.Fatalf("incr: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 inside window, got %d", count)
	}

	// Past expiry: the next increment starts a fresh window.
	current = current.Add(2 * time.Minute)
	count, err = store.IncrWithTTL(context.Background(), "k", time.Hour)
	if err != nil {
		t.Fatalf("incr: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected fresh window count 1, got %d", count)
	}
}

func TestIncrWithTTL_IndependentKeys(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.IncrWithTTL(context.Background(), "a", time.Hour); err != nil {
		t.Fatalf("incr a: %v", err)
	}
	count, err := store.IncrWithTTL(context.Background(), "b", time.Hour)
	if err != nil {
		t.Fatalf("incr b: %v", err)
	}
	if count != 1 {
		t.Fatalf("keys must not share counters, got %d", count)
	}
}
