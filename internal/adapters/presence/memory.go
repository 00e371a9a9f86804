package presence

import (
	"context"
	"sync"
	"time"
)

// MemoryTracker is an in-process Tracker used when no Redis address is
// configured. Expired entries are pruned lazily on read.
type MemoryTracker struct {
	mu      sync.Mutex
	beats   map[string]time.Time
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewMemoryTracker creates an in-memory tracker.
func NewMemoryTracker(ttl time.Duration) *MemoryTracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryTracker{
		beats:   make(map[string]time.Time),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Heartbeat marks the account online for the tracker's TTL.
// POST: The account's deadline is extended
func (t *MemoryTracker) Heartbeat(_ context.Context, accountID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.beats[accountID] = t.nowFunc().Add(t.ttl)
	return nil
}

// Online returns the IDs of accounts with a live heartbeat.
// POST: Expired entries are removed as a side effect
func (t *MemoryTracker) Online(_ context.Context) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.nowFunc()
	var ids []string
	for id, deadline := range t.beats {
		if now.After(deadline) {
			delete(t.beats, id)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Offline drops an account's heartbeat immediately.
func (t *MemoryTracker) Offline(_ context.Context, accountID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.beats, accountID)
	return nil
}
