package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is an in-process sliding-window limiter for
// single-instance deployments. Counters live per key; stale windows are
// pruned on access.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	now     func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(key string, cfg Config) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-cfg.Window)

	kept := l.entries[key][:0]
	for _, t := range l.entries[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	allowed := len(kept) < cfg.Limit
	kept = append(kept, now)
	l.entries[key] = kept

	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	return nil
}
