package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter is the single-instance fallback used when Redis is disabled.
type MemoryRateLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{hits: make(map[string][]time.Time), now: time.Now}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	hits := l.hits[key]

	// drop entries older than the longest window
	cutoff := now.Add(-time.Hour)
	kept := hits[:0]
	for _, h := range hits {
		if h.After(cutoff) {
			kept = append(kept, h)
		}
	}

	allowed := true
	for _, w := range config.windows() {
		if w.limit <= 0 {
			continue
		}
		start := now.Add(-w.duration)
		count := 0
		for _, h := range kept {
			if h.After(start) {
				count++
			}
		}
		if count >= w.limit {
			allowed = false
			break
		}
	}

	l.hits[key] = append(kept, now)
	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.hits, key)
	l.mu.Unlock()
	return nil
}
