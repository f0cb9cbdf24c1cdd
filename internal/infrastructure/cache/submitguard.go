package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SubmitGuard rejects a repeated submission inside a debounce window.
type SubmitGuard interface {
	// TryAcquire returns true for the first caller with key inside ttl.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

const submitKeyPrefix = "submit:"

type RedisSubmitGuard struct {
	client *redis.Client
}

func NewRedisSubmitGuard(client *redis.Client) *RedisSubmitGuard {
	return &RedisSubmitGuard{client: client}
}

// TryAcquire uses SetNX so concurrent instances agree on one winner.
func (g *RedisSubmitGuard) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := g.client.SetNX(ctx, submitKeyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return acquired, nil
}

type MemorySubmitGuard struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemorySubmitGuard() *MemorySubmitGuard {
	return &MemorySubmitGuard{expires: make(map[string]time.Time), now: time.Now}
}

func (g *MemorySubmitGuard) TryAcquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for k, exp := range g.expires {
		if !now.Before(exp) {
			delete(g.expires, k)
		}
	}

	if _, held := g.expires[key]; held {
		return false, nil
	}
	g.expires[key] = now.Add(ttl)
	return true, nil
}
