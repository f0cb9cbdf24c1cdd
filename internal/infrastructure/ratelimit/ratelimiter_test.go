package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func limiters(t *testing.T) map[string]RateLimiter {
	return map[string]RateLimiter{
		"redis":  NewRedisRateLimiter(setupTestRedis(t)),
		"memory": NewMemoryRateLimiter(),
	}
}

func TestRateLimiter_PerMinute(t *testing.T) {
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			config := RateLimitConfig{RequestsPerMinute: 5}

			for i := 0; i < 5; i++ {
				allowed, err := limiter.Allow(ctx, "login:10.0.0.1", config)
				require.NoError(t, err)
				assert.True(t, allowed, "request %d should be allowed", i+1)
			}

			allowed, err := limiter.Allow(ctx, "login:10.0.0.1", config)
			require.NoError(t, err)
			assert.False(t, allowed)

			allowed, err = limiter.Allow(ctx, "login:10.0.0.2", config)
			require.NoError(t, err)
			assert.True(t, allowed, "other keys are independent")
		})
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			config := RateLimitConfig{RequestsPerMinute: 1}

			allowed, err := limiter.Allow(ctx, "sync", config)
			require.NoError(t, err)
			require.True(t, allowed)

			allowed, err = limiter.Allow(ctx, "sync", config)
			require.NoError(t, err)
			require.False(t, allowed)

			require.NoError(t, limiter.Reset(ctx, "sync"))

			allowed, err = limiter.Allow(ctx, "sync", config)
			require.NoError(t, err)
			assert.True(t, allowed)
		})
	}
}

func TestMemoryRateLimiter_WindowSlides(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()
	config := RateLimitConfig{RequestsPerMinute: 2, RequestsPerHour: 3}

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow(ctx, "k", config)
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow(ctx, "k", config)
	assert.False(t, allowed)

	now = now.Add(61 * time.Second)
	allowed, _ = limiter.Allow(ctx, "k", config)
	assert.False(t, allowed, "hourly limit counts rejected attempts too")
}

func TestRateLimiter_ZeroLimitsAllowEverything(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(context.Background(), "k", RateLimitConfig{})
		require.NoError(t, err)
		require.True(t, allowed)
	}
}
