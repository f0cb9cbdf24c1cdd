// Package ratelimit throttles sensitive endpoints (login, catalog sync) with
// a sliding window per key.
package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	Reset(ctx context.Context, key string) error
}

type window struct {
	duration time.Duration
	limit    int
}

func (c RateLimitConfig) windows() []window {
	return []window{
		{time.Minute, c.RequestsPerMinute},
		{time.Hour, c.RequestsPerHour},
	}
}
