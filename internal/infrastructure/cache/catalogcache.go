package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/shared/logger"
)

// CatalogCache holds the read-mostly catalog listings used by product
// filtering and class matching. A miss returns ok == false.
type CatalogCache interface {
	GetPesticides(ctx context.Context) (items []*catalog.Pesticide, ok bool, err error)
	SetPesticides(ctx context.Context, items []*catalog.Pesticide) error
	GetCalendar(ctx context.Context) (entries []catalog.CalendarApplication, ok bool, err error)
	SetCalendar(ctx context.Context, entries []catalog.CalendarApplication) error
	// Invalidate drops every catalog entry; imports and syncs call it.
	Invalidate(ctx context.Context) error
}

const (
	catalogKeyPrefix    = "catalog:"
	catalogPesticideKey = catalogKeyPrefix + "pesticides"
	catalogCalendarKey  = catalogKeyPrefix + "calendar"
	catalogTTLJitter    = 30 * time.Second
)

type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCatalogCache) GetPesticides(ctx context.Context) ([]*catalog.Pesticide, bool, error) {
	var items []*catalog.Pesticide
	ok, err := c.get(ctx, catalogPesticideKey, &items)
	return items, ok, err
}

func (c *RedisCatalogCache) SetPesticides(ctx context.Context, items []*catalog.Pesticide) error {
	return c.set(ctx, catalogPesticideKey, items)
}

func (c *RedisCatalogCache) GetCalendar(ctx context.Context) ([]catalog.CalendarApplication, bool, error) {
	var entries []catalog.CalendarApplication
	ok, err := c.get(ctx, catalogCalendarKey, &entries)
	return entries, ok, err
}

func (c *RedisCatalogCache) SetCalendar(ctx context.Context, entries []catalog.CalendarApplication) error {
	return c.set(ctx, catalogCalendarKey, entries)
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogPesticideKey, catalogCalendarKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}

func (c *RedisCatalogCache) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warnw("dropping corrupt catalog cache entry", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *RedisCatalogCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	// jitter spreads expiry across instances
	ttl := c.ttl + time.Duration(rand.Int64N(int64(catalogTTLJitter)))
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// MemoryCatalogCache is the in-process CatalogCache used without Redis.
type MemoryCatalogCache struct {
	mu          sync.RWMutex
	ttl         time.Duration
	now         func() time.Time
	pesticides  []*catalog.Pesticide
	pesticideAt time.Time
	calendar    []catalog.CalendarApplication
	calendarAt  time.Time
}

func NewMemoryCatalogCache(ttl time.Duration) *MemoryCatalogCache {
	return &MemoryCatalogCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCatalogCache) fresh(at time.Time) bool {
	return !at.IsZero() && c.now().Sub(at) < c.ttl
}

func (c *MemoryCatalogCache) GetPesticides(context.Context) ([]*catalog.Pesticide, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.fresh(c.pesticideAt) {
		return nil, false, nil
	}
	return c.pesticides, true, nil
}

func (c *MemoryCatalogCache) SetPesticides(_ context.Context, items []*catalog.Pesticide) error {
	c.mu.Lock()
	c.pesticides, c.pesticideAt = items, c.now()
	c.mu.Unlock()
	return nil
}

func (c *MemoryCatalogCache) GetCalendar(context.Context) ([]catalog.CalendarApplication, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.fresh(c.calendarAt) {
		return nil, false, nil
	}
	return c.calendar, true, nil
}

func (c *MemoryCatalogCache) SetCalendar(_ context.Context, entries []catalog.CalendarApplication) error {
	c.mu.Lock()
	c.calendar, c.calendarAt = entries, c.now()
	c.mu.Unlock()
	return nil
}

func (c *MemoryCatalogCache) Invalidate(context.Context) error {
	c.mu.Lock()
	c.pesticides, c.pesticideAt = nil, time.Time{}
	c.calendar, c.calendarAt = nil, time.Time{}
	c.mu.Unlock()
	return nil
}
