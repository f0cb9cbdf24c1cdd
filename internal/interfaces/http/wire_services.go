package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/infrastructure/auth"
	"agroplan/internal/infrastructure/cache"
	"agroplan/internal/infrastructure/config"
	"agroplan/internal/infrastructure/erp"
	"agroplan/internal/infrastructure/permission"
	"agroplan/internal/infrastructure/ratelimit"
	"agroplan/internal/infrastructure/scheduler"
	"agroplan/internal/shared/logger"
)

// initInfrastructure picks Redis-backed or in-process caches, builds the
// repositories, the auth services and the casbin enforcer.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		c.catalogCache = cache.NewRedisCatalogCache(client, cfg.Catalog.CacheTTL(), c.log)
		c.submitGuard = cache.NewRedisSubmitGuard(client)
		c.rateLimiter = ratelimit.NewRedisRateLimiter(client)
	} else {
		c.log.Infow("redis disabled, using in-process caches")
		c.catalogCache = cache.NewMemoryCatalogCache(cfg.Catalog.CacheTTL())
		c.submitGuard = cache.NewMemorySubmitGuard()
		c.rateLimiter = ratelimit.NewMemoryRateLimiter()
	}

	c.repos = newRepositories(c.db, c.log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	c.erpClient = erp.NewCatalogClient(cfg.Catalog.SyncURL, cfg.Catalog.SyncToken, cfg.Catalog.SyncTimeout(), c.log)
	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	return client, nil
}

// initServices builds the conflict detector, the replication planner and
// the class matcher.
func (c *Container) initServices() error {
	c.detector = planning.NewDetector(c.repos.recordRepo, c.repos.plotRepo)
	resolver := newTargetResolver(c.repos)
	c.planner = planning.NewPlanner(resolver, c.detector, c.cfg.Planning.ReplicationConcurrency)

	synonyms, err := config.LoadSynonyms(c.cfg.Planning.SynonymsFile)
	if err != nil {
		return fmt.Errorf("failed to load class synonyms: %w", err)
	}
	c.matcher = catalog.NewMatcher(synonyms)
	return nil
}

// initScheduler registers the periodic ERP pull when both an interval and a
// sync endpoint are configured.
func (c *Container) initScheduler() error {
	interval := c.cfg.Catalog.SyncInterval()
	if interval <= 0 || !c.erpClient.Configured() {
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(c.log.With("component", "scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	timeout := c.cfg.Catalog.SyncTimeout() * 2
	if timeout <= 0 {
		timeout = time.Minute
	}
	if err := manager.RegisterCatalogSyncJob(scheduler.BatchJobFunc(c.ucs.syncPesticidesUC.RunScheduled), interval, timeout); err != nil {
		return fmt.Errorf("failed to register catalog sync job: %w", err)
	}
	c.schedulerManager = manager
	return nil
}
