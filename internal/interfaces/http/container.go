package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUsecases "agroplan/internal/application/catalog/usecases"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/infrastructure/auth"
	"agroplan/internal/infrastructure/cache"
	"agroplan/internal/infrastructure/config"
	"agroplan/internal/infrastructure/erp"
	"agroplan/internal/infrastructure/permission"
	"agroplan/internal/infrastructure/ratelimit"
	"agroplan/internal/infrastructure/scheduler"
	"agroplan/internal/interfaces/http/middleware"
	"agroplan/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases,
// handlers and middlewares, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware        *middleware.AuthMiddleware
	permissionMiddleware  *middleware.PermissionMiddleware
	rateLimitMiddleware   *middleware.RateLimitMiddleware
	submitGuardMiddleware *middleware.SubmitGuardMiddleware

	// Services
	jwtSvc       *auth.JWTService
	hasher       *auth.BcryptPasswordHasher
	enforcer     *permission.Enforcer
	catalogCache catalogUsecases.CatalogCache
	submitGuard  cache.SubmitGuard
	rateLimiter  ratelimit.RateLimiter
	erpClient    *erp.CatalogClient
	matcher      *catalog.Matcher
	detector     *planning.Detector
	planner      *planning.Planner

	// Background jobs; nil when no job is configured
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
// It fails when the authorization policies or the synonym table cannot be
// loaded.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Redis or in-process caches, repositories, auth
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: planning and catalog services
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 3: use cases, handlers, middlewares
	c.ucs = newUseCases(c)
	c.hdlrs = newHandlers(c)
	c.initMiddlewares()

	// Section 4: background jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// Engine returns the gin engine with every route registered.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartBackground starts scheduled jobs, if any.
func (c *Container) StartBackground() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and releases the Redis client. The database
// is closed by the caller.
func (c *Container) Shutdown(ctx context.Context) {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Warnw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		c.log.Warnw("redis close timed out")
	}
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(c.rateLimiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
	}, c.log)
	c.submitGuardMiddleware = middleware.NewSubmitGuardMiddleware(c.submitGuard, c.cfg.Planning.SubmitDebounce(), c.log)
}

// redisPingTimeout bounds the startup connectivity check.
const redisPingTimeout = 5 * time.Second
