package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agroplan/internal/infrastructure/ratelimit"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

// ByIP limits requests per client IP under the given scope (e.g. "login").
// Limiter failures let the request through.
func (m *RateLimitMiddleware) ByIP(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.config)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}
		if !allowed {
			m.logger.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
