package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/logger"
)

// Logger writes one record per request. The route template is logged next to
// the concrete path so /programacoes/:id requests group together.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Debugw("request served", args...)
		}
	}
}
