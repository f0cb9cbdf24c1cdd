package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agroplan/internal/infrastructure/cache"
	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

const maxGuardedBody = 4 << 20

// SubmitGuardMiddleware rejects an identical write from the same user while
// the previous one is still inside the debounce window.
type SubmitGuardMiddleware struct {
	guard  cache.SubmitGuard
	window time.Duration
	logger logger.Interface
}

func NewSubmitGuardMiddleware(guard cache.SubmitGuard, window time.Duration, logger logger.Interface) *SubmitGuardMiddleware {
	return &SubmitGuardMiddleware{
		guard:  guard,
		window: window,
		logger: logger,
	}
}

func (m *SubmitGuardMiddleware) Debounce() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.window <= 0 {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxGuardedBody))
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		key := submitKey(c.GetUint(constants.ContextKeyUserID), c.Request.Method, c.Request.URL.Path, body)

		acquired, err := m.guard.TryAcquire(c.Request.Context(), key, m.window)
		if err != nil {
			m.logger.Warnw("submit guard unavailable", "error", err)
			c.Next()
			return
		}
		if !acquired {
			m.logger.Infow("duplicate submit rejected", "path", c.Request.URL.Path, "user_id", c.GetUint(constants.ContextKeyUserID))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "duplicate request, please wait before submitting again")
			c.Abort()
			return
		}

		c.Next()
	}
}

func submitKey(userID uint, method, path string, body []byte) string {
	sum := sha256.Sum256(body)
	return fmt.Sprintf("%d:%s:%s:%s", userID, method, path, hex.EncodeToString(sum[:8]))
}
