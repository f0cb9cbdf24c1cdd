package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agroplan/internal/shared/constants"
)

// RequestID propagates X-Request-ID, minting one when the client sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)
		c.Next()
	}
}
