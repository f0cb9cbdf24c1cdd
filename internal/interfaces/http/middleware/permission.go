package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

// PolicyEnforcer decides whether a role may run an action on a resource.
type PolicyEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}
		role := c.GetString(constants.ContextKeyUserRole)

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
