package routes

import (
	"github.com/gin-gonic/gin"

	"agroplan/internal/interfaces/http/handlers"
	"agroplan/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler         *handlers.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// SetupAuthRoutes configures login, refresh and current-user routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", cfg.RateLimitMiddleware.ByIP("login"), cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.RateLimitMiddleware.ByIP("refresh"), cfg.AuthHandler.Refresh)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
