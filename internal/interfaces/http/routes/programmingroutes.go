package routes

import (
	"github.com/gin-gonic/gin"

	"agroplan/internal/infrastructure/permission"
	"agroplan/internal/interfaces/http/handlers"
	"agroplan/internal/interfaces/http/middleware"
)

// ProgrammingRouteConfig holds dependencies for programming record and
// pesticide application routes.
type ProgrammingRouteConfig struct {
	ProgrammingHandler    *handlers.ProgrammingHandler
	ApplicationHandler    *handlers.ApplicationHandler
	AuthMiddleware        *middleware.AuthMiddleware
	PermissionMiddleware  *middleware.PermissionMiddleware
	SubmitGuardMiddleware *middleware.SubmitGuardMiddleware
}

// SetupProgrammingRoutes configures /programacoes and /aplicacoes-defensivos.
func SetupProgrammingRoutes(api *gin.RouterGroup, cfg *ProgrammingRouteConfig) {
	perm := cfg.PermissionMiddleware
	debounce := cfg.SubmitGuardMiddleware.Debounce()

	records := api.Group("/programacoes")
	records.Use(cfg.AuthMiddleware.RequireAuth())
	{
		read := perm.RequirePermission(permission.ResourceRecord, permission.ActionRead)
		write := perm.RequirePermission(permission.ResourceRecord, permission.ActionWrite)

		records.GET("", read, cfg.ProgrammingHandler.List)
		records.POST("", write, debounce, cfg.ProgrammingHandler.Create)
		// registered before /:id so the static segment wins
		records.POST("/conflicts", read, cfg.ProgrammingHandler.CheckConflicts)
		records.GET("/:id", read, cfg.ProgrammingHandler.Get)
		records.PUT("/:id", write, debounce, cfg.ProgrammingHandler.Update)
		records.DELETE("/:id", write, cfg.ProgrammingHandler.Delete)
		records.GET("/:id/children", read, cfg.ProgrammingHandler.Children)
		records.POST("/:id/replicate",
			perm.RequirePermission(permission.ResourceRecord, permission.ActionReplicate),
			debounce,
			cfg.ProgrammingHandler.Replicate,
		)
	}

	applications := api.Group("/aplicacoes-defensivos")
	applications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		read := perm.RequirePermission(permission.ResourceApplication, permission.ActionRead)
		write := perm.RequirePermission(permission.ResourceApplication, permission.ActionWrite)

		applications.GET("", read, cfg.ApplicationHandler.List)
		applications.POST("", write, debounce, cfg.ApplicationHandler.Create)
		applications.GET("/:id", read, cfg.ApplicationHandler.Get)
		applications.PUT("/:id", write, debounce, cfg.ApplicationHandler.Update)
		applications.DELETE("/:id", write, cfg.ApplicationHandler.Delete)
		applications.POST("/:id/replicate",
			perm.RequirePermission(permission.ResourceApplication, permission.ActionReplicate),
			debounce,
			cfg.ApplicationHandler.Replicate,
		)
	}
}
