package routes

import (
	"github.com/gin-gonic/gin"

	"agroplan/internal/infrastructure/permission"
	"agroplan/internal/interfaces/http/handlers"
	"agroplan/internal/interfaces/http/middleware"
)

// ReportRouteConfig holds dependencies for report routes.
type ReportRouteConfig struct {
	ReportHandler        *handlers.ReportHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReportRoutes(api *gin.RouterGroup, cfg *ReportRouteConfig) {
	reports := api.Group("/reports")
	reports.Use(cfg.AuthMiddleware.RequireAuth())
	reports.Use(cfg.PermissionMiddleware.RequirePermission(permission.ResourceReport, permission.ActionRead))
	{
		reports.GET("/programacao_safra", cfg.ReportHandler.SeasonProgramming)
	}
}
