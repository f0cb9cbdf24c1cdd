package routes

import (
	"github.com/gin-gonic/gin"

	"agroplan/internal/infrastructure/permission"
	"agroplan/internal/interfaces/http/handlers"
	"agroplan/internal/interfaces/http/middleware"
)

// ReferenceRouteConfig holds dependencies for producer, farm, plot, season
// and epoch routes.
type ReferenceRouteConfig struct {
	ReferenceHandler     *handlers.ReferenceHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReferenceRoutes(api *gin.RouterGroup, cfg *ReferenceRouteConfig) {
	ref := api.Group("")
	ref.Use(cfg.AuthMiddleware.RequireAuth())
	{
		read := cfg.PermissionMiddleware.RequirePermission(permission.ResourceReference, permission.ActionRead)
		write := cfg.PermissionMiddleware.RequirePermission(permission.ResourceReference, permission.ActionWrite)

		ref.GET("/produtores", read, cfg.ReferenceHandler.ListProducers)
		ref.GET("/fazendas", read, cfg.ReferenceHandler.ListFarms)
		ref.GET("/talhoes", read, cfg.ReferenceHandler.ListPlots)
		ref.POST("/talhoes", write, cfg.ReferenceHandler.CreatePlot)
		ref.GET("/safras", read, cfg.ReferenceHandler.ListSeasons)
		ref.GET("/epocas", read, cfg.ReferenceHandler.ListEpochs)
	}
}
