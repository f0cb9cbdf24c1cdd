package routes

import (
	"github.com/gin-gonic/gin"

	"agroplan/internal/infrastructure/permission"
	"agroplan/internal/interfaces/http/handlers"
	"agroplan/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler       *handlers.CatalogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCatalogRoutes configures pesticide, fertilizer, cultivar, seed
// treatment, calendar and justification routes.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	perm := cfg.PermissionMiddleware
	read := perm.RequirePermission(permission.ResourceCatalog, permission.ActionRead)
	write := perm.RequirePermission(permission.ResourceCatalog, permission.ActionWrite)
	importer := perm.RequirePermission(permission.ResourceCatalog, permission.ActionImport)

	cat := api.Group("")
	cat.Use(cfg.AuthMiddleware.RequireAuth())
	{
		pesticides := cat.Group("/defensivos")
		{
			pesticides.GET("", read, cfg.CatalogHandler.ListPesticides)
			pesticides.POST("", write, cfg.CatalogHandler.CreatePesticide)
			pesticides.POST("/bulk", importer, cfg.CatalogHandler.ImportPesticides)
			pesticides.POST("/sync", importer, cfg.CatalogHandler.SyncPesticides)
			pesticides.PUT("/:cod_item", write, cfg.CatalogHandler.UpdatePesticide)
		}

		cat.GET("/fertilizantes", read, cfg.CatalogHandler.ListFertilizers)
		cat.POST("/fertilizantes/bulk", importer, cfg.CatalogHandler.ImportFertilizers)
		cat.GET("/cultivares", read, cfg.CatalogHandler.ListCultivars)
		cat.GET("/tratamentos", read, cfg.CatalogHandler.ListTreatments)
		cat.GET("/calendario", read, cfg.CatalogHandler.GetCalendar)
		cat.POST("/calendario/bulk", importer, cfg.CatalogHandler.ImportCalendar)
		cat.GET("/justificativas", read, cfg.CatalogHandler.ListJustifications)
		cat.POST("/catalog/match-class", read, cfg.CatalogHandler.MatchClass)
	}
}
