package http

import (
	"agroplan/internal/interfaces/http/middleware"
	"agroplan/internal/interfaces/http/routes"
)

// SetupRoutes registers the global middleware chain and every route group
// under the configured base path.
func (c *Container) SetupRoutes() {
	e := c.engine
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(c.log))
	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.Use(middleware.SecurityHeaders())

	basePath := c.cfg.Server.BasePath
	if basePath == "" {
		basePath = "/api"
	}
	api := e.Group(basePath)

	api.GET("/health", c.hdlrs.healthHandler.Check)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:         c.hdlrs.authHandler,
		AuthMiddleware:      c.authMiddleware,
		RateLimitMiddleware: c.rateLimitMiddleware,
	})

	routes.SetupProgrammingRoutes(api, &routes.ProgrammingRouteConfig{
		ProgrammingHandler:    c.hdlrs.programmingHandler,
		ApplicationHandler:    c.hdlrs.applicationHandler,
		AuthMiddleware:        c.authMiddleware,
		PermissionMiddleware:  c.permissionMiddleware,
		SubmitGuardMiddleware: c.submitGuardMiddleware,
	})

	routes.SetupReferenceRoutes(api, &routes.ReferenceRouteConfig{
		ReferenceHandler:     c.hdlrs.referenceHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		CatalogHandler:       c.hdlrs.catalogHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupReportRoutes(api, &routes.ReportRouteConfig{
		ReportHandler:        c.hdlrs.reportHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
