package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zelo/internal/interfaces/http/middleware"
	"zelo/internal/interfaces/http/routes"
)

// SetupRoutes builds the gin engine, installs the global middleware chain
// and registers every route group. It must be called once after NewContainer.
func (c *Container) SetupRoutes() {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.SecurityHeaders())

	// Portal endpoints answer any origin; links arrive by email and are
	// opened from arbitrary clients. Everything else honours the whitelist.
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins,
		"/supplier-route", "/submit-supplier-action"))

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupPortalRoutes(engine, &routes.PortalRouteConfig{
		PortalHandler: c.hdlrs.portal,
	})

	routes.SetupAssistanceRoutes(engine, &routes.AssistanceRouteConfig{
		AssistanceHandler: c.hdlrs.assistance,
		PortalHandler:     c.hdlrs.portal,
		AuthMiddleware:    c.authMiddleware,
	})

	routes.SetupBuildingRoutes(engine, &routes.BuildingRouteConfig{
		BuildingHandler: c.hdlrs.building,
		AuthMiddleware:  c.authMiddleware,
	})

	routes.SetupSupplierRoutes(engine, &routes.SupplierRouteConfig{
		SupplierHandler: c.hdlrs.supplier,
		AuthMiddleware:  c.authMiddleware,
	})

	c.engine = engine
}
