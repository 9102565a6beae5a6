package routes

import (
	"github.com/gin-gonic/gin"

	"zelo/internal/interfaces/http/handlers"
)

type PortalRouteConfig struct {
	PortalHandler *handlers.SupplierPortalHandler
}

// SetupPortalRoutes registers the public supplier portal endpoints. No
// session auth applies here; the capability token in each request is the
// whole credential.
func SetupPortalRoutes(engine *gin.Engine, config *PortalRouteConfig) {
	engine.GET("/supplier-route", config.PortalHandler.ViewAssistance)
	engine.POST("/submit-supplier-action", config.PortalHandler.SubmitAction)
}
