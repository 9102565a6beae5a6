package routes

import (
	"github.com/gin-gonic/gin"

	"zelo/internal/interfaces/http/handlers"
	"zelo/internal/interfaces/http/middleware"
)

type AssistanceRouteConfig struct {
	AssistanceHandler *handlers.AssistanceHandler
	PortalHandler     *handlers.SupplierPortalHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupAssistanceRoutes(engine *gin.Engine, config *AssistanceRouteConfig) {
	assistances := engine.Group("/assistances")
	assistances.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		assistances.POST("",
			config.AssistanceHandler.Create)
		assistances.GET("",
			config.AssistanceHandler.List)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		assistances.POST("/:id/assign",
			config.AssistanceHandler.AssignSupplier)
		assistances.POST("/:id/cancel",
			config.AssistanceHandler.Cancel)
		assistances.POST("/:id/validate",
			config.AssistanceHandler.Validate)
		assistances.POST("/:id/reopen",
			middleware.RequireAdmin(),
			config.AssistanceHandler.Reopen)
		assistances.POST("/:id/communications",
			config.AssistanceHandler.AddCommunication)
		assistances.GET("/:id/communications",
			config.AssistanceHandler.ListCommunications)
		assistances.POST("/:id/attachments",
			config.AssistanceHandler.UploadAttachment)
		assistances.GET("/:id/attachments",
			config.AssistanceHandler.ListAttachments)

		// Generic parameterized routes (must come LAST)
		assistances.GET("/:id",
			config.AssistanceHandler.Get)
	}

	// Reminder processing lives under the authenticated surface so an
	// external cron can drive it when the embedded scheduler is off.
	engine.POST("/process-reminders",
		config.AuthMiddleware.RequireAuth(),
		middleware.RequireAdmin(),
		config.PortalHandler.ProcessReminders)
}
