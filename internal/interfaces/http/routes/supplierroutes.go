package routes

import (
	"github.com/gin-gonic/gin"

	"zelo/internal/interfaces/http/handlers"
	"zelo/internal/interfaces/http/middleware"
)

type SupplierRouteConfig struct {
	SupplierHandler *handlers.SupplierHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupSupplierRoutes(engine *gin.Engine, config *SupplierRouteConfig) {
	suppliers := engine.Group("/suppliers")
	suppliers.Use(config.AuthMiddleware.RequireAuth())
	{
		suppliers.POST("", config.SupplierHandler.Create)
		suppliers.GET("", config.SupplierHandler.List)
		suppliers.GET("/:id", config.SupplierHandler.Get)
		suppliers.PUT("/:id", config.SupplierHandler.Update)
	}
}
