package routes

import (
	"github.com/gin-gonic/gin"

	"zelo/internal/interfaces/http/handlers"
	"zelo/internal/interfaces/http/middleware"
)

type BuildingRouteConfig struct {
	BuildingHandler *handlers.BuildingHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupBuildingRoutes(engine *gin.Engine, config *BuildingRouteConfig) {
	buildings := engine.Group("/buildings")
	buildings.Use(config.AuthMiddleware.RequireAuth())
	{
		buildings.POST("", config.BuildingHandler.Create)
		buildings.GET("", config.BuildingHandler.List)
		buildings.GET("/:id", config.BuildingHandler.Get)
		buildings.PUT("/:id", config.BuildingHandler.Update)
	}
}
