package routes

import (
	"voyago/internal/handlers"
	"voyago/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSavedRouteRoutes(router *gin.Engine, routeHandler *handlers.SavedRouteHandler, jwtSecret string) {
	routes := router.Group("/saved-routes")
	routes.Use(middleware.AuthRequired(jwtSecret))
	{
		routes.GET("", routeHandler.List)
		routes.POST("", routeHandler.Toggle)
		routes.DELETE("/:id", routeHandler.Delete)
	}
}
