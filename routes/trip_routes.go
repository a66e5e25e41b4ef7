package routes

import (
	"voyago/internal/handlers"
	"voyago/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTripRoutes(router *gin.Engine, tripHandler *handlers.TripHandler, wsHandler *handlers.WSHandler, jwtSecret string) {
	trips := router.Group("/trips")
	trips.Use(middleware.AuthRequired(jwtSecret))
	{
		trips.GET("", tripHandler.List)
		trips.POST("", tripHandler.Create)
		trips.GET("/:id", tripHandler.Get)
		trips.PUT("/:id", tripHandler.Update)
		trips.PUT("/:id/status", tripHandler.UpdateStatus)
		trips.DELETE("/:id", tripHandler.Delete)
	}

	watch := router.Group("/ws")
	watch.Use(middleware.AuthRequired(jwtSecret))
	{
		watch.GET("/trips/:id", wsHandler.WatchTrip)
	}
}
