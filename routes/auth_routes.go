package routes

import (
	"voyago/internal/handlers"
	"voyago/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.Engine, authHandler *handlers.AuthHandler, jwtSecret string) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	profile := router.Group("/profile")
	profile.Use(middleware.AuthRequired(jwtSecret))
	{
		profile.GET("", authHandler.Profile)
		profile.PUT("/vehicles", authHandler.ReplaceVehicles)
		profile.POST("/vehicles", authHandler.AddVehicle)
		profile.DELETE("/vehicles/:id", authHandler.RemoveVehicle)
	}
}
