package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/auth_controller"
	"github.com/jupabego97/reportes-react-sub000/middleware"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
	}

	protected := auth.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", auth_controller.Me)
	}
}
