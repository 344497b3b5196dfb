package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}
}
