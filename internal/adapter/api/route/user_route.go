package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registra as rotas de usuários, restritas a administradores
func RegisterUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.Get)
		users.PUT("/:id", userController.Update)
		users.DELETE("/:id", userController.Delete)
	}
}
