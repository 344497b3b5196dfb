package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registra as rotas de clientes
func RegisterCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := router.Group("/customers")
	customers.Use(middleware.AuthMiddleware())
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/search", customerController.Search)
		customers.GET("/:id", customerController.Get)
		customers.PUT("/:id", customerController.Update)
		customers.POST("/:id/recalculate", customerController.Recalculate)
		customers.DELETE("/:id", customerController.Delete)
	}
}
