package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterCartRoutes registra as rotas do carrinho de caixa
func RegisterCartRoutes(router *gin.RouterGroup, cartController *controller.CartController) {
	cart := router.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", cartController.Get)
		cart.DELETE("", cartController.Clear)
		cart.POST("/items", cartController.AddItem)
		cart.PUT("/items/:productId", cartController.SetQuantity)
		cart.DELETE("/items/:productId", cartController.RemoveItem)
	}
}
