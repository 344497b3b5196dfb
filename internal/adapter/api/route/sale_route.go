package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterSaleRoutes registra as rotas de vendas. A remoção de venda é
// restrita a administradores
func RegisterSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	sales := router.Group("/sales")
	sales.Use(middleware.AuthMiddleware())
	{
		sales.POST("/checkout", saleController.Checkout)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PUT("/:id", saleController.Update)
		sales.DELETE("/:id", middleware.AdminMiddleware(), saleController.Delete)
	}
}
