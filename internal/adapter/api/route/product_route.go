package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterProductRoutes registra as rotas de produtos
func RegisterProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	products := router.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/low-stock", productController.ListLowStock)
		products.GET("/barcode/:code", productController.GetByBarcode)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.POST("/:id/image", productController.UploadImage)
		products.DELETE("/:id", productController.Delete)
	}
}
