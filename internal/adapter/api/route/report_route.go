package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registra as rotas de relatórios
func RegisterReportRoutes(router *gin.RouterGroup, reportController *controller.ReportController) {
	reports := router.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/sales", reportController.Sales)
		reports.GET("/top-products", reportController.TopProducts)
		reports.GET("/summary", reportController.Summary)
	}
}
