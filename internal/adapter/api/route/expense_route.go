package route

import (
	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registra as rotas de despesas
func RegisterExpenseRoutes(router *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenses := router.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	{
		expenses.POST("", expenseController.Create)
		expenses.GET("", expenseController.List)
		expenses.GET("/:id", expenseController.Get)
		expenses.PUT("/:id", expenseController.Update)
		expenses.DELETE("/:id", expenseController.Delete)
	}
}
