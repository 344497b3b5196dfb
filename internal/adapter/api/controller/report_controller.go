package controller

import (
	"net/http"
	"strconv"

	"github.com/apenask/csnutri-server/internal/adapter/api/dto"
	"github.com/apenask/csnutri-server/internal/domain/report"
	"github.com/apenask/csnutri-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ReportController gerencia os relatórios gerenciais
type ReportController struct {
	reportRepo report.Repository
	logger     logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepo report.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Sales retorna o relatório de vendas de um período
// @Summary Relatório de vendas
// @Description Total e quantidade de vendas do período, com quebra por dia. Sem parâmetros, assume os últimos 30 dias
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início do período (YYYY-MM-DD)"
// @Param to query string false "Fim do período (YYYY-MM-DD)"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	from, to, err := dto.ParseReportPeriod(ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}

	rep, err := c.reportRepo.SalesByPeriod(ctx, from, to)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesReportResponse(rep))
}

// TopProducts retorna os produtos mais vendidos de um período
// @Summary Produtos mais vendidos
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início do período (YYYY-MM-DD)"
// @Param to query string false "Fim do período (YYYY-MM-DD)"
// @Param limit query int false "Quantidade de produtos (padrão 10)"
// @Success 200 {array} dto.TopProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/top-products [get]
func (c *ReportController) TopProducts(ctx *gin.Context) {
	from, to, err := dto.ParseReportPeriod(ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	products, err := c.reportRepo.TopProducts(ctx, from, to, limit)
	if err != nil {
		c.logger.Error("erro ao gerar ranking de produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopProductsResponse(products))
}

// Summary retorna o resumo financeiro de um período
// @Summary Resumo financeiro
// @Description Receita, despesas e lucro do período
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início do período (YYYY-MM-DD)"
// @Param to query string false "Fim do período (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	from, to, err := dto.ParseReportPeriod(ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}

	summary, err := c.reportRepo.Summary(ctx, from, to)
	if err != nil {
		c.logger.Error("erro ao gerar resumo financeiro", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
