package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/apenask/csnutri-server/internal/adapter/api/dto"
	"github.com/apenask/csnutri-server/internal/adapter/repository"
	saledomain "github.com/apenask/csnutri-server/internal/domain/sale"
	"github.com/apenask/csnutri-server/pkg/logger"
	"github.com/apenask/csnutri-server/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// SaleController gerencia o registro e a consulta de vendas
type SaleController struct {
	saleRepo    saledomain.Repository
	cartStore   saledomain.CartStore
	reportCache *repository.CachedReportRepository
	logger      logger.Logger
}

// NewSaleController cria uma nova instância de SaleController.
// reportCache pode ser nil quando o cache de relatórios está desligado
func NewSaleController(saleRepo saledomain.Repository, cartStore saledomain.CartStore, reportCache *repository.CachedReportRepository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:    saleRepo,
		cartStore:   cartStore,
		reportCache: reportCache,
		logger:      logger,
	}
}

// Checkout confirma a venda do carrinho do operador
// @Summary Confirmar venda
// @Description Valida os pagamentos contra o total do carrinho, baixa o estoque de forma condicional e registra a venda em uma única transação. Em dinheiro, devolve o troco calculado
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param checkout body dto.CheckoutRequest true "Pagamentos e dados da venda"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sales/checkout [post]
func (c *SaleController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID := ctx.GetString("user_id")
	cart, err := c.cartStore.Get(ctx, userID)
	if err != nil {
		c.logger.Error("erro ao carregar carrinho", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar carrinho", err.Error()))
		return
	}

	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	result, err := saledomain.Checkout(cart, dto.ToPaymentInputs(req.Payments), req.CustomerID, userID, saleDate)
	if err != nil {
		metrics.SalesFailedTotal.WithLabelValues("validation").Inc()
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "venda recusada", err.Error()))
		return
	}

	created, err := c.saleRepo.Create(ctx, result.Sale)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			metrics.SalesFailedTotal.WithLabelValues("insufficient_stock").Inc()
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "estoque insuficiente", err.Error()))
		case errors.Is(err, repository.ErrCustomerNotFound):
			metrics.SalesFailedTotal.WithLabelValues("customer_not_found").Inc()
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
		default:
			metrics.SalesFailedTotal.WithLabelValues("internal").Inc()
			c.logger.Error("erro ao registrar venda", "error", err, "user_id", userID)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		}
		return
	}

	metrics.SalesCreatedTotal.Inc()
	metrics.SalesRevenueTotal.Add(created.Total)

	// O carrinho já virou venda; falha na limpeza não desfaz nada
	if err := c.cartStore.Clear(ctx, userID); err != nil {
		c.logger.Warn("erro ao limpar carrinho após a venda", "error", err, "user_id", userID)
	}
	c.invalidateReports(ctx)

	c.logger.Info("venda registrada", "sale_id", created.ID, "total", created.Total, "user_id", userID)
	ctx.JSON(http.StatusCreated, dto.CheckoutResponse{
		Sale:   dto.ToSaleResponse(created),
		Change: result.Change,
	})
}

// List lista as vendas
// @Summary Listar vendas
// @Description Lista as vendas com paginação, da mais recente para a mais antiga. Aceita filtro por cliente ou por período
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param customer_id query string false "Filtro por cliente"
// @Param from query string false "Início do período (YYYY-MM-DD)"
// @Param to query string false "Fim do período (YYYY-MM-DD)"
// @Success 200 {object} dto.SaleListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	// O total informado na meta acompanha o mesmo filtro da listagem
	var (
		sales []*saledomain.Sale
		total int
		err   error
	)
	switch {
	case ctx.Query("customer_id") != "":
		customerID := ctx.Query("customer_id")
		sales, err = c.saleRepo.ListByCustomer(ctx, customerID, pagination.PageSize, pagination.Offset())
		if err == nil {
			total, err = c.saleRepo.CountByCustomer(ctx, customerID)
		}
	case ctx.Query("from") != "" || ctx.Query("to") != "":
		var from, to time.Time
		from, to, err = dto.ParseReportPeriod(ctx.Query("from"), ctx.Query("to"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
			return
		}
		sales, err = c.saleRepo.ListByPeriod(ctx, from, to, pagination.PageSize, pagination.Offset())
		if err == nil {
			total, err = c.saleRepo.CountByPeriod(ctx, from, to)
		}
	default:
		sales, err = c.saleRepo.List(ctx, pagination.PageSize, pagination.Offset())
		if err == nil {
			total, err = c.saleRepo.Count(ctx)
		}
	}
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, dto.NewListMeta(total, pagination)))
}

// Get busca uma venda pelo ID
// @Summary Buscar venda
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Update corrige data e/ou cliente de uma venda
// @Summary Corrigir venda
// @Description Corrige a data e/ou o cliente da venda. Itens e pagamentos são imutáveis. Campos omitidos são mantidos; customer_id vazio desvincula o cliente. A troca de cliente transfere a contribuição da venda entre os acumulados
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param sale body dto.SaleUpdateRequest true "Correções"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	var req dto.SaleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	var saleDate time.Time
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	s, err := c.saleRepo.Update(ctx, ctx.Param("id"), saleDate, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		case errors.Is(err, repository.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
		default:
			c.logger.Error("erro ao corrigir venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao corrigir venda", err.Error()))
		}
		return
	}

	c.invalidateReports(ctx)
	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Delete remove uma venda devolvendo o estoque e revertendo os acumulados
// @Summary Remover venda
// @Description Remove a venda devolvendo o estoque dos itens e revertendo a contribuição nos acumulados do cliente, em uma única transação
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	if err := c.saleRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover venda", err.Error()))
		return
	}

	metrics.SalesDeletedTotal.Inc()
	c.invalidateReports(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda removida com sucesso", nil))
}

func (c *SaleController) invalidateReports(ctx *gin.Context) {
	if c.reportCache != nil {
		c.reportCache.Invalidate(ctx)
	}
}
