package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/apenask/csnutri-server/internal/adapter/api/dto"
	"github.com/apenask/csnutri-server/internal/adapter/repository"
	expensedomain "github.com/apenask/csnutri-server/internal/domain/expense"
	"github.com/apenask/csnutri-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ExpenseController gerencia as requisições relacionadas a despesas
type ExpenseController struct {
	expenseRepo expensedomain.Repository
	reportCache *repository.CachedReportRepository
	logger      logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseRepo expensedomain.Repository, reportCache *repository.CachedReportRepository, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo: expenseRepo,
		reportCache: reportCache,
		logger:      logger,
	}
}

// Create cria uma nova despesa
// @Summary Criar despesa
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	exp, err := expensedomain.NewExpense(req.ExpenseDate, req.Description, req.Amount, req.Category)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar despesa", err.Error()))
		return
	}
	exp.SupplierID = req.SupplierID

	if err := c.expenseRepo.Create(ctx, exp); err != nil {
		c.logger.Error("erro ao criar despesa no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar despesa", err.Error()))
		return
	}

	c.invalidateReports(ctx)
	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(exp))
}

// List lista as despesas
// @Summary Listar despesas
// @Description Lista as despesas com paginação, da mais recente para a mais antiga. Aceita filtro por categoria ou por período
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param category query string false "Filtro por categoria"
// @Param from query string false "Início do período (YYYY-MM-DD)"
// @Param to query string false "Fim do período (YYYY-MM-DD)"
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	var (
		expenses []*expensedomain.Expense
		err      error
	)
	switch {
	case ctx.Query("category") != "":
		expenses, err = c.expenseRepo.ListByCategory(ctx, ctx.Query("category"), pagination.PageSize, pagination.Offset())
	case ctx.Query("from") != "" || ctx.Query("to") != "":
		from, to, perr := dto.ParseReportPeriod(ctx.Query("from"), ctx.Query("to"))
		if perr != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", perr.Error()))
			return
		}
		expenses, err = c.expenseRepo.ListByPeriod(ctx, from, to, pagination.PageSize, pagination.Offset())
	default:
		expenses, err = c.expenseRepo.List(ctx, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar despesas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	total, err := c.expenseRepo.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar despesas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, dto.NewListMeta(total, pagination)))
}

// Get busca uma despesa pelo ID
// @Summary Buscar despesa
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) Get(ctx *gin.Context) {
	exp, err := c.expenseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(exp))
}

// Update atualiza uma despesa
// @Summary Atualizar despesa
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [put]
func (c *ExpenseController) Update(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	exp, err := c.expenseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar despesa", err.Error()))
		return
	}

	if err := exp.Update(req.ExpenseDate, req.Description, req.Amount, req.Category, req.SupplierID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar dados da despesa", err.Error()))
		return
	}

	if err := c.expenseRepo.Update(ctx, exp); err != nil {
		c.logger.Error("erro ao atualizar despesa no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar despesa", err.Error()))
		return
	}

	c.invalidateReports(ctx)
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(exp))
}

// Delete remove uma despesa
// @Summary Remover despesa
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if err := c.expenseRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover despesa", err.Error()))
		return
	}

	c.invalidateReports(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("despesa removida com sucesso", nil))
}

func (c *ExpenseController) invalidateReports(ctx *gin.Context) {
	if c.reportCache != nil {
		c.reportCache.Invalidate(ctx)
	}
}
