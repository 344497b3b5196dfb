package controller

import (
	"errors"
	"net/http"

	"github.com/apenask/csnutri-server/internal/adapter/api/dto"
	"github.com/apenask/csnutri-server/internal/adapter/repository"
	productdomain "github.com/apenask/csnutri-server/internal/domain/product"
	saledomain "github.com/apenask/csnutri-server/internal/domain/sale"
	"github.com/apenask/csnutri-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// CartController gerencia o carrinho de caixa do operador autenticado.
// Cada operador tem um único carrinho em aberto, guardado entre requisições
type CartController struct {
	cartStore   saledomain.CartStore
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewCartController cria uma nova instância de CartController
func NewCartController(cartStore saledomain.CartStore, productRepo productdomain.Repository, logger logger.Logger) *CartController {
	return &CartController{
		cartStore:   cartStore,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get retorna o carrinho atual do operador
// @Summary Consultar carrinho
// @Tags cart
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cart [get]
func (c *CartController) Get(ctx *gin.Context) {
	cart, err := c.loadCart(ctx)
	if err != nil {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(cart, ""))
}

// AddItem adiciona uma unidade de um produto ao carrinho
// @Summary Adicionar item ao carrinho
// @Description Adiciona uma unidade do produto. Se o produto já está no carrinho, incrementa a quantidade. Recusa quando o estoque seria ultrapassado
// @Tags cart
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.AddCartItemRequest true "Produto a adicionar"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /cart/items [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	var req dto.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := c.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	cart, err := c.loadCart(ctx)
	if err != nil {
		return
	}

	if err := cart.AddItem(product); err != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "estoque insuficiente", err.Error()))
		return
	}

	if !c.saveCart(ctx, cart) {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(cart, ""))
}

// SetQuantity ajusta a quantidade de um item do carrinho
// @Summary Ajustar quantidade de um item
// @Description Define a quantidade da linha. Quantidade menor que 1 remove a linha. Quantidade acima do estoque é ajustada para o máximo e a resposta traz um aviso
// @Tags cart
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "ID do produto"
// @Param quantity body dto.SetCartQuantityRequest true "Quantidade desejada"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cart/items/{productId} [put]
func (c *CartController) SetQuantity(ctx *gin.Context) {
	var req dto.SetCartQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cart, err := c.loadCart(ctx)
	if err != nil {
		return
	}

	warning := ""
	if err := cart.SetQuantity(ctx.Param("productId"), req.Quantity); err != nil {
		switch {
		case errors.Is(err, saledomain.ErrQuantityClamped):
			warning = "quantidade ajustada ao estoque disponível"
		case errors.Is(err, saledomain.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não está no carrinho", ""))
			return
		default:
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ajustar quantidade", err.Error()))
			return
		}
	}

	if !c.saveCart(ctx, cart) {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(cart, warning))
}

// RemoveItem remove um item do carrinho
// @Summary Remover item do carrinho
// @Tags cart
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "ID do produto"
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cart/items/{productId} [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	cart, err := c.loadCart(ctx)
	if err != nil {
		return
	}

	cart.RemoveItem(ctx.Param("productId"))

	if !c.saveCart(ctx, cart) {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(cart, ""))
}

// Clear esvazia o carrinho do operador
// @Summary Esvaziar carrinho
// @Tags cart
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cart [delete]
func (c *CartController) Clear(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if err := c.cartStore.Clear(ctx, userID); err != nil {
		c.logger.Error("erro ao esvaziar carrinho", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao esvaziar carrinho", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("carrinho esvaziado", nil))
}

// loadCart carrega o carrinho do operador autenticado. Em caso de erro,
// a resposta já foi escrita
func (c *CartController) loadCart(ctx *gin.Context) (*saledomain.Cart, error) {
	userID := ctx.GetString("user_id")
	cart, err := c.cartStore.Get(ctx, userID)
	if err != nil {
		c.logger.Error("erro ao carregar carrinho", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar carrinho", err.Error()))
		return nil, err
	}
	return cart, nil
}

// saveCart grava o carrinho do operador autenticado. Em caso de erro,
// a resposta já foi escrita e o retorno é false
func (c *CartController) saveCart(ctx *gin.Context, cart *saledomain.Cart) bool {
	userID := ctx.GetString("user_id")
	if err := c.cartStore.Save(ctx, userID, cart); err != nil {
		c.logger.Error("erro ao gravar carrinho", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar carrinho", err.Error()))
		return false
	}
	return true
}
