package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/apenask/csnutri-server/internal/adapter/api/dto"
	"github.com/apenask/csnutri-server/internal/adapter/repository"
	productdomain "github.com/apenask/csnutri-server/internal/domain/product"
	"github.com/apenask/csnutri-server/internal/infrastructure/storage"
	"github.com/apenask/csnutri-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// maxImageSize limita o tamanho aceito para upload de imagem (5 MB)
const maxImageSize = 5 << 20

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo  productdomain.Repository
	imageStorage *storage.ImageStorage
	logger       logger.Logger
}

// NewProductController cria uma nova instância de ProductController.
// imageStorage pode ser nil quando o armazenamento de imagens não está
// configurado; nesse caso o upload responde 503
func NewProductController(productRepo productdomain.Repository, imageStorage *storage.ImageStorage, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:  productRepo,
		imageStorage: imageStorage,
		logger:       logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := productdomain.NewProduct(req.Name, req.Price, req.Cost, req.Stock, req.MinStock, productdomain.Category(req.Category))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	product.CustomCategory = req.CustomCategory
	product.SupplierID = req.SupplierID
	product.Barcode = req.Barcode

	if err := c.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateBarcode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código de barras já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// List lista os produtos
// @Summary Listar produtos
// @Description Lista os produtos com paginação, opcionalmente filtrados por categoria ou nome
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param category query string false "Categoria"
// @Param name query string false "Filtro por nome"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	var (
		products []*productdomain.Product
		err      error
	)

	switch {
	case ctx.Query("name") != "":
		products, err = c.productRepo.FindByName(ctx, ctx.Query("name"), pagination.PageSize, pagination.Offset())
	case ctx.Query("category") != "":
		products, err = c.productRepo.ListByCategory(ctx, ctx.Query("category"), pagination.PageSize, pagination.Offset())
	default:
		products, err = c.productRepo.List(ctx, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, dto.NewListMeta(total, pagination)))
}

// Get busca um produto pelo ID
// @Summary Buscar produto
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// GetByBarcode busca um produto pelo código de barras
// @Summary Buscar produto por código de barras
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param code path string true "Código de barras"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/barcode/{code} [get]
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	product, err := c.productRepo.FindByBarcode(ctx, ctx.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// ListLowStock lista os produtos abaixo do estoque mínimo
// @Summary Listar produtos com estoque baixo
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) ListLowStock(ctx *gin.Context) {
	products, err := c.productRepo.ListLowStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ToProductResponse(p))
	}
	ctx.JSON(http.StatusOK, items)
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	err = product.Update(req.Name, req.Price, req.Cost, req.MinStock, productdomain.Category(req.Category), req.CustomCategory, req.SupplierID, req.Barcode)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar dados do produto", err.Error()))
		return
	}

	// O estoque é atualizado pelo mesmo formulário de edição do catálogo
	if err := product.SetStock(req.Stock); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque inválido", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, product); err != nil {
		c.logger.Error("erro ao atualizar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// UploadImage recebe a imagem de um produto e grava no armazenamento de objetos
// @Summary Enviar imagem do produto
// @Tags products
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param image formData file true "Arquivo de imagem"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /products/{id}/image [post]
func (c *ProductController) UploadImage(ctx *gin.Context) {
	if c.imageStorage == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "armazenamento de imagens não configurado", ""))
		return
	}

	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo de imagem não informado", err.Error()))
		return
	}
	if fileHeader.Size > maxImageSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "imagem excede o tamanho máximo de 5MB", ""))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler arquivo de imagem", err.Error()))
		return
	}
	defer file.Close()

	imageURL, err := c.imageStorage.UploadProductImage(ctx, product.ID, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.logger.Error("erro ao enviar imagem do produto", "error", err, "product_id", product.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao enviar imagem", err.Error()))
		return
	}

	if err := c.productRepo.UpdateImage(ctx, product.ID, imageURL); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar imagem", err.Error()))
		return
	}

	product.SetImage(imageURL)
	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Delete remove um produto
// @Summary Remover produto
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		return
	}

	// A imagem é melhor-esforço: a venda histórica não depende dela
	if c.imageStorage != nil {
		if err := c.imageStorage.RemoveProductImages(ctx, id); err != nil {
			c.logger.Warn("erro ao remover imagens do produto", "error", err, "product_id", id)
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido com sucesso", nil))
}
