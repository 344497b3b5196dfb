package dto

import (
	"time"

	"github.com/apenask/csnutri-server/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	Cost           float64 `json:"cost" binding:"gte=0"`
	Stock          int     `json:"stock" binding:"gte=0"`
	MinStock       int     `json:"min_stock" binding:"gte=0"`
	Category       string  `json:"category" binding:"required"`
	CustomCategory string  `json:"custom_category"`
	SupplierID     string  `json:"supplier_id"`
	Barcode        string  `json:"barcode"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Cost           float64   `json:"cost"`
	Stock          int       `json:"stock"`
	MinStock       int       `json:"min_stock"`
	Category       string    `json:"category"`
	CustomCategory string    `json:"custom_category,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	SupplierID     string    `json:"supplier_id,omitempty"`
	Barcode        string    `json:"barcode,omitempty"`
	LowStock       bool      `json:"low_stock"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// ToProductResponse converte a entidade para a forma de transporte
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Cost:           p.Cost,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		Category:       string(p.Category),
		CustomCategory: p.CustomCategory,
		ImageURL:       p.ImageURL,
		SupplierID:     p.SupplierID,
		Barcode:        p.Barcode,
		LowStock:       p.IsLowStock(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos
func ToProductListResponse(products []*product.Product, meta ListMeta) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{Items: items, Meta: meta}
}
