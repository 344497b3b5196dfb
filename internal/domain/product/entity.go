package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidPrice  = errors.New("preço deve ser maior que zero")
	ErrInvalidCost   = errors.New("custo não pode ser negativo")
	ErrInvalidStock  = errors.New("estoque não pode ser negativo")
	ErrEmptyCategory = errors.New("categoria não pode ser vazia")
)

// Category define as categorias padrão de produto
type Category string

const (
	CategorySupplement Category = "suplementos" // Suplementos
	CategoryFood       Category = "alimentos"   // Alimentos Naturais
	CategoryDrink      Category = "bebidas"     // Bebidas
	CategoryAccessory  Category = "acessorios"  // Acessórios
	CategoryOther      Category = "outros"      // Outros
)

// Product representa um produto do catálogo
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`            // Nome do Produto
	Price          float64   `json:"price"`           // Preço de Venda
	Cost           float64   `json:"cost"`            // Preço de Custo
	Stock          int       `json:"stock"`           // Estoque Atual
	MinStock       int       `json:"min_stock"`       // Estoque Mínimo
	Category       Category  `json:"category"`        // Categoria
	CustomCategory string    `json:"custom_category"` // Categoria Personalizada (opcional)
	ImageURL       string    `json:"image_url"`       // URL da Imagem (opcional)
	SupplierID     string    `json:"supplier_id"`     // ID do Fornecedor (opcional)
	Barcode        string    `json:"barcode"`         // Código de Barras (opcional)
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name string, price, cost float64, stock, minStock int, category Category) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if cost < 0 {
		return nil, ErrInvalidCost
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Cost:      cost,
		Stock:     stock,
		MinStock:  minStock,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name string, price, cost float64, minStock int, category Category, customCategory, supplierID, barcode string) error {
	if name == "" {
		return ErrEmptyName
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if cost < 0 {
		return ErrInvalidCost
	}

	p.Name = name
	p.Price = price
	p.Cost = cost
	p.MinStock = minStock
	p.Category = category
	p.CustomCategory = customCategory
	p.SupplierID = supplierID
	p.Barcode = barcode
	p.UpdatedAt = time.Now()

	return nil
}

// SetStock define o estoque atual do produto
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// SetImage define a URL da imagem do produto
func (p *Product) SetImage(url string) {
	p.ImageURL = url
	p.UpdatedAt = time.Now()
}

// IsLowStock verifica se o produto está abaixo do estoque mínimo
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// EffectiveCategory retorna a categoria personalizada quando definida
func (p *Product) EffectiveCategory() string {
	if p.CustomCategory != "" {
		return p.CustomCategory
	}
	return string(p.Category)
}
