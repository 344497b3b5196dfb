package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto pelo código de barras
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// FindByName busca produtos pelo nome (busca parcial)
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// ListByCategory lista os produtos de uma categoria
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*Product, error)

	// ListLowStock lista os produtos abaixo do estoque mínimo
	ListLowStock(ctx context.Context) ([]*Product, error)

	// ListBySupplier lista os produtos de um fornecedor
	ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// UpdateImage atualiza a URL da imagem de um produto
	UpdateImage(ctx context.Context, id, imageURL string) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// Count conta quantos produtos existem
	Count(ctx context.Context) (int, error)
}
