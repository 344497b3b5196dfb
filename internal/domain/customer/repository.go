package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByName busca clientes pelo nome (busca parcial)
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Customer, error)

	// FindByPhone busca um cliente pelo telefone
	FindByPhone(ctx context.Context, phone string) (*Customer, error)

	// Search busca clientes por nome, telefone ou email (busca parcial)
	Search(ctx context.Context, query string, limit, offset int) ([]*Customer, error)

	// CountBySearch conta os clientes alcançados por um termo de pesquisa
	CountBySearch(ctx context.Context, query string) (int, error)

	// List lista os clientes com paginação
	List(ctx context.Context, limit, offset int) ([]*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error

	// RecalculateTotals recalcula os acumulados (pontos, total gasto,
	// quantidade de compras) a partir das vendas do cliente
	RecalculateTotals(ctx context.Context, id string) (*Customer, error)

	// Count conta quantos clientes existem
	Count(ctx context.Context) (int, error)

	// CountByName conta os clientes alcançados por um filtro de nome
	CountByName(ctx context.Context, name string) (int, error)
}
