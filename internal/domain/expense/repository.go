package expense

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	// Create cria uma nova despesa
	Create(ctx context.Context, e *Expense) error

	// FindByID busca uma despesa pelo ID
	FindByID(ctx context.Context, id string) (*Expense, error)

	// List lista as despesas com paginação, da mais recente para a mais antiga
	List(ctx context.Context, limit, offset int) ([]*Expense, error)

	// ListByPeriod lista as despesas de um intervalo de datas
	ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*Expense, error)

	// ListByCategory lista as despesas de uma categoria
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*Expense, error)

	// Update atualiza os dados de uma despesa existente
	Update(ctx context.Context, e *Expense) error

	// Delete remove uma despesa
	Delete(ctx context.Context, id string) error

	// Count conta quantas despesas existem
	Count(ctx context.Context) (int, error)
}
