package sale

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de vendas.
// Create e Delete aplicam também os efeitos da venda sobre estoque e
// acumulados do cliente, em uma única transação: o chamador nunca
// observa aplicação parcial
type Repository interface {
	// Create persiste a venda completa (cabeçalho + itens + pagamentos),
	// baixa o estoque de cada produto de forma condicional e acumula os
	// totais do cliente vinculado, tudo na mesma transação. Retorna a
	// venda canônica relida do banco
	Create(ctx context.Context, s *Sale) (*Sale, error)

	// FindByID busca uma venda completa pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas com paginação, da mais recente para a mais antiga
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// ListByCustomer lista as vendas de um cliente
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*Sale, error)

	// ListByPeriod lista as vendas de um intervalo de datas
	ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*Sale, error)

	// Update corrige data e/ou cliente da venda. Itens e pagamentos são
	// imutáveis após a criação. Data zero mantém a data atual; customerID
	// nil mantém o cliente atual, vazio desvincula. A troca de cliente
	// transfere a contribuição da venda entre os acumulados na mesma
	// transação
	Update(ctx context.Context, id string, saleDate time.Time, customerID *string) (*Sale, error)

	// Delete remove a venda devolvendo o estoque dos itens e revertendo
	// os acumulados do cliente (com piso em zero), na mesma transação
	Delete(ctx context.Context, id string) error

	// Count conta quantas vendas existem
	Count(ctx context.Context) (int, error)

	// CountByCustomer conta as vendas de um cliente
	CountByCustomer(ctx context.Context, customerID string) (int, error)

	// CountByPeriod conta as vendas de um intervalo de datas
	CountByPeriod(ctx context.Context, from, to time.Time) (int, error)
}

// CartStore guarda o carrinho em aberto de cada operador entre
// requisições. A implementação padrão usa Redis com expiração
type CartStore interface {
	// Get retorna o carrinho do operador, ou um carrinho vazio
	Get(ctx context.Context, userID string) (*Cart, error)

	// Save grava o carrinho do operador
	Save(ctx context.Context, userID string, cart *Cart) error

	// Clear descarta o carrinho do operador
	Clear(ctx context.Context, userID string) error
}
