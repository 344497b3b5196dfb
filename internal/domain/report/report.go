package report

import (
	"context"
	"time"
)

// SalesByDay agrega as vendas de um dia
type SalesByDay struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
	Total float64   `json:"total"`
}

// SalesReport resume as vendas de um período
type SalesReport struct {
	From       time.Time    `json:"from"`
	To         time.Time    `json:"to"`
	SalesCount int          `json:"sales_count"`
	Total      float64      `json:"total"`
	ByDay      []SalesByDay `json:"by_day"`
}

// TopProduct é um produto ranqueado por quantidade vendida no período
type TopProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// Summary resume o resultado financeiro de um período
type Summary struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Revenue  float64   `json:"revenue"`  // Receita (vendas)
	Expenses float64   `json:"expenses"` // Despesas
	Profit   float64   `json:"profit"`   // Resultado (receita - despesas)
}

// Repository define as consultas agregadas usadas pelos relatórios
type Repository interface {
	// SalesByPeriod resume as vendas do intervalo, dia a dia
	SalesByPeriod(ctx context.Context, from, to time.Time) (*SalesReport, error)

	// TopProducts ranqueia os produtos mais vendidos do intervalo
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)

	// Summary calcula receita, despesas e resultado do intervalo
	Summary(ctx context.Context, from, to time.Time) (*Summary, error)
}
