package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/apenask/csnutri-server/internal/domain/report"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository implementa a interface report.Repository com
// consultas agregadas direto no banco
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *pgxpool.Pool) report.Repository {
	return &ReportRepository{
		db: db,
	}
}

// SalesByPeriod implementa report.Repository.SalesByPeriod
func (r *ReportRepository) SalesByPeriod(ctx context.Context, from, to time.Time) (*report.SalesReport, error) {
	rep := &report.SalesReport{
		From:  from,
		To:    to,
		ByDay: make([]report.SalesByDay, 0),
	}

	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', sale_date) AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2
		GROUP BY day
		ORDER BY day ASC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas do período: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day report.SalesByDay
		if err := rows.Scan(&day.Day, &day.Count, &day.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler agregado diário: %w", err)
		}
		rep.ByDay = append(rep.ByDay, day)
		rep.SalesCount += day.Count
		rep.Total += day.Total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer agregados: %w", err)
	}

	return rep, nil
}

// TopProducts implementa report.Repository.TopProducts
func (r *ReportRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]report.TopProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.product_id, i.product_name, SUM(i.quantity), SUM(i.subtotal)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.sale_date >= $1 AND s.sale_date <= $2
		GROUP BY i.product_id, i.product_name
		ORDER BY SUM(i.quantity) DESC
		LIMIT $3`,
		from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos mais vendidos: %w", err)
	}
	defer rows.Close()

	products := make([]report.TopProduct, 0)
	for rows.Next() {
		var p report.TopProduct
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Quantity, &p.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler produto ranqueado: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos ranqueados: %w", err)
	}

	return products, nil
}

// Summary implementa report.Repository.Summary
func (r *ReportRepository) Summary(ctx context.Context, from, to time.Time) (*report.Summary, error) {
	s := &report.Summary{From: from, To: to}

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2`,
		from, to).Scan(&s.Revenue)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar receita: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2`,
		from, to).Scan(&s.Expenses)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar despesas: %w", err)
	}

	s.Profit = s.Revenue - s.Expenses
	return s, nil
}
