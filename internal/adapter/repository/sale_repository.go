package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apenask/csnutri-server/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrInsufficientStock = errors.New("estoque insuficiente para concluir a venda")
)

// SaleRepository implementa a interface sale.Repository. Toda venda é
// gravada em uma única transação junto com a baixa de estoque e o
// acúmulo de fidelidade: ou tudo é aplicado, ou nada é
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) (*sale.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// Cabeçalho da venda
	_, err = tx.Exec(ctx,
		`INSERT INTO sales (
			id, sale_date, total, customer_id, user_id, points_earned, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.SaleDate, s.Total, s.CustomerID, s.UserID, s.PointsEarned, s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar venda: %w", err)
	}

	// Itens, com baixa condicional de estoque: a venda inteira é
	// recusada se qualquer produto não tiver saldo suficiente
	for i, it := range s.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO sale_items (
				sale_id, position, product_id, product_name, quantity, unit_price, subtotal
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, i, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("erro ao gravar item da venda: %w", err)
		}

		tag, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $2, updated_at = now()
			WHERE id = $1 AND stock >= $2`,
			it.ProductID, it.Quantity)
		if err != nil {
			return nil, fmt.Errorf("erro ao baixar estoque: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w: produto %s", ErrInsufficientStock, it.ProductName)
		}
	}

	// Pagamentos
	for i, p := range s.Payments {
		_, err = tx.Exec(ctx,
			`INSERT INTO sale_payments (
				sale_id, position, method, amount, transaction_id
			) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, i, p.Method, p.Amount, p.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("erro ao gravar pagamento da venda: %w", err)
		}
	}

	// Acúmulo de fidelidade do cliente vinculado, na mesma transação
	if s.CustomerID != "" {
		tag, err := tx.Exec(ctx,
			`UPDATE customers SET
				points = points + $2,
				total_spent = total_spent + $3,
				total_purchases = total_purchases + 1,
				updated_at = now()
			WHERE id = $1`,
			s.CustomerID, s.PointsEarned, s.Total)
		if err != nil {
			return nil, fmt.Errorf("erro ao acumular totais do cliente: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, ErrCustomerNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao confirmar venda: %w", err)
	}

	// Reler a venda gravada para devolver a forma canônica
	return r.FindByID(ctx, s.ID)
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale
	err := r.db.QueryRow(ctx,
		`SELECT id, sale_date, total, customer_id, user_id, points_earned, created_at
		FROM sales WHERE id = $1`,
		id).Scan(&s.ID, &s.SaleDate, &s.Total, &s.CustomerID, &s.UserID, &s.PointsEarned, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if err := r.loadItems(ctx, &s); err != nil {
		return nil, err
	}
	if err := r.loadPayments(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	return r.listSales(ctx,
		`SELECT id, sale_date, total, customer_id, user_id, points_earned, created_at
		FROM sales
		ORDER BY sale_date DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
}

// ListByCustomer implementa sale.Repository.ListByCustomer
func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*sale.Sale, error) {
	return r.listSales(ctx,
		`SELECT id, sale_date, total, customer_id, user_id, points_earned, created_at
		FROM sales
		WHERE customer_id = $1
		ORDER BY sale_date DESC
		LIMIT $2 OFFSET $3`,
		customerID, limit, offset)
}

// ListByPeriod implementa sale.Repository.ListByPeriod
func (r *SaleRepository) ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*sale.Sale, error) {
	return r.listSales(ctx,
		`SELECT id, sale_date, total, customer_id, user_id, points_earned, created_at
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2
		ORDER BY sale_date DESC
		LIMIT $3 OFFSET $4`,
		from, to, limit, offset)
}

// Update implementa sale.Repository.Update. Apenas data e cliente podem
// mudar; ao trocar o cliente, a contribuição da venda é transferida
// entre os acumulados na mesma transação
func (r *SaleRepository) Update(ctx context.Context, id string, saleDate time.Time, customerID *string) (*sale.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var current sale.Sale
	err = tx.QueryRow(ctx,
		`SELECT id, sale_date, total, customer_id, points_earned
		FROM sales WHERE id = $1 FOR UPDATE`,
		id).Scan(&current.ID, &current.SaleDate, &current.Total, &current.CustomerID, &current.PointsEarned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if saleDate.IsZero() {
		saleDate = current.SaleDate
	}

	// customerID nil significa "não mexer no cliente"
	newCustomerID := current.CustomerID
	if customerID != nil {
		newCustomerID = *customerID
	}

	if newCustomerID != current.CustomerID {
		// Reverter a contribuição no cliente anterior, com piso em zero
		if current.CustomerID != "" {
			if err := reverseCustomerTotals(ctx, tx, current.CustomerID, current.Total, current.PointsEarned); err != nil {
				return nil, err
			}
		}

		// Acumular no novo cliente
		if newCustomerID != "" {
			tag, err := tx.Exec(ctx,
				`UPDATE customers SET
					points = points + $2,
					total_spent = total_spent + $3,
					total_purchases = total_purchases + 1,
					updated_at = now()
				WHERE id = $1`,
				newCustomerID, current.PointsEarned, current.Total)
			if err != nil {
				return nil, fmt.Errorf("erro ao acumular totais do cliente: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return nil, ErrCustomerNotFound
			}
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE sales SET sale_date = $2, customer_id = $3 WHERE id = $1`,
		id, saleDate, newCustomerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao confirmar atualização da venda: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var s sale.Sale
	err = tx.QueryRow(ctx,
		`SELECT id, total, customer_id, points_earned
		FROM sales WHERE id = $1 FOR UPDATE`,
		id).Scan(&s.ID, &s.Total, &s.CustomerID, &s.PointsEarned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSaleNotFound
		}
		return fmt.Errorf("erro ao buscar venda: %w", err)
	}

	// Devolver o estoque dos itens. Produtos já removidos do catálogo
	// são ignorados: a venda histórica guarda apenas a referência fraca
	rows, err := tx.Query(ctx,
		`SELECT product_id, quantity FROM sale_items WHERE sale_id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}

	type itemRef struct {
		productID string
		quantity  int
	}
	items := make([]itemRef, 0)
	for rows.Next() {
		var it itemRef
		if err := rows.Scan(&it.productID, &it.quantity); err != nil {
			rows.Close()
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, it)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer itens da venda: %w", err)
	}

	for _, it := range items {
		_, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
			it.productID, it.quantity)
		if err != nil {
			return fmt.Errorf("erro ao devolver estoque: %w", err)
		}
	}

	// Reverter a contribuição nos acumulados do cliente, com piso em zero
	if s.CustomerID != "" {
		if err := reverseCustomerTotals(ctx, tx, s.CustomerID, s.Total, s.PointsEarned); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_payments WHERE sale_id = $1`, id); err != nil {
		return fmt.Errorf("erro ao remover pagamentos da venda: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return fmt.Errorf("erro ao remover itens da venda: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar exclusão da venda: %w", err)
	}

	return nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

// CountByCustomer implementa sale.Repository.CountByCustomer
func (r *SaleRepository) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas do cliente: %w", err)
	}
	return count, nil
}

// CountByPeriod implementa sale.Repository.CountByPeriod
func (r *SaleRepository) CountByPeriod(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE sale_date >= $1 AND sale_date <= $2`,
		from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas do período: %w", err)
	}
	return count, nil
}

// reverseCustomerTotals desfaz a contribuição de uma venda nos acumulados
// do cliente. GREATEST garante que nenhum acumulado fica negativo
func reverseCustomerTotals(ctx context.Context, tx pgx.Tx, customerID string, total float64, points int) error {
	_, err := tx.Exec(ctx,
		`UPDATE customers SET
			points = GREATEST(points - $2, 0),
			total_spent = GREATEST(total_spent - $3, 0),
			total_purchases = GREATEST(total_purchases - 1, 0),
			updated_at = now()
		WHERE id = $1`,
		customerID, points, total)
	if err != nil {
		return fmt.Errorf("erro ao reverter totais do cliente: %w", err)
	}
	return nil
}

func (r *SaleRepository) listSales(ctx context.Context, query string, args ...interface{}) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(&s.ID, &s.SaleDate, &s.Total, &s.CustomerID, &s.UserID, &s.PointsEarned, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}

	for _, s := range sales {
		if err := r.loadItems(ctx, s); err != nil {
			return nil, err
		}
		if err := r.loadPayments(ctx, s); err != nil {
			return nil, err
		}
	}

	return sales, nil
}

func (r *SaleRepository) loadItems(ctx context.Context, s *sale.Sale) error {
	rows, err := r.db.Query(ctx,
		`SELECT product_id, product_name, quantity, unit_price, subtotal
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position ASC`,
		s.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	s.Items = make([]sale.Item, 0)
	for rows.Next() {
		var it sale.Item
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	return rows.Err()
}

func (r *SaleRepository) loadPayments(ctx context.Context, s *sale.Sale) error {
	rows, err := r.db.Query(ctx,
		`SELECT method, amount, transaction_id
		FROM sale_payments
		WHERE sale_id = $1
		ORDER BY position ASC`,
		s.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar pagamentos da venda: %w", err)
	}
	defer rows.Close()

	s.Payments = make([]sale.Payment, 0)
	for rows.Next() {
		var p sale.Payment
		if err := rows.Scan(&p.Method, &p.Amount, &p.TransactionID); err != nil {
			return fmt.Errorf("erro ao ler pagamento da venda: %w", err)
		}
		s.Payments = append(s.Payments, p)
	}
	return rows.Err()
}
