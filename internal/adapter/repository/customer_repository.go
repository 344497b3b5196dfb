package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/apenask/csnutri-server/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = `id, name, phone, email, address, points, total_spent,
		total_purchases, custom_category, created_at, updated_at`

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, name, phone, email, address, points, total_spent,
			total_purchases, custom_category, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Points, c.TotalSpent,
		c.TotalPurchases, c.CustomCategory, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return c, nil
}

// FindByName implementa customer.Repository.FindByName
func (r *CustomerRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		WHERE name ILIKE $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		"%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes por nome: %w", err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

// FindByPhone implementa customer.Repository.FindByPhone
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE phone = $1`, phone)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente por telefone: %w", err)
	}

	return c, nil
}

// Search implementa customer.Repository.Search. O termo é comparado de
// forma parcial contra nome, telefone e email
func (r *CustomerRepository) Search(ctx context.Context, query string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		"%"+query+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao pesquisar clientes: %w", err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

// CountBySearch implementa customer.Repository.CountBySearch
func (r *CustomerRepository) CountBySearch(ctx context.Context, query string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers
		WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`,
		"%"+query+"%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes da pesquisa: %w", err)
	}
	return count, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $2, phone = $3, email = $4, address = $5, points = $6,
			total_spent = $7, total_purchases = $8, custom_category = $9,
			updated_at = $10
		WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Points,
		c.TotalSpent, c.TotalPurchases, c.CustomCategory, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// RecalculateTotals implementa customer.Repository.RecalculateTotals.
// Rederiva os acumulados do cliente a partir das vendas que o referenciam,
// em um único UPDATE. A operação é idempotente
func (r *CustomerRepository) RecalculateTotals(ctx context.Context, id string) (*customer.Customer, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers c SET
			points = agg.points,
			total_spent = agg.total_spent,
			total_purchases = agg.total_purchases,
			updated_at = now()
		FROM (
			SELECT
				COALESCE(SUM(s.points_earned), 0) AS points,
				COALESCE(SUM(s.total), 0) AS total_spent,
				COUNT(s.id) AS total_purchases
			FROM sales s
			WHERE s.customer_id = $1
		) agg
		WHERE c.id = $1`,
		id)
	if err != nil {
		return nil, fmt.Errorf("erro ao recalcular totais do cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrCustomerNotFound
	}

	return r.FindByID(ctx, id)
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}

// CountByName implementa customer.Repository.CountByName
func (r *CustomerRepository) CountByName(ctx context.Context, name string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE name ILIKE $1`,
		"%"+name+"%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes por nome: %w", err)
	}
	return count, nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Points,
		&c.TotalSpent, &c.TotalPurchases, &c.CustomCategory,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}

	return customers, nil
}
