package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apenask/csnutri-server/internal/domain/expense"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrExpenseNotFound = errors.New("despesa não encontrada")
)

// ExpenseRepository implementa a interface expense.Repository
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) expense.Repository {
	return &ExpenseRepository{
		db: db,
	}
}

const expenseColumns = `id, expense_date, description, amount, category, supplier_id, created_at, updated_at`

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO expenses (
			id, expense_date, description, amount, category, supplier_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.ExpenseDate, e.Description, e.Amount, e.Category, e.SupplierID, e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar despesa: %w", err)
	}

	return nil
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)

	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar despesa: %w", err)
	}

	return e, nil
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context, limit, offset int) ([]*expense.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		ORDER BY expense_date DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer rows.Close()

	return scanExpenseRows(rows)
}

// ListByPeriod implementa expense.Repository.ListByPeriod
func (r *ExpenseRepository) ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*expense.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		ORDER BY expense_date DESC
		LIMIT $3 OFFSET $4`,
		from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas por período: %w", err)
	}
	defer rows.Close()

	return scanExpenseRows(rows)
}

// ListByCategory implementa expense.Repository.ListByCategory
func (r *ExpenseRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*expense.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		WHERE category = $1
		ORDER BY expense_date DESC
		LIMIT $2 OFFSET $3`,
		category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas por categoria: %w", err)
	}
	defer rows.Close()

	return scanExpenseRows(rows)
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE expenses SET
			expense_date = $2, description = $3, amount = $4,
			category = $5, supplier_id = $6, updated_at = $7
		WHERE id = $1`,
		e.ID, e.ExpenseDate, e.Description, e.Amount, e.Category, e.SupplierID, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar despesa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover despesa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Count implementa expense.Repository.Count
func (r *ExpenseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar despesas: %w", err)
	}
	return count, nil
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID, &e.ExpenseDate, &e.Description, &e.Amount, &e.Category,
		&e.SupplierID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanExpenseRows(rows pgx.Rows) ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler despesa: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer despesas: %w", err)
	}

	return expenses, nil
}
