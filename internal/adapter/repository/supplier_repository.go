package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/apenask/csnutri-server/internal/domain/supplier"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSupplierNotFound = errors.New("fornecedor não encontrado")
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

const supplierColumns = `id, name, phone, email, address, cnpj, category, created_at, updated_at`

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (
			id, name, phone, email, address, cnpj, category, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.Phone, s.Email, s.Address, s.CNPJ, s.Category, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}

	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)

	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return s, nil
}

// FindByName implementa supplier.Repository.FindByName
func (r *SupplierRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers
		WHERE name ILIKE $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		"%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fornecedores por nome: %w", err)
	}
	defer rows.Close()

	return scanSupplierRows(rows)
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	return scanSupplierRows(rows)
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE suppliers SET
			name = $2, phone = $3, email = $4, address = $5,
			cnpj = $6, category = $7, updated_at = $8
		WHERE id = $1`,
		s.ID, s.Name, s.Phone, s.Email, s.Address, s.CNPJ, s.Category, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover fornecedor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}
	return count, nil
}

func scanSupplier(row pgx.Row) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CNPJ,
		&s.Category, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSupplierRows(rows pgx.Rows) ([]*supplier.Supplier, error) {
	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer fornecedores: %w", err)
	}

	return suppliers, nil
}
