package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apenask/csnutri-server/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrProductNotFound         = errors.New("produto não encontrado")
	ErrProductDuplicateBarcode = errors.New("produto com mesmo código de barras já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, name, price, cost, stock, min_stock, category,
		custom_category, image_url, supplier_id, barcode, created_at, updated_at`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, price, cost, stock, min_stock, category,
			custom_category, image_url, supplier_id, barcode, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`,
		p.ID, p.Name, p.Price, p.Cost, p.Stock, p.MinStock, p.Category,
		p.CustomCategory, p.ImageURL, p.SupplierID, p.Barcode, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE barcode = $1 AND barcode <> ''`, barcode)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto por código de barras: %w", err)
	}

	return p, nil
}

// FindByName implementa product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE name ILIKE $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		"%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos por nome: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// ListByCategory implementa product.Repository.ListByCategory
func (r *ProductRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE category = $1 OR custom_category = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos por categoria: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// ListLowStock implementa product.Repository.ListLowStock
func (r *ProductRepository) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE stock <= min_stock
		ORDER BY stock ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// ListBySupplier implementa product.Repository.ListBySupplier
func (r *ProductRepository) ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE supplier_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos por fornecedor: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $2, price = $3, cost = $4, stock = $5, min_stock = $6,
			category = $7, custom_category = $8, image_url = $9,
			supplier_id = $10, barcode = $11, updated_at = $12
		WHERE id = $1`,
		p.ID, p.Name, p.Price, p.Cost, p.Stock, p.MinStock,
		p.Category, p.CustomCategory, p.ImageURL,
		p.SupplierID, p.Barcode, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UpdateImage implementa product.Repository.UpdateImage
func (r *ProductRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET image_url = $2, updated_at = now() WHERE id = $1`,
		id, imageURL)
	if err != nil {
		return fmt.Errorf("erro ao atualizar imagem do produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Cost, &p.Stock, &p.MinStock, &p.Category,
		&p.CustomCategory, &p.ImageURL, &p.SupplierID, &p.Barcode,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return products, nil
}
