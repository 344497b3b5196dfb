package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apenask/csnutri-server/internal/domain/customer"
	"github.com/apenask/csnutri-server/internal/domain/product"
	"github.com/apenask/csnutri-server/internal/domain/sale"
)

// testPool abre a conexão de teste. Os testes deste arquivo só rodam
// com um banco migrado apontado por TEST_DATABASE_URL
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL não definido, pulando teste de integração")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func createTestProduct(t *testing.T, pool *pgxpool.Pool, name string, price float64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, price, 0, stock, 0, product.CategorySupplement)
	require.NoError(t, err)
	require.NoError(t, NewProductRepository(pool).Create(context.Background(), p))
	return p
}

func buildSale(t *testing.T, p *product.Product, quantity int, customerID string) *sale.Sale {
	t.Helper()
	subtotal := float64(quantity) * p.Price
	s, err := sale.NewSale(time.Now(),
		[]sale.Item{{ProductID: p.ID, ProductName: p.Name, Quantity: quantity, UnitPrice: p.Price, Subtotal: subtotal}},
		[]sale.Payment{{Method: sale.PaymentCash, Amount: subtotal}},
		customerID, "user-teste")
	require.NoError(t, err)
	return s
}

func TestSaleCreateDecrementsStockAndAccumulates(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	p := createTestProduct(t, pool, "Whey Integração", 50.0, 10)

	c, err := customer.NewCustomer("Cliente Integração", "83999990000", "")
	require.NoError(t, err)
	customerRepo := NewCustomerRepository(pool)
	require.NoError(t, customerRepo.Create(ctx, c))

	saleRepo := NewSaleRepository(pool)
	created, err := saleRepo.Create(ctx, buildSale(t, p, 2, c.ID))
	require.NoError(t, err)

	assert.Equal(t, 100.0, created.Total)
	assert.Equal(t, 10, created.PointsEarned)
	require.Len(t, created.Items, 1)
	require.Len(t, created.Payments, 1)

	stored, err := NewProductRepository(pool).FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Stock)

	updatedCustomer, err := customerRepo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updatedCustomer.Points)
	assert.Equal(t, 100.0, updatedCustomer.TotalSpent)
	assert.Equal(t, 1, updatedCustomer.TotalPurchases)
}

func TestSaleCreateAbortsOnInsufficientStock(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	p := createTestProduct(t, pool, "Creatina Integração", 30.0, 1)

	saleRepo := NewSaleRepository(pool)
	_, err := saleRepo.Create(ctx, buildSale(t, p, 3, ""))
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Nada da venda pode ter sido aplicado
	stored, err := NewProductRepository(pool).FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Stock)
}

func TestSaleUpdateDateOnlyKeepsCustomer(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	p := createTestProduct(t, pool, "Shake Integração", 20.0, 5)

	c, err := customer.NewCustomer("Cliente Correção", "83977770000", "")
	require.NoError(t, err)
	customerRepo := NewCustomerRepository(pool)
	require.NoError(t, customerRepo.Create(ctx, c))

	saleRepo := NewSaleRepository(pool)
	created, err := saleRepo.Create(ctx, buildSale(t, p, 1, c.ID))
	require.NoError(t, err)

	// Corrigir apenas a data mantém o vínculo e os acumulados intactos
	newDate := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	updated, err := saleRepo.Update(ctx, created.ID, newDate, nil)
	require.NoError(t, err)
	assert.True(t, updated.SaleDate.Equal(newDate))
	assert.Equal(t, c.ID, updated.CustomerID)

	kept, err := customerRepo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, created.PointsEarned, kept.Points)
	assert.Equal(t, created.Total, kept.TotalSpent)
	assert.Equal(t, 1, kept.TotalPurchases)

	// O desvínculo precisa ser pedido com o valor vazio explícito
	detached := ""
	updated, err = saleRepo.Update(ctx, created.ID, time.Time{}, &detached)
	require.NoError(t, err)
	assert.Equal(t, "", updated.CustomerID)

	reversed, err := customerRepo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reversed.Points)
	assert.Equal(t, 0.0, reversed.TotalSpent)
	assert.Equal(t, 0, reversed.TotalPurchases)
}

func TestSaleCountByCustomer(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	p := createTestProduct(t, pool, "Cookie Integração", 8.0, 20)

	c, err := customer.NewCustomer("Cliente Contagem", "83966660000", "")
	require.NoError(t, err)
	require.NoError(t, NewCustomerRepository(pool).Create(ctx, c))

	saleRepo := NewSaleRepository(pool)
	_, err = saleRepo.Create(ctx, buildSale(t, p, 1, c.ID))
	require.NoError(t, err)
	_, err = saleRepo.Create(ctx, buildSale(t, p, 2, c.ID))
	require.NoError(t, err)
	_, err = saleRepo.Create(ctx, buildSale(t, p, 1, ""))
	require.NoError(t, err)

	count, err := saleRepo.CountByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaleDeleteRestoresStockAndReverses(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	p := createTestProduct(t, pool, "Barra Integração", 10.0, 5)

	c, err := customer.NewCustomer("Cliente Reversão", "83988880000", "")
	require.NoError(t, err)
	customerRepo := NewCustomerRepository(pool)
	require.NoError(t, customerRepo.Create(ctx, c))

	saleRepo := NewSaleRepository(pool)
	created, err := saleRepo.Create(ctx, buildSale(t, p, 2, c.ID))
	require.NoError(t, err)

	require.NoError(t, saleRepo.Delete(ctx, created.ID))

	stored, err := NewProductRepository(pool).FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)

	reversed, err := customerRepo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reversed.Points)
	assert.Equal(t, 0.0, reversed.TotalSpent)
	assert.Equal(t, 0, reversed.TotalPurchases)

	_, err = saleRepo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
