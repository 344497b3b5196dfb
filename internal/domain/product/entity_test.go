package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductValidation(t *testing.T) {
	tests := []struct {
		name     string
		pname    string
		price    float64
		cost     float64
		stock    int
		category Category
		wantErr  error
	}{
		{"nome vazio", "", 10, 5, 1, CategorySupplement, ErrEmptyName},
		{"preço zero", "Produto", 0, 5, 1, CategorySupplement, ErrInvalidPrice},
		{"preço negativo", "Produto", -1, 5, 1, CategorySupplement, ErrInvalidPrice},
		{"custo negativo", "Produto", 10, -1, 1, CategorySupplement, ErrInvalidCost},
		{"estoque negativo", "Produto", 10, 5, -1, CategorySupplement, ErrInvalidStock},
		{"categoria vazia", "Produto", 10, 5, 1, "", ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.pname, tt.price, tt.cost, tt.stock, 0, tt.category)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsLowStock(t *testing.T) {
	p, err := NewProduct("Whey", 120, 80, 10, 5, CategorySupplement)
	require.NoError(t, err)
	assert.False(t, p.IsLowStock())

	require.NoError(t, p.SetStock(5))
	assert.True(t, p.IsLowStock())

	require.NoError(t, p.SetStock(0))
	assert.True(t, p.IsLowStock())
}

func TestSetStockRejectsNegative(t *testing.T) {
	p, err := NewProduct("Whey", 120, 80, 10, 5, CategorySupplement)
	require.NoError(t, err)

	assert.ErrorIs(t, p.SetStock(-1), ErrInvalidStock)
	assert.Equal(t, 10, p.Stock)
}

func TestEffectiveCategory(t *testing.T) {
	p, err := NewProduct("Whey", 120, 80, 10, 5, CategorySupplement)
	require.NoError(t, err)
	assert.Equal(t, "suplementos", p.EffectiveCategory())

	p.CustomCategory = "importados"
	assert.Equal(t, "importados", p.EffectiveCategory())
}
