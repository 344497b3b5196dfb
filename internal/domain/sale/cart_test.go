package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apenask/csnutri-server/internal/domain/product"
)

func newTestProduct(t *testing.T, name string, price float64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, price, 0, stock, 0, product.CategorySupplement)
	require.NoError(t, err)
	return p
}

func TestAddItemInsertsWithQuantityOne(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Whey Protein 900g", 120.0, 5)

	require.NoError(t, cart.AddItem(p))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, p.ID, cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 120.0, cart.Items[0].Subtotal)
	assert.Equal(t, 120.0, cart.Total())
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Creatina 300g", 80.0, 5)

	require.NoError(t, cart.AddItem(p))
	require.NoError(t, cart.AddItem(p))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 160.0, cart.Items[0].Subtotal)
}

func TestAddItemRejectsBeyondStock(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Barra de Proteína", 9.5, 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, cart.AddItem(p))
	}

	// A quarta unidade ultrapassa o estoque e não altera o carrinho
	err := cart.AddItem(p)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 28.5, cart.Total())
}

func TestAddItemRejectsProductWithoutStock(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Produto Esgotado", 10.0, 0)

	err := cart.AddItem(p)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Pasta de Amendoim", 25.0, 10)
	require.NoError(t, cart.AddItem(p))

	require.NoError(t, cart.SetQuantity(p.ID, 4))

	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 100.0, cart.Total())
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Água de Coco", 7.0, 10)
	require.NoError(t, cart.AddItem(p))

	require.NoError(t, cart.SetQuantity(p.ID, 0))
	assert.True(t, cart.IsEmpty())

	require.NoError(t, cart.AddItem(p))
	require.NoError(t, cart.SetQuantity(p.ID, -3))
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantityClampsToStock(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Whey Isolado", 200.0, 4)
	require.NoError(t, cart.AddItem(p))

	err := cart.SetQuantity(p.ID, 10)

	assert.ErrorIs(t, err, ErrQuantityClamped)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 800.0, cart.Total())
}

func TestSetQuantityUnknownItem(t *testing.T) {
	cart := NewCart()
	err := cart.SetQuantity("inexistente", 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	a := newTestProduct(t, "Produto A", 10.0, 5)
	b := newTestProduct(t, "Produto B", 20.0, 5)
	require.NoError(t, cart.AddItem(a))
	require.NoError(t, cart.AddItem(b))

	cart.RemoveItem(a.ID)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, b.ID, cart.Items[0].ProductID)
	assert.Equal(t, 20.0, cart.Total())

	// Remover item inexistente não altera nada
	cart.RemoveItem("outro")
	assert.Len(t, cart.Items, 1)
}

func TestClear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(newTestProduct(t, "Produto", 10.0, 5)))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.Total())
}

func TestTotalAlwaysMatchesLineSubtotals(t *testing.T) {
	cart := NewCart()
	a := newTestProduct(t, "Produto A", 12.5, 10)
	b := newTestProduct(t, "Produto B", 3.3, 10)

	require.NoError(t, cart.AddItem(a))
	require.NoError(t, cart.AddItem(b))
	require.NoError(t, cart.SetQuantity(a.ID, 3))
	require.NoError(t, cart.SetQuantity(b.ID, 2))
	cart.RemoveItem(b.ID)

	var sum float64
	for _, it := range cart.Items {
		sum += it.Subtotal
	}
	assert.Equal(t, sum, cart.Total())
	assert.Equal(t, 37.5, cart.Total())
}
