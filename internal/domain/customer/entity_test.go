package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerValidation(t *testing.T) {
	_, err := NewCustomer("", "83999990000", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCustomer("Maria", "", "")
	assert.ErrorIs(t, err, ErrEmptyPhone)

	c, err := NewCustomer("Maria", "83999990000", "maria@email.com")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 0, c.Points)
	assert.Equal(t, 0.0, c.TotalSpent)
	assert.Equal(t, 0, c.TotalPurchases)
}

func TestRegisterPurchaseAccumulates(t *testing.T) {
	c, err := NewCustomer("João", "83988880000", "")
	require.NoError(t, err)

	c.RegisterPurchase(25.0, 2)
	c.RegisterPurchase(100.0, 10)

	assert.Equal(t, 2, c.TotalPurchases)
	assert.Equal(t, 125.0, c.TotalSpent)
	assert.Equal(t, 12, c.Points)
}

func TestReversePurchase(t *testing.T) {
	c, err := NewCustomer("João", "83988880000", "")
	require.NoError(t, err)

	c.RegisterPurchase(25.0, 2)
	c.RegisterPurchase(100.0, 10)
	c.ReversePurchase(25.0, 2)

	assert.Equal(t, 1, c.TotalPurchases)
	assert.Equal(t, 100.0, c.TotalSpent)
	assert.Equal(t, 10, c.Points)
}

func TestReversePurchaseFloorsAtZero(t *testing.T) {
	c, err := NewCustomer("João", "83988880000", "")
	require.NoError(t, err)

	c.RegisterPurchase(25.0, 2)
	// Reverter mais do que foi acumulado nunca deixa os totais negativos
	c.ReversePurchase(100.0, 10)

	assert.Equal(t, 0, c.TotalPurchases)
	assert.Equal(t, 0.0, c.TotalSpent)
	assert.Equal(t, 0, c.Points)
}
