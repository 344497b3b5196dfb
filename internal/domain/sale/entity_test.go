package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsForTotal(t *testing.T) {
	tests := []struct {
		total  float64
		points int
	}{
		{0, 0},
		{-10, 0},
		{5.0, 0},
		{9.99, 0},
		{10.0, 1},
		{19.99, 1},
		{25.0, 2},
		{100.0, 10},
		{109.90, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.points, PointsForTotal(tt.total), "total %.2f", tt.total)
	}
}

func TestNewSaleRequiresItemsAndPayments(t *testing.T) {
	payment := []Payment{{Method: PaymentCash, Amount: 10.0}}
	item := []Item{{ProductID: "p1", ProductName: "Produto", Quantity: 1, UnitPrice: 10.0, Subtotal: 10.0}}

	_, err := NewSale(time.Now(), nil, payment, "", "user-1")
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = NewSale(time.Now(), item, nil, "", "user-1")
	assert.ErrorIs(t, err, ErrNoPayments)
}

func TestNewSaleRejectsUnknownMethod(t *testing.T) {
	item := []Item{{ProductID: "p1", ProductName: "Produto", Quantity: 1, UnitPrice: 10.0, Subtotal: 10.0}}
	_, err := NewSale(time.Now(), item, []Payment{{Method: "fiado", Amount: 10.0}}, "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestNewSaleRejectsPaymentMismatch(t *testing.T) {
	item := []Item{{ProductID: "p1", ProductName: "Produto", Quantity: 2, UnitPrice: 10.0, Subtotal: 20.0}}
	_, err := NewSale(time.Now(), item, []Payment{{Method: PaymentCash, Amount: 15.0}}, "", "user-1")
	assert.ErrorIs(t, err, ErrPaymentMismatch)
}

func TestNewSaleDerivesTotalAndPoints(t *testing.T) {
	items := []Item{
		{ProductID: "p1", ProductName: "Produto A", Quantity: 2, UnitPrice: 10.0, Subtotal: 20.0},
		{ProductID: "p2", ProductName: "Produto B", Quantity: 1, UnitPrice: 5.0, Subtotal: 5.0},
	}
	payments := []Payment{
		{Method: PaymentCash, Amount: 15.0},
		{Method: PaymentPix, Amount: 10.0},
	}

	s, err := NewSale(time.Now(), items, payments, "cliente-1", "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 25.0, s.Total)
	assert.Equal(t, 2, s.PointsEarned)
	assert.Equal(t, "cliente-1", s.CustomerID)
}

func TestNewSaleToleratesRoundingOnPayments(t *testing.T) {
	// Três pagamentos de um terço de 10.00 fecham dentro da tolerância
	items := []Item{{ProductID: "p1", ProductName: "Produto", Quantity: 1, UnitPrice: 10.0, Subtotal: 10.0}}
	payments := []Payment{
		{Method: PaymentCash, Amount: 3.33},
		{Method: PaymentCash, Amount: 3.33},
		{Method: PaymentCash, Amount: 3.34},
	}

	_, err := NewSale(time.Now(), items, payments, "", "user-1")
	assert.NoError(t, err)
}

func TestPaymentMethodIsValid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentCash, PaymentCredit, PaymentDebit, PaymentPix, PaymentOther} {
		assert.True(t, m.IsValid(), string(m))
	}
	assert.False(t, PaymentMethod("").IsValid())
	assert.False(t, PaymentMethod("cheque").IsValid())
}
