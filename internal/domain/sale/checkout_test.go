package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWithTotal(t *testing.T, total float64) *Cart {
	t.Helper()
	cart := NewCart()
	require.NoError(t, cart.AddItem(newTestProduct(t, "Produto de Teste", total, 100)))
	return cart
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, err := Checkout(NewCart(), []PaymentInput{{Method: PaymentCash}}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = Checkout(nil, []PaymentInput{{Method: PaymentCash}}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutWithoutPayments(t *testing.T) {
	_, err := Checkout(cartWithTotal(t, 50.0), nil, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrNoPayments)
}

func TestCheckoutSinglePaymentAssumesTotal(t *testing.T) {
	result, err := Checkout(cartWithTotal(t, 50.0), []PaymentInput{{Method: PaymentPix}}, "", "user-1", time.Now())
	require.NoError(t, err)

	require.Len(t, result.Sale.Payments, 1)
	assert.Equal(t, 50.0, result.Sale.Payments[0].Amount)
	assert.Equal(t, 0.0, result.Change)
}

func TestCheckoutCashChange(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Produto", 12.5, 10)
	require.NoError(t, cart.AddItem(p))
	require.NoError(t, cart.SetQuantity(p.ID, 2))

	result, err := Checkout(cart, []PaymentInput{
		{Method: PaymentCash, Amount: 25.0, AmountReceived: 30.0},
	}, "", "user-1", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 25.0, result.Sale.Total)
	assert.Equal(t, 5.0, result.Change)
	assert.Equal(t, 2, result.Sale.PointsEarned)
	// O pagamento registra o valor a pagar, não o valor recebido
	assert.Equal(t, 25.0, result.Sale.Payments[0].Amount)
}

func TestCheckoutCashInsufficient(t *testing.T) {
	_, err := Checkout(cartWithTotal(t, 25.0), []PaymentInput{
		{Method: PaymentCash, Amount: 25.0, AmountReceived: 20.0},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrInsufficientCash)
}

func TestCheckoutCashRequiresReceived(t *testing.T) {
	// Dinheiro sem valor recebido (ou com zero explícito) é recusado,
	// nunca tratado como pagamento exato
	_, err := Checkout(cartWithTotal(t, 25.0), []PaymentInput{
		{Method: PaymentCash, Amount: 25.0},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrInsufficientCash)

	_, err = Checkout(cartWithTotal(t, 25.0), []PaymentInput{
		{Method: PaymentCash, Amount: 25.0, AmountReceived: 0.0},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrInsufficientCash)

	// Pagamento único em dinheiro com valor omitido assume o total,
	// mas continua exigindo o valor recebido
	_, err = Checkout(cartWithTotal(t, 25.0), []PaymentInput{
		{Method: PaymentCash},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrInsufficientCash)
}

func TestCheckoutCashExactTender(t *testing.T) {
	result, err := Checkout(cartWithTotal(t, 25.0), []PaymentInput{
		{Method: PaymentCash, Amount: 25.0, AmountReceived: 25.0},
	}, "", "user-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Change)
}

func TestCheckoutReceivedOnlyOnCash(t *testing.T) {
	_, err := Checkout(cartWithTotal(t, 25.0), []PaymentInput{
		{Method: PaymentCredit, Amount: 25.0, AmountReceived: 30.0},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrReceivedNotOnCash)
}

func TestCheckoutSplitPayments(t *testing.T) {
	result, err := Checkout(cartWithTotal(t, 100.0), []PaymentInput{
		{Method: PaymentCash, Amount: 40.0, AmountReceived: 50.0},
		{Method: PaymentPix, Amount: 60.0, TransactionID: "pix-123"},
	}, "cliente-1", "user-1", time.Now())
	require.NoError(t, err)

	require.Len(t, result.Sale.Payments, 2)
	assert.Equal(t, 10.0, result.Change)
	assert.Equal(t, 100.0, result.Sale.Total)
	assert.Equal(t, "pix-123", result.Sale.Payments[1].TransactionID)
}

func TestCheckoutSplitPaymentsMismatch(t *testing.T) {
	_, err := Checkout(cartWithTotal(t, 100.0), []PaymentInput{
		{Method: PaymentCredit, Amount: 40.0},
		{Method: PaymentPix, Amount: 50.0},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrPaymentMismatch)
}

func TestCheckoutInvalidMethod(t *testing.T) {
	_, err := Checkout(cartWithTotal(t, 10.0), []PaymentInput{
		{Method: PaymentMethod("cheque"), Amount: 10.0},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestCheckoutNegativeAmount(t *testing.T) {
	_, err := Checkout(cartWithTotal(t, 10.0), []PaymentInput{
		{Method: PaymentCash, Amount: -5.0},
		{Method: PaymentPix, Amount: 15.0},
	}, "", "user-1", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestCheckoutBuildsItemsFromCart(t *testing.T) {
	cart := NewCart()
	a := newTestProduct(t, "Produto A", 10.0, 10)
	b := newTestProduct(t, "Produto B", 5.0, 10)
	require.NoError(t, cart.AddItem(a))
	require.NoError(t, cart.AddItem(b))
	require.NoError(t, cart.SetQuantity(b.ID, 3))

	saleDate := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	result, err := Checkout(cart, []PaymentInput{{Method: PaymentDebit, Amount: 25.0}}, "cliente-1", "user-1", saleDate)
	require.NoError(t, err)

	s := result.Sale
	require.Len(t, s.Items, 2)
	assert.Equal(t, a.ID, s.Items[0].ProductID)
	assert.Equal(t, "Produto A", s.Items[0].ProductName)
	assert.Equal(t, 3, s.Items[1].Quantity)
	assert.Equal(t, 15.0, s.Items[1].Subtotal)
	assert.Equal(t, saleDate, s.SaleDate)
	assert.Equal(t, "cliente-1", s.CustomerID)
	assert.Equal(t, "user-1", s.UserID)
}
