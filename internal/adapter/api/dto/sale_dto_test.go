package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apenask/csnutri-server/internal/domain/sale"
)

func sampleSale() *sale.Sale {
	return &sale.Sale{
		ID:       "venda-1",
		SaleDate: time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC),
		Items: []sale.Item{
			{ProductID: "p1", ProductName: "Whey Protein", Quantity: 2, UnitPrice: 120.0, Subtotal: 240.0},
			{ProductID: "p2", ProductName: "Creatina", Quantity: 1, UnitPrice: 60.0, Subtotal: 60.0},
		},
		Payments: []sale.Payment{
			{Method: sale.PaymentCash, Amount: 100.0},
			{Method: sale.PaymentPix, Amount: 200.0, TransactionID: "pix-xyz"},
		},
		Total:        300.0,
		CustomerID:   "cliente-1",
		UserID:       "user-1",
		PointsEarned: 30,
		CreatedAt:    time.Date(2025, 6, 10, 15, 30, 1, 0, time.UTC),
	}
}

func TestSaleResponseRoundTrip(t *testing.T) {
	original := sampleSale()

	restored := FromSaleResponse(ToSaleResponse(original))

	assert.Equal(t, original, restored)
}

func TestSaleResponseJSONShape(t *testing.T) {
	data, err := json.Marshal(ToSaleResponse(sampleSale()))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, field := range []string{"id", "sale_date", "items", "payments", "total", "customer_id", "user_id", "points_earned", "created_at"} {
		assert.Contains(t, decoded, field)
	}

	items := decoded["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "p1", first["product_id"])
	assert.Equal(t, "Whey Protein", first["product_name"])

	payments := decoded["payments"].([]interface{})
	require.Len(t, payments, 2)
	assert.Equal(t, "cash", payments[0].(map[string]interface{})["method"])
}

func TestSaleResponseOmitsEmptyCustomer(t *testing.T) {
	s := sampleSale()
	s.CustomerID = ""

	data, err := json.Marshal(ToSaleResponse(s))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "customer_id")
}

func TestSaleUpdateRequestDistinguishesAbsentCustomer(t *testing.T) {
	// Corrigir só a data não pode ser lido como desvincular o cliente
	var dateOnly SaleUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"sale_date":"2025-06-10T15:00:00Z"}`), &dateOnly))
	require.NotNil(t, dateOnly.SaleDate)
	assert.Nil(t, dateOnly.CustomerID)

	// customer_id vazio explícito é um desvínculo intencional
	var detach SaleUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"customer_id":""}`), &detach))
	require.NotNil(t, detach.CustomerID)
	assert.Equal(t, "", *detach.CustomerID)

	var reassign SaleUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"customer_id":"cliente-2"}`), &reassign))
	require.NotNil(t, reassign.CustomerID)
	assert.Equal(t, "cliente-2", *reassign.CustomerID)
}

func TestToPaymentInputs(t *testing.T) {
	inputs := ToPaymentInputs([]PaymentRequest{
		{Method: "cash", Amount: 40.0, AmountReceived: 50.0},
		{Method: "pix", Amount: 60.0, TransactionID: "pix-123"},
	})

	require.Len(t, inputs, 2)
	assert.Equal(t, sale.PaymentCash, inputs[0].Method)
	assert.Equal(t, 50.0, inputs[0].AmountReceived)
	assert.Equal(t, sale.PaymentPix, inputs[1].Method)
	assert.Equal(t, "pix-123", inputs[1].TransactionID)
}

func TestToCartResponse(t *testing.T) {
	cart := sale.NewCart()
	cart.Items = []sale.CartItem{
		{ProductID: "p1", ProductName: "Produto", UnitPrice: 10.0, Quantity: 3, Stock: 5, Subtotal: 30.0},
	}

	resp := ToCartResponse(cart, "quantidade ajustada ao estoque disponível")

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 30.0, resp.Total)
	assert.Equal(t, "quantidade ajustada ao estoque disponível", resp.Warning)

	// O retrato de estoque é interno do carrinho e não sai na resposta
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"stock"`)
}
