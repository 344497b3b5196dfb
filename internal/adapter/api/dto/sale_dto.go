package dto

import (
	"time"

	"github.com/apenask/csnutri-server/internal/domain/sale"
)

// AddCartItemRequest representa a requisição para adicionar um produto ao carrinho
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// SetCartQuantityRequest representa a requisição para ajustar a quantidade de um item
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse representa uma linha do carrinho
type CartItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// CartResponse representa o carrinho do operador
type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	Total   float64            `json:"total"`
	Warning string             `json:"warning,omitempty"` // Aviso de ajuste de quantidade
}

// PaymentRequest representa uma entrada de pagamento no fechamento da venda
type PaymentRequest struct {
	Method         string  `json:"method" binding:"required,oneof=cash credit debit pix other"`
	Amount         float64 `json:"amount" binding:"gte=0"`
	AmountReceived float64 `json:"amount_received" binding:"gte=0"`
	TransactionID  string  `json:"transaction_id"`
}

// CheckoutRequest representa a requisição de fechamento da venda
type CheckoutRequest struct {
	Payments   []PaymentRequest `json:"payments" binding:"required,min=1,dive"`
	CustomerID string           `json:"customer_id"`
	SaleDate   *time.Time       `json:"sale_date"`
}

// CheckoutResponse representa a resposta do fechamento da venda
type CheckoutResponse struct {
	Sale   SaleResponse `json:"sale"`
	Change float64      `json:"change"`
}

// SaleUpdateRequest representa a correção de data/cliente de uma venda.
// Itens e pagamentos são imutáveis após a criação. Campos ausentes são
// mantidos como estão; customer_id vazio desvincula o cliente
type SaleUpdateRequest struct {
	SaleDate   *time.Time `json:"sale_date"`
	CustomerID *string    `json:"customer_id"`
}

// SaleItemResponse representa um item de venda
type SaleItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// SalePaymentResponse representa um pagamento de venda
type SalePaymentResponse struct {
	Method        string  `json:"method"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID           string                `json:"id"`
	SaleDate     time.Time             `json:"sale_date"`
	Items        []SaleItemResponse    `json:"items"`
	Payments     []SalePaymentResponse `json:"payments"`
	Total        float64               `json:"total"`
	CustomerID   string                `json:"customer_id,omitempty"`
	UserID       string                `json:"user_id"`
	PointsEarned int                   `json:"points_earned"`
	CreatedAt    time.Time             `json:"created_at"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Meta  ListMeta       `json:"meta"`
}

// ToCartResponse converte o carrinho para a forma de transporte
func ToCartResponse(c *sale.Cart, warning string) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}
	return CartResponse{
		Items:   items,
		Total:   c.Total(),
		Warning: warning,
	}
}

// ToPaymentInputs converte as entradas de pagamento da requisição
func ToPaymentInputs(payments []PaymentRequest) []sale.PaymentInput {
	inputs := make([]sale.PaymentInput, 0, len(payments))
	for _, p := range payments {
		inputs = append(inputs, sale.PaymentInput{
			Method:         sale.PaymentMethod(p.Method),
			Amount:         p.Amount,
			AmountReceived: p.AmountReceived,
			TransactionID:  p.TransactionID,
		})
	}
	return inputs
}

// ToSaleResponse converte a entidade para a forma de transporte
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}

	payments := make([]SalePaymentResponse, 0, len(s.Payments))
	for _, p := range s.Payments {
		payments = append(payments, SalePaymentResponse{
			Method:        string(p.Method),
			Amount:        p.Amount,
			TransactionID: p.TransactionID,
		})
	}

	return SaleResponse{
		ID:           s.ID,
		SaleDate:     s.SaleDate,
		Items:        items,
		Payments:     payments,
		Total:        s.Total,
		CustomerID:   s.CustomerID,
		UserID:       s.UserID,
		PointsEarned: s.PointsEarned,
		CreatedAt:    s.CreatedAt,
	}
}

// FromSaleResponse reconstrói a entidade a partir da forma de transporte.
// Usado nos testes de ida e volta da fronteira de serialização
func FromSaleResponse(r SaleResponse) *sale.Sale {
	items := make([]sale.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, sale.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}

	payments := make([]sale.Payment, 0, len(r.Payments))
	for _, p := range r.Payments {
		payments = append(payments, sale.Payment{
			Method:        sale.PaymentMethod(p.Method),
			Amount:        p.Amount,
			TransactionID: p.TransactionID,
		})
	}

	return &sale.Sale{
		ID:           r.ID,
		SaleDate:     r.SaleDate,
		Items:        items,
		Payments:     payments,
		Total:        r.Total,
		CustomerID:   r.CustomerID,
		UserID:       r.UserID,
		PointsEarned: r.PointsEarned,
		CreatedAt:    r.CreatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas
func ToSaleListResponse(sales []*sale.Sale, meta ListMeta) SaleListResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSaleResponse(s))
	}
	return SaleListResponse{Items: items, Meta: meta}
}
