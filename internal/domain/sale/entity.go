package sale

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errors.New("venda deve ter ao menos um item")
	ErrNoPayments      = errors.New("venda deve ter ao menos um pagamento")
	ErrInvalidMethod   = errors.New("forma de pagamento inválida")
	ErrPaymentMismatch = errors.New("soma dos pagamentos difere do total da venda")
)

// PaymentMethod define as formas de pagamento aceitas
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"   // Dinheiro
	PaymentCredit PaymentMethod = "credit" // Cartão de Crédito
	PaymentDebit  PaymentMethod = "debit"  // Cartão de Débito
	PaymentPix    PaymentMethod = "pix"    // Pix
	PaymentOther  PaymentMethod = "other"  // Outros
)

// IsValid verifica se a forma de pagamento é conhecida
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentDebit, PaymentPix, PaymentOther:
		return true
	}
	return false
}

// Item representa um item de venda, com o preço congelado no momento da venda
type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"` // Nome do produto no momento da venda
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"` // Preço unitário no momento da venda
	Subtotal    float64 `json:"subtotal"`   // Quantidade x Preço Unitário
}

// Payment representa um pagamento da venda. Uma venda pode ter vários
// pagamentos (pagamento dividido), desde que a soma feche com o total
type Payment struct {
	Method        PaymentMethod `json:"method"`
	Amount        float64       `json:"amount"`
	TransactionID string        `json:"transaction_id"` // Identificador externo (opcional)
}

// Sale representa uma venda completa (cabeçalho + itens + pagamentos)
type Sale struct {
	ID           string    `json:"id"`
	SaleDate     time.Time `json:"sale_date"`
	Items        []Item    `json:"items"`
	Payments     []Payment `json:"payments"`
	Total        float64   `json:"total"`
	CustomerID   string    `json:"customer_id"` // Cliente vinculado (opcional)
	UserID       string    `json:"user_id"`     // Operador que registrou a venda
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// PointsForTotal calcula os pontos de fidelidade de uma venda:
// 1 ponto a cada 10 unidades monetárias do total
func PointsForTotal(total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(total / 10))
}

// NewSale monta uma venda a partir dos itens e pagamentos já validados.
// O total é a soma dos subtotais e os pontos são derivados do total
func NewSale(saleDate time.Time, items []Item, payments []Payment, customerID, userID string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if len(payments) == 0 {
		return nil, ErrNoPayments
	}

	var total float64
	for _, it := range items {
		total += it.Subtotal
	}

	var paid float64
	for _, p := range payments {
		if !p.Method.IsValid() {
			return nil, ErrInvalidMethod
		}
		paid += p.Amount
	}
	if !amountsEqual(paid, total) {
		return nil, ErrPaymentMismatch
	}

	return &Sale{
		ID:           uuid.New().String(),
		SaleDate:     saleDate,
		Items:        items,
		Payments:     payments,
		Total:        total,
		CustomerID:   customerID,
		UserID:       userID,
		PointsEarned: PointsForTotal(total),
		CreatedAt:    time.Now(),
	}, nil
}

// amountsEqual compara valores monetários com tolerância de meio centavo
func amountsEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
