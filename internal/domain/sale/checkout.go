package sale

import (
	"errors"
	"time"
)

var (
	ErrInsufficientCash  = errors.New("valor recebido menor que o valor a pagar")
	ErrInvalidPayment    = errors.New("pagamento com valor inválido")
	ErrReceivedNotOnCash = errors.New("valor recebido só se aplica a pagamento em dinheiro")
)

// PaymentInput é a entrada de pagamento informada no fechamento da venda.
// Em pagamento dividido cada entrada informa seu valor; quando há uma
// única entrada, o valor pode ser omitido e assume o total do carrinho.
// Em dinheiro, AmountReceived é obrigatório e serve para o cálculo do
// troco; nas demais formas não deve ser informado
type PaymentInput struct {
	Method         PaymentMethod `json:"method"`
	Amount         float64       `json:"amount"`
	AmountReceived float64       `json:"amount_received"`
	TransactionID  string        `json:"transaction_id"`
}

// CheckoutResult carrega a venda montada e o troco devido
type CheckoutResult struct {
	Sale   *Sale
	Change float64
}

// Checkout valida carrinho e pagamentos e monta a venda a ser persistida.
// Nenhuma validação aqui faz I/O: tudo acontece antes de qualquer escrita.
//
// Regras:
//   - carrinho vazio é recusado;
//   - cada forma de pagamento deve pertencer ao conjunto conhecido;
//   - a soma dos valores pagos deve fechar com o total do carrinho;
//   - em dinheiro, o valor recebido é obrigatório, deve cobrir o valor
//     a pagar e o troco é a diferença; nas demais formas não há troco
func Checkout(cart *Cart, payments []PaymentInput, customerID, userID string, saleDate time.Time) (*CheckoutResult, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if len(payments) == 0 {
		return nil, ErrNoPayments
	}

	total := cart.Total()

	// Pagamento único pode omitir o valor: assume o total
	if len(payments) == 1 && payments[0].Amount == 0 {
		payments[0].Amount = total
	}

	var change float64
	salePayments := make([]Payment, 0, len(payments))
	for _, in := range payments {
		if !in.Method.IsValid() {
			return nil, ErrInvalidMethod
		}
		if in.Amount <= 0 {
			return nil, ErrInvalidPayment
		}

		switch {
		case in.Method == PaymentCash:
			// Valor recebido ausente ou menor que o devido recusa a venda:
			// dinheiro sem conferência de troco não fecha o caixa
			if in.AmountReceived < in.Amount {
				return nil, ErrInsufficientCash
			}
			change += in.AmountReceived - in.Amount
		case in.AmountReceived > 0:
			return nil, ErrReceivedNotOnCash
		}

		// O pagamento registrado é o valor a pagar, nunca o valor recebido
		salePayments = append(salePayments, Payment{
			Method:        in.Method,
			Amount:        in.Amount,
			TransactionID: in.TransactionID,
		})
	}

	items := make([]Item, 0, len(cart.Items))
	for _, ci := range cart.Items {
		items = append(items, Item{
			ProductID:   ci.ProductID,
			ProductName: ci.ProductName,
			Quantity:    ci.Quantity,
			UnitPrice:   ci.UnitPrice,
			Subtotal:    ci.Subtotal,
		})
	}

	s, err := NewSale(saleDate, items, salePayments, customerID, userID)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{Sale: s, Change: change}, nil
}
