package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor deve ser maior que zero")
	ErrEmptyCategory    = errors.New("categoria não pode ser vazia")
)

// Expense representa uma despesa do negócio. É independente do fluxo de
// vendas e alimenta apenas os relatórios financeiros
type Expense struct {
	ID          string    `json:"id"`
	ExpenseDate time.Time `json:"expense_date"` // Data da Despesa
	Description string    `json:"description"`  // Descrição
	Amount      float64   `json:"amount"`       // Valor
	Category    string    `json:"category"`     // Categoria
	SupplierID  string    `json:"supplier_id"`  // Fornecedor relacionado (opcional)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewExpense cria uma nova despesa
func NewExpense(expenseDate time.Time, description string, amount float64, category string) (*Expense, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}

	now := time.Now()
	return &Expense{
		ID:          uuid.New().String(),
		ExpenseDate: expenseDate,
		Description: description,
		Amount:      amount,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados da despesa
func (e *Expense) Update(expenseDate time.Time, description string, amount float64, category, supplierID string) error {
	if description == "" {
		return ErrEmptyDescription
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if category == "" {
		return ErrEmptyCategory
	}

	e.ExpenseDate = expenseDate
	e.Description = description
	e.Amount = amount
	e.Category = category
	e.SupplierID = supplierID
	e.UpdatedAt = time.Now()

	return nil
}
