package dto

import (
	"time"

	"github.com/apenask/csnutri-server/internal/domain/expense"
)

// ExpenseRequest representa a requisição de despesa
type ExpenseRequest struct {
	ExpenseDate time.Time `json:"expense_date" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Category    string    `json:"category" binding:"required"`
	SupplierID  string    `json:"supplier_id"`
}

// ExpenseResponse representa a resposta de despesa
type ExpenseResponse struct {
	ID          string    `json:"id"`
	ExpenseDate time.Time `json:"expense_date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	SupplierID  string    `json:"supplier_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse representa a resposta de lista de despesas
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// ToExpenseResponse converte a entidade para a forma de transporte
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		ExpenseDate: e.ExpenseDate,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		SupplierID:  e.SupplierID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converte uma lista de despesas
func ToExpenseListResponse(expenses []*expense.Expense, meta ListMeta) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return ExpenseListResponse{Items: items, Meta: meta}
}
