package dto

import (
	"time"

	"github.com/apenask/csnutri-server/internal/domain/customer"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Address        string `json:"address"`
	CustomCategory string `json:"custom_category"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address,omitempty"`
	Points         int       `json:"points"`
	TotalSpent     float64   `json:"total_spent"`
	TotalPurchases int       `json:"total_purchases"`
	CustomCategory string    `json:"custom_category,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}

// ToCustomerResponse converte a entidade para a forma de transporte
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Points:         c.Points,
		TotalSpent:     c.TotalSpent,
		TotalPurchases: c.TotalPurchases,
		CustomCategory: c.CustomCategory,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes
func ToCustomerListResponse(customers []*customer.Customer, meta ListMeta) CustomerListResponse {
	items := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, ToCustomerResponse(c))
	}
	return CustomerListResponse{Items: items, Meta: meta}
}
