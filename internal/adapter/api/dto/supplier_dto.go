package dto

import (
	"time"

	"github.com/apenask/csnutri-server/internal/domain/supplier"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"address"`
	CNPJ     string `json:"cnpj"`
	Category string `json:"category"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}

// ToSupplierResponse converte a entidade para a forma de transporte
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Email:     s.Email,
		Address:   s.Address,
		CNPJ:      s.CNPJ,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierListResponse converte uma lista de fornecedores
func ToSupplierListResponse(suppliers []*supplier.Supplier, meta ListMeta) SupplierListResponse {
	items := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, ToSupplierResponse(s))
	}
	return SupplierListResponse{Items: items, Meta: meta}
}
