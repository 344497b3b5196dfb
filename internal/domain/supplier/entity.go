package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("nome não pode ser vazio")
	ErrEmptyPhone = errors.New("telefone não pode ser vazio")
)

// Supplier representa um fornecedor de produtos
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`     // Nome/Razão Social
	Phone     string    `json:"phone"`    // Telefone
	Email     string    `json:"email"`    // Email
	Address   string    `json:"address"`  // Endereço
	CNPJ      string    `json:"cnpj"`     // CNPJ (opcional)
	Category  string    `json:"category"` // Ramo do fornecedor
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(name, phone, email string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	now := time.Now()
	return &Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do fornecedor
func (s *Supplier) Update(name, phone, email, address, cnpj, category string) error {
	if name == "" {
		return ErrEmptyName
	}
	if phone == "" {
		return ErrEmptyPhone
	}

	s.Name = name
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.CNPJ = cnpj
	s.Category = category
	s.UpdatedAt = time.Now()

	return nil
}
