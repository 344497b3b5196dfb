package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("nome não pode ser vazio")
	ErrEmptyPhone = errors.New("telefone não pode ser vazio")
)

// Customer representa um cliente do sistema com seus acumulados de fidelidade
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`            // Nome do Cliente
	Phone          string    `json:"phone"`           // Telefone
	Email          string    `json:"email"`           // Email
	Address        string    `json:"address"`         // Endereço (opcional)
	Points         int       `json:"points"`          // Pontos de Fidelidade acumulados
	TotalSpent     float64   `json:"total_spent"`     // Total gasto em compras
	TotalPurchases int       `json:"total_purchases"` // Quantidade de compras realizadas
	CustomCategory string    `json:"custom_category"` // Categoria Personalizada (opcional)
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(name, phone, email string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados cadastrais do cliente
func (c *Customer) Update(name, phone, email, address, customCategory string) error {
	if name == "" {
		return ErrEmptyName
	}
	if phone == "" {
		return ErrEmptyPhone
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.CustomCategory = customCategory
	c.UpdatedAt = time.Now()

	return nil
}

// RegisterPurchase acumula uma compra nos totais do cliente
func (c *Customer) RegisterPurchase(total float64, points int) {
	c.TotalPurchases++
	c.TotalSpent += total
	c.Points += points
	c.UpdatedAt = time.Now()
}

// ReversePurchase desfaz a contribuição de uma compra nos totais,
// nunca deixando os acumulados negativos
func (c *Customer) ReversePurchase(total float64, points int) {
	c.TotalPurchases--
	if c.TotalPurchases < 0 {
		c.TotalPurchases = 0
	}
	c.TotalSpent -= total
	if c.TotalSpent < 0 {
		c.TotalSpent = 0
	}
	c.Points -= points
	if c.Points < 0 {
		c.Points = 0
	}
	c.UpdatedAt = time.Now()
}
