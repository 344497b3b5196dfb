package sale

import (
	"errors"
	"time"

	"github.com/apenask/csnutri-server/internal/domain/product"
)

var (
	ErrEmptyCart         = errors.New("carrinho vazio")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrQuantityClamped   = errors.New("quantidade ajustada ao estoque disponível")
	ErrItemNotFound      = errors.New("item não está no carrinho")
)

// CartItem representa uma linha do carrinho. Stock guarda o retrato do
// estoque do produto no momento em que ele entrou no carrinho; a checagem
// definitiva acontece na confirmação da venda
type CartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Stock       int     `json:"stock"`
	Subtotal    float64 `json:"subtotal"`
}

// Cart acumula os itens candidatos de uma venda antes da confirmação.
// É transitório, existe apenas durante a sessão de caixa do operador
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart cria um carrinho vazio
func NewCart() *Cart {
	return &Cart{
		Items:     []CartItem{},
		UpdatedAt: time.Now(),
	}
}

// AddItem adiciona uma unidade do produto ao carrinho. Se o produto já
// está no carrinho, incrementa a quantidade. Recusa a operação sem
// alterar o carrinho quando o estoque disponível seria ultrapassado
func (c *Cart) AddItem(p *product.Product) error {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			if c.Items[i].Quantity+1 > p.Stock {
				return ErrInsufficientStock
			}
			c.Items[i].Quantity++
			c.Items[i].Stock = p.Stock
			c.Items[i].Subtotal = float64(c.Items[i].Quantity) * c.Items[i].UnitPrice
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	if p.Stock < 1 {
		return ErrInsufficientStock
	}

	c.Items = append(c.Items, CartItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    1,
		Stock:       p.Stock,
		Subtotal:    p.Price,
	})
	c.UpdatedAt = time.Now()
	return nil
}

// SetQuantity define a quantidade de um item. Quantidade menor que 1
// remove a linha. Quantidade acima do estoque disponível é ajustada
// para o máximo e a operação retorna ErrQuantityClamped
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		c.RemoveItem(productID)
		return nil
	}

	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}

		clamped := false
		if quantity > c.Items[i].Stock {
			quantity = c.Items[i].Stock
			clamped = true
		}

		c.Items[i].Quantity = quantity
		c.Items[i].Subtotal = float64(quantity) * c.Items[i].UnitPrice
		c.UpdatedAt = time.Now()

		if clamped {
			return ErrQuantityClamped
		}
		return nil
	}

	return ErrItemNotFound
}

// RemoveItem remove a linha do produto, se existir
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Clear esvazia o carrinho
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.UpdatedAt = time.Now()
}

// IsEmpty verifica se o carrinho está vazio
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total soma os subtotais das linhas. Sempre derivado, nunca armazenado
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Subtotal
	}
	return total
}
