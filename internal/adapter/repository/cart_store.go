package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/apenask/csnutri-server/internal/domain/sale"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// RedisCartStore implementa sale.CartStore sobre o Redis. O carrinho de
// cada operador expira sozinho: uma sessão de caixa abandonada não
// deixa resíduo
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore cria uma nova instância de RedisCartStore. A
// expiração é controlada por CART_TTL_MINUTES (padrão 120)
func NewRedisCartStore(client *redis.Client) sale.CartStore {
	ttl := 120 * time.Minute
	if v := os.Getenv("CART_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

// Get implementa sale.CartStore.Get
func (s *RedisCartStore) Get(ctx context.Context, userID string) (*sale.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return sale.NewCart(), nil
		}
		return nil, fmt.Errorf("erro ao buscar carrinho: %w", err)
	}

	var cart sale.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("erro ao decodificar carrinho: %w", err)
	}

	return &cart, nil
}

// Save implementa sale.CartStore.Save
func (s *RedisCartStore) Save(ctx context.Context, userID string, cart *sale.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("erro ao codificar carrinho: %w", err)
	}

	if err := s.client.Set(ctx, cartKeyPrefix+userID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar carrinho: %w", err)
	}

	return nil
}

// Clear implementa sale.CartStore.Clear
func (s *RedisCartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("erro ao descartar carrinho: %w", err)
	}
	return nil
}
