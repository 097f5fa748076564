package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/redis/go-redis/v9"
)

// CartRedisStore implementa CartStore usando Redis
// Un blob JSON por clave tenant+sesión con TTL: el carrito sobrevive
// recargas de sesión pero no es estado eterno
type CartRedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRedisStore crea una nueva instancia del store
func NewCartRedisStore(client *redis.Client, ttl time.Duration) port.CartStore {
	return &CartRedisStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(tenantID, sessionID string) string {
	return fmt.Sprintf("pos:cart:%s:%s", tenantID, sessionID)
}

// Save persiste el estado completo del carrito
func (s *CartRedisStore) Save(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("error serializing cart: %w", err)
	}

	key := cartKey(cart.TenantID, cart.SessionID)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("error saving cart: %w", err)
	}
	return nil
}

// Load rehidrata el carrito de una sesión; nil si no existe
func (s *CartRedisStore) Load(ctx context.Context, tenantID, sessionID string) (*entity.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(tenantID, sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading cart: %w", err)
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("error deserializing cart: %w", err)
	}
	return &cart, nil
}

// Delete descarta el carrito persistido de una sesión
func (s *CartRedisStore) Delete(ctx context.Context, tenantID, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(tenantID, sessionID)).Err(); err != nil {
		return fmt.Errorf("error deleting cart: %w", err)
	}
	return nil
}
