package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"qrdine/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each cart as one JSON value. Every save refreshes the TTL.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(id string) string {
	return "cart:" + id
}

// GetCart returns nil without error when the cart does not exist or expired.
func (s *RedisCartStore) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	raw, err := s.Client.Get(ctx, s.CartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *RedisCartStore) SaveCart(ctx context.Context, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.CartKey(cart.ID), payload, s.TTL).Err()
}

func (s *RedisCartStore) DeleteCart(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.CartKey(id)).Err()
}
