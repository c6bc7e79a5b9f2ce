package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache remembers which orders have been rated so repeats can be refused
// without a database round trip.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MarkerKey(orderID string) string {
	return "rating:" + orderID
}

func (c *RedisCache) IsRated(ctx context.Context, orderID string) (bool, error) {
	n, err := c.Client.Exists(ctx, c.MarkerKey(orderID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// MarkRated stores the score under the order's marker. An existing marker is
// left untouched.
func (c *RedisCache) MarkRated(ctx context.Context, orderID string, score int) error {
	err := c.Client.SetArgs(ctx, c.MarkerKey(orderID), score, redis.SetArgs{Mode: "NX", TTL: c.TTL}).Err()
	if err == redis.Nil {
		return nil
	}
	return err
}
