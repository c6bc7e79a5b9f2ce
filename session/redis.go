package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRevoker keeps revoked token ids in Redis until their natural expiry.
type RedisRevoker struct {
	Client *redis.Client
	now    func() time.Time
}

func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{Client: client, now: time.Now}
}

func (r *RedisRevoker) key(tokenID string) string {
	return "session:revoked:" + tokenID
}

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.Client.Set(ctx, r.key(tokenID), "1", ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.Client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
