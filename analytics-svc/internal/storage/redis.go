package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"qrdine/analytics-svc/internal/domain"
	"qrdine/projection"

	"github.com/redis/go-redis/v9"
)

type RedisProjections struct {
	Client *redis.Client
}

func NewRedisProjections(client *redis.Client) *RedisProjections {
	return &RedisProjections{Client: client}
}

func (p *RedisProjections) Outstanding(ctx context.Context, hotelID string) (int, bool, error) {
	raw, err := p.Client.HGet(ctx, projection.DashboardKey(hotelID), projection.FieldOutstandingOrders).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// Trending returns the highest scored items of the all-time set, or of the
// given day's set when day is not nil.
func (p *RedisProjections) Trending(ctx context.Context, hotelID string, day *time.Time, limit int) ([]domain.TrendingItem, error) {
	key := projection.TrendingKey(hotelID)
	if day != nil {
		key = projection.DailyKey(*day, hotelID)
	}
	result, err := p.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.TrendingItem, 0, len(result))
	for _, member := range result {
		id, ok := member.Member.(string)
		if !ok {
			continue
		}
		items = append(items, domain.TrendingItem{
			MenuItemID:    id,
			TotalQuantity: int(member.Score),
		})
	}
	return items, nil
}
