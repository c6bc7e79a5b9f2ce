package storage

import (
	"context"
	"database/sql"
	"time"

	"qrdine/agg-svc/internal/domain"
	"qrdine/projection"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

// AddTrending bumps the all-time and per-day popularity of each ordered item
// by the quantity ordered.
func (s *Store) AddTrending(ctx context.Context, hotelID string, day time.Time, items []domain.EventItem) error {
	if len(items) == 0 {
		return nil
	}
	allTimeKey := projection.TrendingKey(hotelID)
	dailyKey := projection.DailyKey(day, hotelID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range items {
			if item.MenuItemID == "" || item.Quantity <= 0 {
				continue
			}
			pipe.ZIncrBy(ctx, allTimeKey, float64(item.Quantity), item.MenuItemID)
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.MenuItemID)
		}
		pipe.Expire(ctx, dailyKey, projection.DailyRetention)
		return nil
	})
	return err
}

func (s *Store) RefreshOutstanding(ctx context.Context, hotelID string) error {
	var outstanding int
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE hotel_id = $1 AND status <> 'COMPLETED'
	`, hotelID).Scan(&outstanding); err != nil {
		return err
	}

	return s.rdb.HSet(ctx, projection.DashboardKey(hotelID), map[string]interface{}{
		projection.FieldOutstandingOrders: outstanding,
		projection.FieldUpdatedAt:         time.Now().Unix(),
	}).Err()
}

func (s *Store) RefreshRatings(ctx context.Context, hotelID string) error {
	var avgRating decimal.Decimal
	var reviewCount int
	err := s.db.QueryRowContext(ctx, `
		SELECT avg_rating, review_count
		FROM hotel_analytics
		WHERE hotel_id = $1
	`, hotelID).Scan(&avgRating, &reviewCount)
	if err == sql.ErrNoRows {
		avgRating = decimal.Zero
	} else if err != nil {
		return err
	}

	return s.rdb.HSet(ctx, projection.DashboardKey(hotelID), map[string]interface{}{
		projection.FieldAvgRating:   avgRating.StringFixed(2),
		projection.FieldReviewCount: reviewCount,
		projection.FieldUpdatedAt:   time.Now().Unix(),
	}).Err()
}
