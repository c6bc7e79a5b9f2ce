package service

import (
	"context"
	"time"

	"qrdine/analytics-svc/internal/domain"
	"qrdine/analytics-svc/internal/storage"
)

// AnalyticsRepository answers every dashboard question straight from Postgres.
type AnalyticsRepository interface {
	GetAnalytics(ctx context.Context, hotelID string) (*domain.HotelAnalytics, error)
	CountOutstanding(ctx context.Context, hotelID string) (int, error)
	// TopItems sums ordered quantities per menu item, optionally only for
	// orders placed on or after since.
	TopItems(ctx context.Context, hotelID string, since *time.Time, limit int) ([]domain.TrendingItem, error)
	MenuItems(ctx context.Context, hotelID string, ids []string) (map[string]domain.MenuItemSummary, error)
	RatingCounts(ctx context.Context, hotelID string) (map[int]int, error)
}

// ProjectionCache reads what agg-svc keeps in Redis. A false ok means the
// projection has not been built yet.
type ProjectionCache interface {
	Outstanding(ctx context.Context, hotelID string) (count int, ok bool, err error)
	Trending(ctx context.Context, hotelID string, day *time.Time, limit int) ([]domain.TrendingItem, error)
}

type AnalyticsInterface interface {
	Metrics(ctx context.Context, hotelID, period string) (*domain.DashboardMetrics, error)
	RatingDistribution(ctx context.Context, hotelID string) (map[string]int, error)
}

var (
	_ AnalyticsRepository = (*storage.PostgresRepository)(nil)
	_ ProjectionCache     = (*storage.RedisProjections)(nil)
	_ AnalyticsInterface  = (*AnalyticsService)(nil)
)
