package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"qrdine/analytics-svc/internal/domain"
	"qrdine/apperr"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AnalyticsService struct {
	repository AnalyticsRepository
	cache      ProjectionCache
	logger     *zap.Logger
	now        func() time.Time
}

func NewAnalyticsService(repository AnalyticsRepository, cache ProjectionCache, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		repository: repository,
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
}

// Metrics assembles the dashboard for an already authorized hotel. Redis
// projections are preferred; Postgres answers whenever they are missing or
// unreachable.
func (s *AnalyticsService) Metrics(ctx context.Context, hotelID, period string) (*domain.DashboardMetrics, error) {
	var day *time.Time
	switch period {
	case "", domain.PeriodAllTime:
	case domain.PeriodToday:
		today := s.now().UTC().Truncate(24 * time.Hour)
		day = &today
	default:
		return nil, apperr.Validation("unknown period %q", period)
	}

	analytics, err := s.analytics(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.outstanding(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	trending, err := s.trending(ctx, hotelID, day)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardMetrics{
		Analytics:         *analytics,
		OutstandingOrders: outstanding,
		TrendingItems:     trending,
	}, nil
}

func (s *AnalyticsService) analytics(ctx context.Context, hotelID string) (*domain.HotelAnalytics, error) {
	analytics, err := s.repository.GetAnalytics(ctx, hotelID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.HotelAnalytics{
			HotelID:      hotelID,
			TotalRevenue: decimal.Zero,
			AvgRating:    decimal.Zero,
		}, nil
	}
	if err != nil {
		return nil, apperr.FromPostgres(err, "analytics not found")
	}
	return analytics, nil
}

func (s *AnalyticsService) outstanding(ctx context.Context, hotelID string) (int, error) {
	count, ok, err := s.cache.Outstanding(ctx, hotelID)
	if err != nil {
		s.logger.Warn("outstanding projection unavailable", zap.String("hotel_id", hotelID), zap.Error(err))
	}
	if err == nil && ok {
		return count, nil
	}
	count, err = s.repository.CountOutstanding(ctx, hotelID)
	if err != nil {
		return 0, apperr.FromPostgres(err, "hotel not found")
	}
	return count, nil
}

func (s *AnalyticsService) trending(ctx context.Context, hotelID string, day *time.Time) ([]domain.TrendingItem, error) {
	items, err := s.cache.Trending(ctx, hotelID, day, domain.TrendingLimit)
	if err != nil {
		s.logger.Warn("trending projection unavailable", zap.String("hotel_id", hotelID), zap.Error(err))
	}
	if err != nil || len(items) == 0 {
		items, err = s.repository.TopItems(ctx, hotelID, day, domain.TrendingLimit)
		if err != nil {
			return nil, apperr.FromPostgres(err, "hotel not found")
		}
	}
	if len(items) == 0 {
		return []domain.TrendingItem{}, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.MenuItemID
	}
	summaries, err := s.repository.MenuItems(ctx, hotelID, ids)
	if err != nil {
		return nil, apperr.FromPostgres(err, "hotel not found")
	}
	for i := range items {
		if summary, ok := summaries[items[i].MenuItemID]; ok {
			items[i].MenuItem = &summary
		}
	}
	return items, nil
}

// RatingDistribution counts ratings per score, always reporting all five.
func (s *AnalyticsService) RatingDistribution(ctx context.Context, hotelID string) (map[string]int, error) {
	counts, err := s.repository.RatingCounts(ctx, hotelID)
	if err != nil {
		return nil, apperr.FromPostgres(err, "hotel not found")
	}
	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for score, count := range counts {
		key := strconv.Itoa(score)
		if _, ok := distribution[key]; ok {
			distribution[key] = count
		}
	}
	return distribution, nil
}
