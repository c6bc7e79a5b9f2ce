package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"qrdine/analytics-svc/internal/domain"
	"qrdine/analytics-svc/internal/mocks"
	"qrdine/analytics-svc/internal/service"
	"qrdine/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var noDay = (*time.Time)(nil)

func someDay() interface{} {
	return mock.MatchedBy(func(day *time.Time) bool { return day != nil })
}

func eggsSummary() map[string]domain.MenuItemSummary {
	return map[string]domain.MenuItemSummary{
		"i-1": {Name: "Eggs Benedict", Price: money("12.50")},
	}
}

func TestAnalyticsService_Metrics(t *testing.T) {
	tests := []struct {
		name         string
		period       string
		prepareMocks func(*mocks.AnalyticsRepository, *mocks.ProjectionCache)
		check        func(*testing.T, *domain.DashboardMetrics)
		expectedKind apperr.Kind
	}{
		{
			name: "served from projections",
			prepareMocks: func(repo *mocks.AnalyticsRepository, cache *mocks.ProjectionCache) {
				repo.On("GetAnalytics", ctx, "h-a").Return(&domain.HotelAnalytics{
					HotelID: "h-a", TotalOrders: 4, TotalRevenue: money("120.00"), AvgRating: money("4.50"), ReviewCount: 2,
				}, nil).Once()
				cache.On("Outstanding", ctx, "h-a").Return(3, true, nil).Once()
				cache.On("Trending", ctx, "h-a", noDay, domain.TrendingLimit).
					Return([]domain.TrendingItem{{MenuItemID: "i-1", TotalQuantity: 7}, {MenuItemID: "gone", TotalQuantity: 1}}, nil).Once()
				repo.On("MenuItems", ctx, "h-a", []string{"i-1", "gone"}).Return(eggsSummary(), nil).Once()
			},
			check: func(t *testing.T, m *domain.DashboardMetrics) {
				assert.Equal(t, 4, m.Analytics.TotalOrders)
				assert.Equal(t, 3, m.OutstandingOrders)
				require.Len(t, m.TrendingItems, 2)
				assert.Equal(t, "Eggs Benedict", m.TrendingItems[0].MenuItem.Name)
				assert.Nil(t, m.TrendingItems[1].MenuItem)
			},
		},
		{
			name: "falls back to postgres",
			prepareMocks: func(repo *mocks.AnalyticsRepository, cache *mocks.ProjectionCache) {
				repo.On("GetAnalytics", ctx, "h-a").Return(nil, sql.ErrNoRows).Once()
				cache.On("Outstanding", ctx, "h-a").Return(0, false, errors.New("redis down")).Once()
				repo.On("CountOutstanding", ctx, "h-a").Return(2, nil).Once()
				cache.On("Trending", ctx, "h-a", noDay, domain.TrendingLimit).Return(nil, nil).Once()
				repo.On("TopItems", ctx, "h-a", noDay, domain.TrendingLimit).
					Return([]domain.TrendingItem{{MenuItemID: "i-1", TotalQuantity: 2}}, nil).Once()
				repo.On("MenuItems", ctx, "h-a", []string{"i-1"}).Return(eggsSummary(), nil).Once()
			},
			check: func(t *testing.T, m *domain.DashboardMetrics) {
				assert.Equal(t, "h-a", m.Analytics.HotelID)
				assert.Equal(t, 0, m.Analytics.TotalOrders)
				assert.True(t, m.Analytics.TotalRevenue.IsZero())
				assert.Equal(t, 2, m.OutstandingOrders)
				assert.Equal(t, 2, m.TrendingItems[0].TotalQuantity)
			},
		},
		{
			name:   "today reads the daily set",
			period: domain.PeriodToday,
			prepareMocks: func(repo *mocks.AnalyticsRepository, cache *mocks.ProjectionCache) {
				repo.On("GetAnalytics", ctx, "h-a").Return(&domain.HotelAnalytics{HotelID: "h-a"}, nil).Once()
				cache.On("Outstanding", ctx, "h-a").Return(0, true, nil).Once()
				cache.On("Trending", ctx, "h-a", someDay(), domain.TrendingLimit).Return(nil, nil).Once()
				repo.On("TopItems", ctx, "h-a", someDay(), domain.TrendingLimit).Return(nil, nil).Once()
			},
			check: func(t *testing.T, m *domain.DashboardMetrics) {
				assert.NotNil(t, m.TrendingItems)
				assert.Empty(t, m.TrendingItems)
			},
		},
		{
			name:         "unknown period",
			period:       "fortnight",
			prepareMocks: func(*mocks.AnalyticsRepository, *mocks.ProjectionCache) {},
			expectedKind: apperr.KindValidation,
		},
		{
			name: "postgres failure",
			prepareMocks: func(repo *mocks.AnalyticsRepository, cache *mocks.ProjectionCache) {
				repo.On("GetAnalytics", ctx, "h-a").Return(nil, errors.New("connection reset")).Once()
			},
			expectedKind: apperr.KindInternal,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewAnalyticsRepository(t)
			cache := mocks.NewProjectionCache(t)
			testCase.prepareMocks(repo, cache)
			svc := service.NewAnalyticsService(repo, cache, nil)

			metrics, err := svc.Metrics(ctx, "h-a", testCase.period)

			if testCase.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, testCase.expectedKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			testCase.check(t, metrics)
		})
	}
}

func TestAnalyticsService_RatingDistribution(t *testing.T) {
	repo := mocks.NewAnalyticsRepository(t)
	svc := service.NewAnalyticsService(repo, mocks.NewProjectionCache(t), nil)

	repo.On("RatingCounts", ctx, "h-a").Return(map[int]int{4: 3, 5: 1}, nil).Once()

	distribution, err := svc.RatingDistribution(ctx, "h-a")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 3, "5": 1}, distribution)
}
