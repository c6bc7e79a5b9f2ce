package tests

import (
	"testing"
	"time"

	"qrdine/agg-svc/internal/domain"
	"qrdine/agg-svc/internal/storage"
	"qrdine/projection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFixture struct {
	store *storage.Store
	sql   sqlmock.Sqlmock
	redis *miniredis.Miniredis
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &storeFixture{store: storage.NewStore(db, client), sql: mock, redis: mr}
}

func TestStore_AddTrendingAccumulatesQuantity(t *testing.T) {
	f := newStoreFixture(t)
	day := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)

	require.NoError(t, f.store.AddTrending(ctx, "h-a", day, []domain.EventItem{
		{MenuItemID: "i-1", Quantity: 2},
		{MenuItemID: "i-2", Quantity: 1},
	}))
	require.NoError(t, f.store.AddTrending(ctx, "h-a", day, []domain.EventItem{
		{MenuItemID: "i-1", Quantity: 3},
		{MenuItemID: "", Quantity: 9},
	}))

	score, err := f.redis.ZScore(projection.TrendingKey("h-a"), "i-1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)

	members, err := f.redis.ZMembers(projection.DailyKey(day, "h-a"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"i-1", "i-2"}, members)
	assert.Equal(t, projection.DailyRetention, f.redis.TTL(projection.DailyKey(day, "h-a")))
	assert.False(t, f.redis.Exists(projection.TrendingKey("h-b")))
}

func TestStore_RefreshOutstanding(t *testing.T) {
	f := newStoreFixture(t)

	f.sql.ExpectQuery("FROM orders WHERE hotel_id = \\$1 AND status <> 'COMPLETED'").
		WithArgs("h-a").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, f.store.RefreshOutstanding(ctx, "h-a"))

	assert.Equal(t, "3", f.redis.HGet(projection.DashboardKey("h-a"), projection.FieldOutstandingOrders))
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestStore_RefreshRatings(t *testing.T) {
	tests := []struct {
		name          string
		rows          *sqlmock.Rows
		expectedAvg   string
		expectedCount string
	}{
		{
			name:          "mirrors hotel analytics",
			rows:          sqlmock.NewRows([]string{"avg_rating", "review_count"}).AddRow("4.50", 2),
			expectedAvg:   "4.50",
			expectedCount: "2",
		},
		{
			name:          "hotel without analytics",
			rows:          sqlmock.NewRows([]string{"avg_rating", "review_count"}),
			expectedAvg:   "0.00",
			expectedCount: "0",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newStoreFixture(t)
			f.sql.ExpectQuery("FROM hotel_analytics").WithArgs("h-a").WillReturnRows(testCase.rows)

			require.NoError(t, f.store.RefreshRatings(ctx, "h-a"))

			key := projection.DashboardKey("h-a")
			assert.Equal(t, testCase.expectedAvg, f.redis.HGet(key, projection.FieldAvgRating))
			assert.Equal(t, testCase.expectedCount, f.redis.HGet(key, projection.FieldReviewCount))
			assert.NoError(t, f.sql.ExpectationsWereMet())
		})
	}
}
