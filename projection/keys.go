// Package projection names the Redis structures agg-svc maintains for the
// dashboard and analytics-svc reads back.
package projection

import (
	"fmt"
	"time"
)

const (
	FieldOutstandingOrders = "outstanding_orders"
	FieldAvgRating         = "avg_rating"
	FieldReviewCount       = "review_count"
	FieldUpdatedAt         = "updated_at"

	// DailyRetention is how long per-day trending sets are kept.
	DailyRetention = 7 * 24 * time.Hour
)

// TrendingKey is the all-time sorted set of menu item ids scored by quantity ordered.
func TrendingKey(hotelID string) string {
	return "analytics:trending:" + hotelID
}

func DailyKey(day time.Time, hotelID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", day.UTC().Format("2006-01-02"), hotelID)
}

// DashboardKey is the hash holding the hotel's live dashboard counters.
func DashboardKey(hotelID string) string {
	return "dashboard:" + hotelID
}
