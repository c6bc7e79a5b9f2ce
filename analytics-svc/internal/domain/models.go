package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PeriodAllTime = "all"
	PeriodToday   = "today"

	TrendingLimit = 5
)

// HotelAnalytics mirrors the hotel_analytics row. A hotel that has never been
// credited is reported with every counter at zero.
type HotelAnalytics struct {
	HotelID      string          `json:"hotelId"`
	TotalOrders  int             `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	AvgRating    decimal.Decimal `json:"avgRating"`
	ReviewCount  int             `json:"reviewCount"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}

type MenuItemSummary struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type TrendingItem struct {
	MenuItemID    string           `json:"menuItemId"`
	TotalQuantity int              `json:"totalQuantity"`
	MenuItem      *MenuItemSummary `json:"menuItem,omitempty"`
}

type DashboardMetrics struct {
	Analytics         HotelAnalytics `json:"analytics"`
	OutstandingOrders int            `json:"outstandingOrders"`
	TrendingItems     []TrendingItem `json:"trendingItems"`
}
