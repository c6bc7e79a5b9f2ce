package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventNewRating          = "new_rating"
)

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// KafkaMessage is the union of every event published on the hotel events
// topic; fields a given type does not use are left empty.
type KafkaMessage struct {
	Type           string          `json:"type"`
	HotelID        string          `json:"hotel_id"`
	OrderID        string          `json:"order_id"`
	Status         string          `json:"status,omitempty"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Items          []EventItem     `json:"items,omitempty"`
	Score          int             `json:"score,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}
