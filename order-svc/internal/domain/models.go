package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReady      Status = "READY"
	StatusServed     Status = "SERVED"
	StatusCompleted  Status = "COMPLETED"
)

// Statuses lists every status in lifecycle order. Staff may move an order to
// any of them from any other.
var Statuses = []Status{StatusPending, StatusInProgress, StatusReady, StatusServed, StatusCompleted}

func ParseStatus(s string) (Status, bool) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Statuses {
		if status == known {
			return status, true
		}
	}
	return "", false
}

type Order struct {
	ID           string          `json:"id"`
	HotelID      string          `json:"hotelId"`
	TableID      string          `json:"tableId"`
	TableName    string          `json:"tableName,omitempty"`
	Status       Status          `json:"status"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Notes        string          `json:"notes"`
	CustomerName string          `json:"customerName"`
	RoomNumber   string          `json:"roomNumber"`
	Phone        string          `json:"phone"`
	Items        []OrderItem     `json:"items"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
}

// GuestOrder is what the public order page shows. Contact details stay with staff.
type GuestOrder struct {
	ID          string          `json:"id"`
	TableName   string          `json:"tableName,omitempty"`
	Status      Status          `json:"status"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	Items       []OrderItem     `json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

func (o *Order) GuestView() GuestOrder {
	return GuestOrder{
		ID:          o.ID,
		TableName:   o.TableName,
		Status:      o.Status,
		Subtotal:    o.Subtotal,
		Tax:         o.Tax,
		Total:       o.Total,
		Items:       o.Items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		CompletedAt: o.CompletedAt,
	}
}

// OrderItem is a snapshot of a menu item taken when the order was placed.
type OrderItem struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"orderId"`
	MenuItemID   string          `json:"menuItemId"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	Instructions string          `json:"instructions"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}

type LineItemInput struct {
	MenuItemID   string `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions"`
}

type GuestDetails struct {
	CustomerName string `json:"customerName"`
	RoomNumber   string `json:"roomNumber"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

type CreateOrderInput struct {
	HotelSlug string          `json:"hotelSlug"`
	TableSlug string          `json:"tableSlug"`
	Items     []LineItemInput `json:"items"`
	GuestDetails
}

type CreateOrderResult struct {
	OrderID string          `json:"orderId"`
	Status  Status          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

// MenuItemRef is the part of a menu item an order needs to price a line.
type MenuItemRef struct {
	ID        string
	HotelID   string
	Name      string
	Price     decimal.Decimal
	Available bool
}

type StatusUpdate struct {
	Status string `json:"status"`
}

// StatusChange describes a committed transition.
type StatusChange struct {
	Order           *Order
	Previous        Status
	FirstCompletion bool
}

type ListFilter struct {
	Status Status
	Limit  int
}

// Cart is the guest's working order. It is kept in Redis and expires on its own.
type Cart struct {
	ID        string       `json:"id"`
	HotelSlug string       `json:"hotelSlug"`
	Lines     []CartLine   `json:"lines"`
	Guest     GuestDetails `json:"guest"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type CartLine struct {
	MenuItemID   string          `json:"menuItemId"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	Instructions string          `json:"instructions"`
}

type CartView struct {
	*Cart
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type AddCartItemInput struct {
	HotelSlug    string `json:"hotelSlug"`
	MenuItemID   string `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions"`
}

type UpdateCartItemInput struct {
	Quantity     int     `json:"quantity"`
	Instructions *string `json:"instructions"`
}

type CheckoutInput struct {
	HotelSlug string `json:"hotelSlug"`
	TableSlug string `json:"tableSlug"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type KafkaMessage struct {
	Type           string          `json:"type"`
	HotelID        string          `json:"hotel_id"`
	OrderID        string          `json:"order_id"`
	Status         Status          `json:"status"`
	PreviousStatus Status          `json:"previous_status,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Items          []EventItem     `json:"items,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}
