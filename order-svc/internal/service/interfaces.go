package service

import (
	"context"

	"qrdine/order-svc/internal/domain"
	"qrdine/order-svc/internal/storage"
)

type OrderRepository interface {
	MenuItems(ctx context.Context, hotelID string, ids []string) ([]domain.MenuItemRef, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, hotelID string, filter domain.ListFilter) ([]domain.Order, error)
	TransitionStatus(ctx context.Context, id string, next domain.Status, authorize func(*domain.Order) error) (*domain.StatusChange, error)
}

type CartStore interface {
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, id string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, msg domain.KafkaMessage) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, hotelID string, filter domain.ListFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, sessionHotelID, orderID, status string) (*domain.Order, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, cartID string) (*domain.CartView, error)
	AddItem(ctx context.Context, cartID string, in domain.AddCartItemInput) (*domain.CartView, error)
	UpdateItem(ctx context.Context, cartID, menuItemID string, in domain.UpdateCartItemInput) (*domain.CartView, error)
	RemoveItem(ctx context.Context, cartID, menuItemID string) (*domain.CartView, error)
	SetGuest(ctx context.Context, cartID string, guest domain.GuestDetails) (*domain.CartView, error)
	Checkout(ctx context.Context, cartID string, in domain.CheckoutInput) (*domain.Order, error)
}

var (
	_ OrderRepository       = (*storage.PostgresRepository)(nil)
	_ CartStore             = (*storage.RedisCartStore)(nil)
	_ OrderPublisher        = (*storage.KafkaPublisher)(nil)
	_ OrderServiceInterface = (*OrderService)(nil)
	_ CartServiceInterface  = (*CartService)(nil)
)
