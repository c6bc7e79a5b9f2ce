package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"qrdine/apperr"
	"qrdine/order-svc/internal/domain"
	"qrdine/pricing"
	"qrdine/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxQuantity      = 99
	maxNotesLength   = 500
	defaultListLimit = 50
	maxListLimit     = 200
)

type OrderService struct {
	repo      OrderRepository
	resolver  *tenant.Resolver
	publisher OrderPublisher
	calc      pricing.Calculator
	logger    *zap.Logger
}

func NewOrderService(repo OrderRepository, resolver *tenant.Resolver, publisher OrderPublisher,
	calc pricing.Calculator, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		calc:      calc,
		logger:    logger,
	}
}

// Create prices the submitted lines from the hotel's current menu and stores
// the order. Client-side totals are never trusted.
func (s *OrderService) Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}
	if err := validateGuest(in.GuestDetails); err != nil {
		return nil, err
	}

	hotel, table, err := s.resolver.Table(ctx, in.HotelSlug, in.TableSlug)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(in.Items))
	for _, line := range in.Items {
		if line.Quantity < 1 || line.Quantity > maxQuantity {
			return nil, apperr.Validation("quantity must be between 1 and %d", maxQuantity)
		}
		if _, err := uuid.Parse(line.MenuItemID); err != nil {
			return nil, apperr.Validation("unknown menu item %q", line.MenuItemID)
		}
		ids = append(ids, line.MenuItemID)
	}

	refs, err := s.repo.MenuItems(ctx, hotel.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	byID := make(map[string]domain.MenuItemRef, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		HotelID:      hotel.ID,
		TableID:      table.ID,
		TableName:    table.Name,
		Status:       domain.StatusPending,
		Notes:        strings.TrimSpace(in.Notes),
		CustomerName: strings.TrimSpace(in.CustomerName),
		RoomNumber:   strings.TrimSpace(in.RoomNumber),
		Phone:        strings.TrimSpace(in.Phone),
	}

	lines := make([]pricing.Line, 0, len(in.Items))
	for _, line := range in.Items {
		ref, ok := byID[line.MenuItemID]
		if !ok || ref.HotelID != hotel.ID || !ref.Available {
			return nil, apperr.Validation("unknown menu item %q", line.MenuItemID)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:           uuid.NewString(),
			OrderID:      order.ID,
			MenuItemID:   ref.ID,
			Name:         ref.Name,
			UnitPrice:    ref.Price,
			Quantity:     line.Quantity,
			Instructions: strings.TrimSpace(line.Instructions),
			LineTotal:    pricing.LineTotal(ref.Price, line.Quantity),
		})
		lines = append(lines, pricing.Line{UnitPrice: ref.Price, Quantity: line.Quantity})
	}

	totals, err := s.calc.Totals(lines)
	if err != nil {
		return nil, err
	}
	order.Subtotal, order.Tax, order.Total = totals.Subtotal, totals.Tax, totals.Total

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, apperr.FromPostgres(err, "order could not be placed")
	}
	ordersCreated.Inc()
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("hotel_id", hotel.ID),
		zap.String("total", order.Total.StringFixed(2)))

	s.publish(ctx, domain.KafkaMessage{
		Type:    domain.EventOrderCreated,
		HotelID: order.HotelID,
		OrderID: order.ID,
		Status:  order.Status,
		Total:   order.Total,
		Items:   eventItems(order.Items),
	})
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.NotFound("order not found")
	}
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, apperr.FromPostgres(err, "order not found")
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, hotelID string, filter domain.ListFilter) ([]domain.Order, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}
	orders, err := s.repo.ListOrders(ctx, hotelID, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// UpdateStatus moves an order to any status. The storage layer locks the row
// so a concurrent transition cannot credit the same completion twice.
func (s *OrderService) UpdateStatus(ctx context.Context, sessionHotelID, orderID, status string) (*domain.Order, error) {
	next, ok := domain.ParseStatus(status)
	if !ok {
		return nil, apperr.Validation("unknown status %q", status)
	}
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, apperr.NotFound("order not found")
	}

	change, err := s.repo.TransitionStatus(ctx, orderID, next, func(order *domain.Order) error {
		return tenant.Authorize(sessionHotelID, order.HotelID)
	})
	if err != nil {
		return nil, apperr.FromPostgres(err, "order not found")
	}
	statusTransitions.WithLabelValues(string(next)).Inc()
	s.logger.Info("order status changed",
		zap.String("order_id", orderID),
		zap.String("from", string(change.Previous)),
		zap.String("to", string(next)),
		zap.Bool("first_completion", change.FirstCompletion))

	s.publish(ctx, domain.KafkaMessage{
		Type:           domain.EventOrderStatusChanged,
		HotelID:        change.Order.HotelID,
		OrderID:        change.Order.ID,
		Status:         next,
		PreviousStatus: change.Previous,
		Total:          change.Order.Total,
	})
	return change.Order, nil
}

// publish is best effort; the order is already committed.
func (s *OrderService) publish(ctx context.Context, msg domain.KafkaMessage) {
	if s.publisher == nil {
		return
	}
	msg.Timestamp = time.Now().UTC()
	if err := s.publisher.PublishOrderEvent(ctx, msg); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("type", msg.Type),
			zap.String("order_id", msg.OrderID),
			zap.Error(err))
	}
}

func validateGuest(guest domain.GuestDetails) error {
	if utf8.RuneCountInString(guest.Notes) > maxNotesLength {
		return apperr.Validation("notes must be at most %d characters", maxNotesLength)
	}
	return nil
}

func eventItems(items []domain.OrderItem) []domain.EventItem {
	out := make([]domain.EventItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.EventItem{MenuItemID: item.MenuItemID, Name: item.Name, Quantity: item.Quantity})
	}
	return out
}
