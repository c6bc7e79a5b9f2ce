package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"qrdine/apperr"
	"qrdine/order-svc/internal/domain"
	"qrdine/pricing"
	"qrdine/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService keeps a guest's selections between page loads. Prices shown in
// the cart are informational; checkout reprices everything through Create.
type CartService struct {
	carts    CartStore
	menu     OrderRepository
	resolver *tenant.Resolver
	orders   OrderServiceInterface
	calc     pricing.Calculator
	logger   *zap.Logger
}

func NewCartService(carts CartStore, menu OrderRepository, resolver *tenant.Resolver, orders OrderServiceInterface,
	calc pricing.Calculator, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		carts:    carts,
		menu:     menu,
		resolver: resolver,
		orders:   orders,
		calc:     calc,
		logger:   logger,
	}
}

func (s *CartService) Get(ctx context.Context, cartID string) (*domain.CartView, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.view(cart)
}

// AddItem adds quantity of a menu item, merging with an existing line for the
// same item. The first item pins the cart to its hotel.
func (s *CartService) AddItem(ctx context.Context, cartID string, in domain.AddCartItemInput) (*domain.CartView, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 || in.Quantity > maxQuantity {
		return nil, apperr.Validation("quantity must be between 1 and %d", maxQuantity)
	}

	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	hotelSlug, err := cartHotel(cart, in.HotelSlug)
	if err != nil {
		return nil, err
	}
	hotel, err := s.resolver.Hotel(ctx, hotelSlug)
	if err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(in.MenuItemID); err != nil {
		return nil, apperr.Validation("unknown menu item %q", in.MenuItemID)
	}
	refs, err := s.menu.MenuItems(ctx, hotel.ID, []string{in.MenuItemID})
	if err != nil {
		return nil, fmt.Errorf("load menu item: %w", err)
	}
	if len(refs) == 0 || refs[0].HotelID != hotel.ID || !refs[0].Available {
		return nil, apperr.Validation("unknown menu item %q", in.MenuItemID)
	}
	ref := refs[0]

	instructions := strings.TrimSpace(in.Instructions)
	if i := findLine(cart, ref.ID); i >= 0 {
		line := &cart.Lines[i]
		if line.Quantity+in.Quantity > maxQuantity {
			return nil, apperr.Validation("quantity must be between 1 and %d", maxQuantity)
		}
		line.Quantity += in.Quantity
		line.Name, line.UnitPrice = ref.Name, ref.Price
		if instructions != "" {
			line.Instructions = instructions
		}
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{
			MenuItemID:   ref.ID,
			Name:         ref.Name,
			UnitPrice:    ref.Price,
			Quantity:     in.Quantity,
			Instructions: instructions,
		})
	}
	cart.HotelSlug = hotel.Slug
	return s.save(ctx, cart)
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateItem(ctx context.Context, cartID, menuItemID string, in domain.UpdateCartItemInput) (*domain.CartView, error) {
	if in.Quantity > maxQuantity {
		return nil, apperr.Validation("quantity must be between 1 and %d", maxQuantity)
	}
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	i := findLine(cart, menuItemID)
	if i < 0 {
		return nil, apperr.NotFound("item is not in the cart")
	}
	if in.Quantity <= 0 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		return s.save(ctx, cart)
	}
	cart.Lines[i].Quantity = in.Quantity
	if in.Instructions != nil {
		cart.Lines[i].Instructions = strings.TrimSpace(*in.Instructions)
	}
	return s.save(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, menuItemID string) (*domain.CartView, error) {
	return s.UpdateItem(ctx, cartID, menuItemID, domain.UpdateCartItemInput{})
}

func (s *CartService) SetGuest(ctx context.Context, cartID string, guest domain.GuestDetails) (*domain.CartView, error) {
	if err := validateGuest(guest); err != nil {
		return nil, err
	}
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.Guest = domain.GuestDetails{
		CustomerName: strings.TrimSpace(guest.CustomerName),
		RoomNumber:   strings.TrimSpace(guest.RoomNumber),
		Phone:        strings.TrimSpace(guest.Phone),
		Notes:        strings.TrimSpace(guest.Notes),
	}
	return s.save(ctx, cart)
}

// Checkout places an order from the cart and discards it.
func (s *CartService) Checkout(ctx context.Context, cartID string, in domain.CheckoutInput) (*domain.Order, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, apperr.Validation("cart is empty")
	}
	hotelSlug, err := cartHotel(cart, in.HotelSlug)
	if err != nil {
		return nil, err
	}

	items := make([]domain.LineItemInput, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, domain.LineItemInput{
			MenuItemID:   line.MenuItemID,
			Quantity:     line.Quantity,
			Instructions: line.Instructions,
		})
	}

	order, err := s.orders.Create(ctx, domain.CreateOrderInput{
		HotelSlug:    hotelSlug,
		TableSlug:    in.TableSlug,
		Items:        items,
		GuestDetails: cart.Guest,
	})
	if err != nil {
		return nil, err
	}

	if err := s.carts.DeleteCart(ctx, cart.ID); err != nil {
		s.logger.Warn("failed to clear cart after checkout", zap.String("cart_id", cart.ID), zap.Error(err))
	}
	return order, nil
}

func (s *CartService) load(ctx context.Context, cartID string) (*domain.Cart, error) {
	if _, err := uuid.Parse(cartID); err != nil {
		return nil, apperr.Validation("cart id must be a UUID")
	}
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		cart = &domain.Cart{ID: cartID, Lines: []domain.CartLine{}}
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart) (*domain.CartView, error) {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.view(cart)
}

func (s *CartService) view(cart *domain.Cart) (*domain.CartView, error) {
	lines := make([]pricing.Line, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, pricing.Line{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	totals, err := s.calc.Totals(lines)
	if err != nil {
		return nil, err
	}
	return &domain.CartView{Cart: cart, Subtotal: totals.Subtotal, Tax: totals.Tax, Total: totals.Total}, nil
}

func cartHotel(cart *domain.Cart, requested string) (string, error) {
	switch {
	case cart.HotelSlug == "" && requested == "":
		return "", apperr.Validation("hotelSlug is required")
	case cart.HotelSlug == "":
		return requested, nil
	case requested != "" && requested != cart.HotelSlug:
		return "", apperr.Validation("cart belongs to another hotel")
	default:
		return cart.HotelSlug, nil
	}
}

func findLine(cart *domain.Cart, menuItemID string) int {
	for i, line := range cart.Lines {
		if line.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}
