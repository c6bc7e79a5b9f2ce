package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"qrdine/apperr"
	"qrdine/menu-svc/internal/domain"
	"qrdine/tenant"

	"golang.org/x/crypto/bcrypt"
)

var errInvalidLogin = apperr.Unauthorized("invalid hotel or PIN")

type HotelService struct {
	hotels   HotelRepository
	menu     MenuRepository
	tables   TableRepository
	resolver *tenant.Resolver
	hasher   PinHasher
}

func NewHotelService(hotels HotelRepository, menu MenuRepository, tables TableRepository, resolver *tenant.Resolver, hasher PinHasher) *HotelService {
	return &HotelService{
		hotels:   hotels,
		menu:     menu,
		tables:   tables,
		resolver: resolver,
		hasher:   hasher,
	}
}

// GetMenu returns the guest view of a hotel: every category with its
// available items, and the hotel's tables.
func (s *HotelService) GetMenu(ctx context.Context, slug string) (*domain.HotelMenu, error) {
	hotel, err := s.hotels.GetHotelBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.FromPostgres(err, "hotel not found")
	}

	categories, err := s.menu.ListCategories(ctx, hotel.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	items, err := s.menu.ListMenuItems(ctx, hotel.ID, true)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	tables, err := s.tables.ListTables(ctx, hotel.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	byCategory := make(map[string][]domain.MenuItem, len(categories))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	menu := &domain.HotelMenu{
		Hotel:      hotel,
		Categories: make([]domain.CategoryMenu, 0, len(categories)),
		Tables:     tables,
	}
	if menu.Tables == nil {
		menu.Tables = []domain.Table{}
	}
	for _, category := range categories {
		categoryItems := byCategory[category.ID]
		if categoryItems == nil {
			categoryItems = []domain.MenuItem{}
		}
		menu.Categories = append(menu.Categories, domain.CategoryMenu{MenuCategory: category, Items: categoryItems})
	}
	return menu, nil
}

func (s *HotelService) GetTable(ctx context.Context, hotelSlug, tableSlug string) (*tenant.Hotel, *tenant.Table, error) {
	return s.resolver.Table(ctx, hotelSlug, tableSlug)
}

// Authenticate checks a hotel's shared admin PIN. Unknown hotels and wrong
// PINs are indistinguishable to the caller.
func (s *HotelService) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.Hotel, error) {
	slug := strings.TrimSpace(creds.Slug)
	if slug == "" || creds.PIN == "" {
		return nil, apperr.Validation("slug and pin are required")
	}

	hotel, err := s.hotels.GetHotelBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errInvalidLogin
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.hasher.Compare(hotel.PinHash, creds.PIN); err != nil {
		return nil, errInvalidLogin
	}
	return hotel, nil
}

// BcryptHasher stores admin PINs as bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(pin string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h BcryptHasher) Compare(hash, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
}
