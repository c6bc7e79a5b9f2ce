package service

import (
	"context"
	"fmt"
	"strings"

	"qrdine/apperr"
	"qrdine/menu-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// ProvisionService creates or updates hotels from seed documents. Applying
// the same seed twice leaves the database unchanged apart from timestamps
// and the PIN hash salt.
type ProvisionService struct {
	repo   ProvisionRepository
	hotels HotelRepository
	hasher PinHasher
}

func NewProvisionService(repo ProvisionRepository, hotels HotelRepository, hasher PinHasher) *ProvisionService {
	return &ProvisionService{repo: repo, hotels: hotels, hasher: hasher}
}

func (s *ProvisionService) Seed(ctx context.Context, file domain.SeedFile) ([]domain.Hotel, error) {
	plans := make([]*domain.ProvisionPlan, 0, len(file.Hotels))
	for i, seed := range file.Hotels {
		plan, err := s.Plan(seed)
		if err != nil {
			return nil, fmt.Errorf("hotel #%d: %w", i+1, err)
		}
		plans = append(plans, plan)
	}

	hotels := make([]domain.Hotel, 0, len(plans))
	for _, plan := range plans {
		if err := s.repo.ApplyPlan(ctx, plan); err != nil {
			return nil, apperr.FromPostgres(err, fmt.Sprintf("hotel %q conflicts with existing data", plan.Hotel.Slug))
		}
		hotels = append(hotels, plan.Hotel)
	}
	return hotels, nil
}

// Plan validates a seed and resolves it into rows. IDs are fresh; the
// repository replaces them with existing ones on conflict.
func (s *ProvisionService) Plan(seed domain.HotelSeed) (*domain.ProvisionPlan, error) {
	name := strings.TrimSpace(seed.Name)
	if name == "" {
		return nil, apperr.Validation("hotel name is required")
	}
	hotelSlug := slug.Make(seed.Slug)
	if hotelSlug == "" {
		hotelSlug = slug.Make(name)
	}
	if seed.PIN == "" {
		return nil, apperr.Validation("hotel %q: pin is required", hotelSlug)
	}
	pinHash, err := s.hasher.Hash(seed.PIN)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	plan := &domain.ProvisionPlan{
		Hotel: domain.Hotel{
			ID:              uuid.NewString(),
			Name:            name,
			Slug:            hotelSlug,
			Description:     seed.Description,
			LogoURL:         seed.LogoURL,
			GoogleReviewURL: seed.GoogleReviewURL,
			PinHash:         pinHash,
		},
	}

	itemNames := make(map[string]bool)
	for _, categorySeed := range seed.Categories {
		categoryName := strings.TrimSpace(categorySeed.Name)
		if categoryName == "" {
			return nil, apperr.Validation("hotel %q: category name is required", hotelSlug)
		}
		category := domain.ProvisionCategory{
			Category: domain.MenuCategory{ID: uuid.NewString(), HotelID: plan.Hotel.ID, Name: categoryName},
		}
		for _, itemSeed := range categorySeed.Items {
			item, err := planItem(hotelSlug, itemSeed)
			if err != nil {
				return nil, err
			}
			if itemNames[item.Name] {
				return nil, apperr.Validation("hotel %q: item %q listed twice", hotelSlug, item.Name)
			}
			itemNames[item.Name] = true
			item.HotelID = plan.Hotel.ID
			item.CategoryID = category.Category.ID
			category.Items = append(category.Items, item)
		}
		plan.Categories = append(plan.Categories, category)
	}

	for _, tableName := range seed.Tables {
		tableName = strings.TrimSpace(tableName)
		if tableName == "" {
			return nil, apperr.Validation("hotel %q: table name is required", hotelSlug)
		}
		plan.Tables = append(plan.Tables, domain.Table{
			ID:      uuid.NewString(),
			HotelID: plan.Hotel.ID,
			Name:    tableName,
			QRSlug:  TableSlug(hotelSlug, tableName),
		})
	}
	return plan, nil
}

// AddTable provisions a single table, reusing it when it already exists.
func (s *ProvisionService) AddTable(ctx context.Context, hotelSlug, name string) (*domain.Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("table name is required")
	}
	hotel, err := s.hotels.GetHotelBySlug(ctx, hotelSlug)
	if err != nil {
		return nil, apperr.FromPostgres(err, "hotel not found")
	}

	table := &domain.Table{
		ID:      uuid.NewString(),
		HotelID: hotel.ID,
		Name:    name,
		QRSlug:  TableSlug(hotel.Slug, name),
	}
	if err := s.repo.UpsertTable(ctx, table); err != nil {
		return nil, apperr.FromPostgres(err, "table slug is taken by another hotel")
	}
	return table, nil
}

func planItem(hotelSlug string, seed domain.ItemSeed) (domain.MenuItem, error) {
	name := strings.TrimSpace(seed.Name)
	if name == "" {
		return domain.MenuItem{}, apperr.Validation("hotel %q: item name is required", hotelSlug)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(seed.Price))
	if err != nil {
		return domain.MenuItem{}, apperr.Validation("hotel %q: item %q: invalid price %q", hotelSlug, name, seed.Price)
	}
	if err := validatePrice(price); err != nil {
		return domain.MenuItem{}, apperr.Validation("hotel %q: item %q: %v", hotelSlug, name, err)
	}

	item := domain.MenuItem{
		ID:          uuid.NewString(),
		Name:        name,
		Description: seed.Description,
		Price:       price,
		Available:   true,
		ImageURL:    seed.ImageURL,
	}
	if seed.Available != nil {
		item.Available = *seed.Available
	}
	return item, nil
}
