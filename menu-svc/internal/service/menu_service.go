package service

import (
	"context"
	"strings"

	"qrdine/apperr"
	"qrdine/menu-svc/internal/domain"
	"qrdine/pricing"
	"qrdine/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) ListCategories(ctx context.Context, hotelID string) ([]domain.MenuCategory, error) {
	categories, err := s.repo.ListCategories(ctx, hotelID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

func (s *MenuService) CreateCategory(ctx context.Context, hotelID string, in domain.CategoryInput) (*domain.MenuCategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	category := &domain.MenuCategory{ID: uuid.NewString(), HotelID: hotelID, Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, apperr.FromPostgres(err, "category name already exists")
	}
	return category, nil
}

// ListItems returns every item of the hotel, including unavailable ones.
func (s *MenuService) ListItems(ctx context.Context, hotelID string) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx, hotelID, false)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *MenuService) CreateItem(ctx context.Context, hotelID string, in domain.MenuItemInput) (*domain.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("item name is required")
	}
	if in.Price == nil {
		return nil, apperr.Validation("price is required")
	}
	if err := validatePrice(*in.Price); err != nil {
		return nil, err
	}
	if err := s.ownCategory(ctx, hotelID, in.CategoryID); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		ID:          uuid.NewString(),
		HotelID:     hotelID,
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       *in.Price,
		Available:   true,
		ImageURL:    in.ImageURL,
	}
	if in.Available != nil {
		item.Available = *in.Available
	}

	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return nil, apperr.FromPostgres(err, "item name already exists")
	}
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, hotelID string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	if _, err := uuid.Parse(patch.ID); patch.ID != "" && err != nil {
		return nil, apperr.Validation("item id is malformed")
	}
	item, err := s.ownItem(ctx, hotelID, patch.ID)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil && *patch.CategoryID != item.CategoryID {
		if err := s.ownCategory(ctx, hotelID, *patch.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperr.Validation("item name is required")
		}
		item.Name = name
	}
	if patch.Description != nil {
		item.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, err
		}
		item.Price = *patch.Price
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return nil, apperr.FromPostgres(err, "item name already exists")
	}
	return item, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, hotelID, itemID string) error {
	if _, err := s.ownItem(ctx, hotelID, itemID); err != nil {
		return err
	}
	rows, err := s.repo.DeleteMenuItem(ctx, hotelID, itemID)
	if err != nil {
		return apperr.FromPostgres(err, "item has been ordered and cannot be deleted; mark it unavailable instead")
	}
	if rows == 0 {
		return apperr.NotFound("menu item not found")
	}
	return nil
}

// GetItem returns an item of the hotel. Items of other hotels are Forbidden.
func (s *MenuService) GetItem(ctx context.Context, hotelID, itemID string) (*domain.MenuItem, error) {
	return s.ownItem(ctx, hotelID, itemID)
}

func (s *MenuService) SetItemImage(ctx context.Context, hotelID, itemID, imageURL string) error {
	if _, err := s.ownItem(ctx, hotelID, itemID); err != nil {
		return err
	}
	if err := s.repo.UpdateMenuItemImage(ctx, hotelID, itemID, imageURL); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *MenuService) ownItem(ctx context.Context, hotelID, itemID string) (*domain.MenuItem, error) {
	if itemID == "" {
		return nil, apperr.Validation("item id is required")
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, apperr.NotFound("menu item not found")
	}
	item, err := s.repo.GetMenuItem(ctx, itemID)
	if err != nil {
		return nil, apperr.FromPostgres(err, "menu item not found")
	}
	if err := tenant.Authorize(hotelID, item.HotelID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) ownCategory(ctx context.Context, hotelID, categoryID string) error {
	if categoryID == "" {
		return apperr.Validation("category is required")
	}
	if _, err := uuid.Parse(categoryID); err != nil {
		return apperr.Validation("category id is malformed")
	}
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return apperr.FromPostgres(err, "category not found")
	}
	return tenant.Authorize(hotelID, category.HotelID)
}

func validatePrice(price decimal.Decimal) error {
	if !pricing.ValidPrice(price) {
		return apperr.Validation("price must be a non-negative amount with at most 2 decimals")
	}
	return nil
}
