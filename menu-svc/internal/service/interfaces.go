package service

import (
	"context"

	"qrdine/menu-svc/internal/domain"
	"qrdine/tenant"
)

type HotelRepository interface {
	GetHotelBySlug(ctx context.Context, slug string) (*domain.Hotel, error)
}

type MenuRepository interface {
	ListCategories(ctx context.Context, hotelID string) ([]domain.MenuCategory, error)
	GetCategory(ctx context.Context, id string) (*domain.MenuCategory, error)
	CreateCategory(ctx context.Context, category *domain.MenuCategory) error
	ListMenuItems(ctx context.Context, hotelID string, availableOnly bool) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, hotelID, id string) (int64, error)
	UpdateMenuItemImage(ctx context.Context, hotelID, id, imageURL string) error
}

type TableRepository interface {
	ListTables(ctx context.Context, hotelID string) ([]domain.Table, error)
	GetTable(ctx context.Context, id string) (*domain.Table, error)
	CreateTable(ctx context.Context, table *domain.Table) error
	UpdateTable(ctx context.Context, table *domain.Table) error
}

type ProvisionRepository interface {
	ApplyPlan(ctx context.Context, plan *domain.ProvisionPlan) error
	UpsertTable(ctx context.Context, table *domain.Table) error
}

type PinHasher interface {
	Hash(pin string) (string, error)
	Compare(hash, pin string) error
}

type HotelServiceInterface interface {
	GetMenu(ctx context.Context, slug string) (*domain.HotelMenu, error)
	GetTable(ctx context.Context, hotelSlug, tableSlug string) (*tenant.Hotel, *tenant.Table, error)
	Authenticate(ctx context.Context, creds domain.Credentials) (*domain.Hotel, error)
}

type MenuServiceInterface interface {
	ListCategories(ctx context.Context, hotelID string) ([]domain.MenuCategory, error)
	CreateCategory(ctx context.Context, hotelID string, in domain.CategoryInput) (*domain.MenuCategory, error)
	ListItems(ctx context.Context, hotelID string) ([]domain.MenuItem, error)
	CreateItem(ctx context.Context, hotelID string, in domain.MenuItemInput) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, hotelID string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, hotelID, itemID string) error
	GetItem(ctx context.Context, hotelID, itemID string) (*domain.MenuItem, error)
	SetItemImage(ctx context.Context, hotelID, itemID, imageURL string) error
}

type TableServiceInterface interface {
	List(ctx context.Context, hotelID string) ([]domain.Table, error)
	Create(ctx context.Context, hotel *tenant.Hotel, in domain.TableInput) (*domain.Table, error)
	Rename(ctx context.Context, hotel *tenant.Hotel, patch domain.TablePatch) (*domain.Table, error)
	QRCode(ctx context.Context, hotel *tenant.Hotel, tableID string) ([]byte, error)
}

var (
	_ HotelServiceInterface = (*HotelService)(nil)
	_ MenuServiceInterface  = (*MenuService)(nil)
	_ TableServiceInterface = (*TableService)(nil)
)
