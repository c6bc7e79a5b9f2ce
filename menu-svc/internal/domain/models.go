package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Hotel struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	LogoURL         string    `json:"logoUrl"`
	GoogleReviewURL string    `json:"googleReviewUrl"`
	PinHash         string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}

type MenuCategory struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type MenuItem struct {
	ID          string          `json:"id"`
	HotelID     string          `json:"hotelId"`
	CategoryID  string          `json:"categoryId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Table struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Name      string    `json:"name"`
	QRSlug    string    `json:"qrSlug"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryMenu is a category with the items guests can currently order.
type CategoryMenu struct {
	MenuCategory
	Items []MenuItem `json:"items"`
}

// HotelMenu is the public view of a hotel. Analytics never appear here.
type HotelMenu struct {
	Hotel      *Hotel         `json:"hotel"`
	Categories []CategoryMenu `json:"categories"`
	Tables     []Table        `json:"tables"`
}

type Credentials struct {
	Slug string `json:"slug"`
	PIN  string `json:"pin"`
}

type CategoryInput struct {
	Name string `json:"name"`
}

type MenuItemInput struct {
	CategoryID  string           `json:"categoryId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Available   *bool            `json:"available"`
	ImageURL    string           `json:"imageUrl"`
}

// MenuItemPatch carries only the fields being changed.
type MenuItemPatch struct {
	ID          string           `json:"id"`
	CategoryID  *string          `json:"categoryId"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Available   *bool            `json:"available"`
}

type TableInput struct {
	Name string `json:"name"`
}

type TablePatch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeedFile is the provisioning document read by the provision command.
type SeedFile struct {
	Hotels []HotelSeed `yaml:"hotels"`
}

type HotelSeed struct {
	Name            string         `yaml:"name"`
	Slug            string         `yaml:"slug"`
	Description     string         `yaml:"description"`
	LogoURL         string         `yaml:"logo_url"`
	GoogleReviewURL string         `yaml:"google_review_url"`
	PIN             string         `yaml:"pin"`
	Categories      []CategorySeed `yaml:"categories"`
	Tables          []string       `yaml:"tables"`
}

type CategorySeed struct {
	Name  string     `yaml:"name"`
	Items []ItemSeed `yaml:"items"`
}

type ItemSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Available   *bool  `yaml:"available"`
	ImageURL    string `yaml:"image_url"`
}

// ProvisionPlan is a validated seed ready to be upserted in one transaction.
type ProvisionPlan struct {
	Hotel      Hotel
	Categories []ProvisionCategory
	Tables     []Table
}

type ProvisionCategory struct {
	Category MenuCategory
	Items    []MenuItem
}
