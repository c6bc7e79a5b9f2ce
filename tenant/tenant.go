// Package tenant resolves public slugs to hotels and tables and enforces that
// no request ever reads or writes across a hotel boundary.
package tenant

import (
	"context"
	"database/sql"

	"qrdine/apperr"
)

type Hotel struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	LogoURL         string `json:"logoUrl,omitempty"`
	GoogleReviewURL string `json:"googleReviewUrl,omitempty"`
}

type Table struct {
	ID      string `json:"id"`
	HotelID string `json:"hotelId"`
	Name    string `json:"name"`
	QRSlug  string `json:"qrSlug"`
}

// Store looks entities up by their public keys. Missing rows are reported
// as sql.ErrNoRows.
type Store interface {
	HotelBySlug(ctx context.Context, slug string) (*Hotel, error)
	TableBySlug(ctx context.Context, qrSlug string) (*Table, error)
}

type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Hotel(ctx context.Context, slug string) (*Hotel, error) {
	if slug == "" {
		return nil, apperr.NotFound("hotel not found")
	}
	hotel, err := r.store.HotelBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.FromPostgres(err, "hotel not found")
	}
	return hotel, nil
}

// Table resolves a guest-facing table slug under the hotel named in the URL.
// A slug that belongs to another hotel is reported exactly like an unknown one.
func (r *Resolver) Table(ctx context.Context, hotelSlug, tableSlug string) (*Hotel, *Table, error) {
	hotel, err := r.Hotel(ctx, hotelSlug)
	if err != nil {
		return nil, nil, err
	}
	if tableSlug == "" {
		return nil, nil, apperr.NotFound("table not found")
	}
	table, err := r.store.TableBySlug(ctx, tableSlug)
	if err != nil {
		return nil, nil, apperr.FromPostgres(err, "table not found")
	}
	if table.HotelID != hotel.ID {
		return nil, nil, apperr.NotFound("table not found")
	}
	return hotel, table, nil
}

// AuthorizeHotel resolves the hotel named in an admin URL and checks it is the
// hotel the session belongs to.
func (r *Resolver) AuthorizeHotel(ctx context.Context, sessionHotelID, hotelSlug string) (*Hotel, error) {
	if sessionHotelID == "" {
		return nil, apperr.Unauthorized("unauthorized")
	}
	hotel, err := r.Hotel(ctx, hotelSlug)
	if err != nil {
		return nil, err
	}
	if err := Authorize(sessionHotelID, hotel.ID); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Authorize fails with Forbidden when a resource is owned by another hotel.
func Authorize(sessionHotelID, resourceHotelID string) error {
	if sessionHotelID == "" {
		return apperr.Unauthorized("unauthorized")
	}
	if resourceHotelID == "" {
		return apperr.NotFound("not found")
	}
	if sessionHotelID != resourceHotelID {
		return apperr.Forbidden("forbidden")
	}
	return nil
}

// PostgresStore implements Store on the shared database.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) HotelBySlug(ctx context.Context, slug string) (*Hotel, error) {
	var h Hotel
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, slug, COALESCE(logo_url, ''), COALESCE(google_review_url, '')
		FROM hotels
		WHERE slug = $1`, slug).
		Scan(&h.ID, &h.Name, &h.Slug, &h.LogoURL, &h.GoogleReviewURL)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *PostgresStore) TableBySlug(ctx context.Context, qrSlug string) (*Table, error) {
	var t Table
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, hotel_id, name, qr_slug
		FROM dining_tables
		WHERE qr_slug = $1`, qrSlug).
		Scan(&t.ID, &t.HotelID, &t.Name, &t.QRSlug)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
