package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qrdine/apperr"
	"qrdine/menu-svc/internal/domain"
)

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ApplyPlan upserts a hotel with its analytics row, categories, items and
// tables in one transaction. IDs in the plan are replaced by the stored ones.
func (r *PostgresRepository) ApplyPlan(ctx context.Context, plan *domain.ProvisionPlan) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	hotel := &plan.Hotel
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO hotels (id, name, slug, description, logo_url, google_review_url, pin_hash)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			logo_url = EXCLUDED.logo_url,
			google_review_url = EXCLUDED.google_review_url,
			pin_hash = EXCLUDED.pin_hash
		RETURNING id, created_at`,
		hotel.ID, hotel.Name, hotel.Slug, hotel.Description, hotel.LogoURL, hotel.GoogleReviewURL, hotel.PinHash).
		Scan(&hotel.ID, &hotel.CreatedAt); err != nil {
		return fmt.Errorf("upsert hotel %s: %w", hotel.Slug, err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO hotel_analytics (hotel_id) VALUES ($1) ON CONFLICT (hotel_id) DO NOTHING", hotel.ID); err != nil {
		return fmt.Errorf("ensure analytics %s: %w", hotel.Slug, err)
	}

	for i := range plan.Categories {
		category := &plan.Categories[i].Category
		category.HotelID = hotel.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO menu_categories (id, hotel_id, name)
			VALUES ($1, $2, $3)
			ON CONFLICT (hotel_id, name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, created_at`,
			category.ID, category.HotelID, category.Name).
			Scan(&category.ID, &category.CreatedAt); err != nil {
			return fmt.Errorf("upsert category %s: %w", category.Name, err)
		}

		for j := range plan.Categories[i].Items {
			item := &plan.Categories[i].Items[j]
			item.HotelID = hotel.ID
			item.CategoryID = category.ID
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO menu_items (id, hotel_id, category_id, name, description, price, available, image_url)
				VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
				ON CONFLICT (hotel_id, name) DO UPDATE SET
					category_id = EXCLUDED.category_id,
					description = EXCLUDED.description,
					price = EXCLUDED.price,
					available = EXCLUDED.available,
					image_url = COALESCE(EXCLUDED.image_url, menu_items.image_url)
				RETURNING id, created_at`,
				item.ID, item.HotelID, item.CategoryID, item.Name, item.Description, item.Price, item.Available, item.ImageURL).
				Scan(&item.ID, &item.CreatedAt); err != nil {
				return fmt.Errorf("upsert item %s: %w", item.Name, err)
			}
		}
	}

	for i := range plan.Tables {
		table := &plan.Tables[i]
		table.HotelID = hotel.ID
		if err := upsertTable(ctx, tx, table); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) UpsertTable(ctx context.Context, table *domain.Table) error {
	return upsertTable(ctx, r.DB, table)
}

// upsertTable keeps an existing row for the same slug. A slug owned by another
// hotel matches no row and is reported as a conflict.
func upsertTable(ctx context.Context, q queryRower, table *domain.Table) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO dining_tables (id, hotel_id, name, qr_slug)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (qr_slug) DO UPDATE SET name = EXCLUDED.name
		WHERE dining_tables.hotel_id = EXCLUDED.hotel_id
		RETURNING id, created_at`,
		table.ID, table.HotelID, table.Name, table.QRSlug).
		Scan(&table.ID, &table.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Conflict("table slug %s belongs to another hotel", table.QRSlug)
	}
	return err
}
