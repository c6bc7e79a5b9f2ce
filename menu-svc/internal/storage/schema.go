package storage

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		logo_url TEXT,
		google_review_url TEXT,
		pin_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS hotel_analytics (
		hotel_id UUID PRIMARY KEY REFERENCES hotels(id) ON DELETE CASCADE,
		total_orders INTEGER NOT NULL DEFAULT 0,
		total_revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		avg_rating NUMERIC NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_categories (
		id UUID PRIMARY KEY,
		hotel_id UUID NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (hotel_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		hotel_id UUID NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
		category_id UUID NOT NULL REFERENCES menu_categories(id),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		available BOOLEAN NOT NULL DEFAULT TRUE,
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (hotel_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS dining_tables (
		id UUID PRIMARY KEY,
		hotel_id UUID NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		qr_slug TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (hotel_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		hotel_id UUID NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
		table_id UUID NOT NULL REFERENCES dining_tables(id),
		status TEXT NOT NULL DEFAULT 'PENDING'
			CHECK (status IN ('PENDING', 'IN_PROGRESS', 'READY', 'SERVED', 'COMPLETED')),
		subtotal NUMERIC(14,2) NOT NULL,
		tax NUMERIC(14,2) NOT NULL,
		total NUMERIC(14,2) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		room_number TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS orders_hotel_created_idx ON orders (hotel_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position INTEGER NOT NULL DEFAULT 0,
		menu_item_id UUID NOT NULL REFERENCES menu_items(id),
		name TEXT NOT NULL,
		unit_price NUMERIC(10,2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		instructions TEXT NOT NULL DEFAULT '',
		line_total NUMERIC(14,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS order_items_order_idx ON order_items (order_id)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL UNIQUE REFERENCES orders(id) ON DELETE CASCADE,
		hotel_id UUID NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
		score INTEGER NOT NULL CHECK (score BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS ratings_hotel_idx ON ratings (hotel_id)`,
}

// EnsureSchema creates the platform's tables when they do not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
