package storage

import (
	"context"
	"database/sql"

	"qrdine/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetHotelBySlug(ctx context.Context, slug string) (*domain.Hotel, error) {
	var hotel domain.Hotel
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, slug, description, COALESCE(logo_url, ''), COALESCE(google_review_url, ''), pin_hash, created_at
		FROM hotels
		WHERE slug = $1`, slug).
		Scan(&hotel.ID, &hotel.Name, &hotel.Slug, &hotel.Description, &hotel.LogoURL, &hotel.GoogleReviewURL, &hotel.PinHash, &hotel.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context, hotelID string) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, hotel_id, name, created_at
		FROM menu_categories
		WHERE hotel_id = $1
		ORDER BY name`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.MenuCategory{}
	for rows.Next() {
		var category domain.MenuCategory
		if err := rows.Scan(&category.ID, &category.HotelID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id string) (*domain.MenuCategory, error) {
	var category domain.MenuCategory
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, hotel_id, name, created_at FROM menu_categories WHERE id = $1", id).
		Scan(&category.ID, &category.HotelID, &category.Name, &category.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.MenuCategory) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO menu_categories (id, hotel_id, name) VALUES ($1, $2, $3) RETURNING created_at",
		category.ID, category.HotelID, category.Name).
		Scan(&category.CreatedAt)
}

const menuItemColumns = "id, hotel_id, category_id, name, description, price, available, COALESCE(image_url, ''), created_at"

func scanMenuItem(row interface{ Scan(...any) error }, item *domain.MenuItem) error {
	return row.Scan(&item.ID, &item.HotelID, &item.CategoryID, &item.Name, &item.Description, &item.Price, &item.Available, &item.ImageURL, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, hotelID string, availableOnly bool) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE hotel_id = $1 AND (available OR NOT $2)
		ORDER BY name`, hotelID, availableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	row := r.DB.QueryRowContext(ctx, "SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id)
	if err := scanMenuItem(row, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (id, hotel_id, category_id, name, description, price, available, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING created_at`,
		item.ID, item.HotelID, item.CategoryID, item.Name, item.Description, item.Price, item.Available, item.ImageURL).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET category_id = $1, name = $2, description = $3, price = $4, available = $5
		WHERE id = $6 AND hotel_id = $7`,
		item.CategoryID, item.Name, item.Description, item.Price, item.Available, item.ID, item.HotelID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, hotelID, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1 AND hotel_id = $2", id, hotelID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateMenuItemImage(ctx context.Context, hotelID, id, imageURL string) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE menu_items SET image_url = $1 WHERE id = $2 AND hotel_id = $3",
		imageURL, id, hotelID)
	return err
}

func (r *PostgresRepository) ListTables(ctx context.Context, hotelID string) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, hotel_id, name, qr_slug, created_at
		FROM dining_tables
		WHERE hotel_id = $1
		ORDER BY name`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.HotelID, &table.Name, &table.QRSlug, &table.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(ctx context.Context, id string) (*domain.Table, error) {
	var table domain.Table
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, hotel_id, name, qr_slug, created_at FROM dining_tables WHERE id = $1", id).
		Scan(&table.ID, &table.HotelID, &table.Name, &table.QRSlug, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *PostgresRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO dining_tables (id, hotel_id, name, qr_slug) VALUES ($1, $2, $3, $4) RETURNING created_at",
		table.ID, table.HotelID, table.Name, table.QRSlug).
		Scan(&table.CreatedAt)
}

func (r *PostgresRepository) UpdateTable(ctx context.Context, table *domain.Table) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE dining_tables SET name = $1, qr_slug = $2 WHERE id = $3 AND hotel_id = $4",
		table.Name, table.QRSlug, table.ID, table.HotelID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
