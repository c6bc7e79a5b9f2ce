package storage

import (
	"context"
	"database/sql"
	"time"

	"qrdine/analytics-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetAnalytics(ctx context.Context, hotelID string) (*domain.HotelAnalytics, error) {
	var a domain.HotelAnalytics
	var updatedAt time.Time
	err := r.DB.QueryRowContext(ctx, `
		SELECT hotel_id, total_orders, total_revenue, avg_rating, review_count, updated_at
		FROM hotel_analytics
		WHERE hotel_id = $1
	`, hotelID).Scan(&a.HotelID, &a.TotalOrders, &a.TotalRevenue, &a.AvgRating, &a.ReviewCount, &updatedAt)
	if err != nil {
		return nil, err
	}
	a.UpdatedAt = &updatedAt
	return &a, nil
}

func (r *PostgresRepository) CountOutstanding(ctx context.Context, hotelID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE hotel_id = $1 AND status <> 'COMPLETED'
	`, hotelID).Scan(&count)
	return count, err
}

func (r *PostgresRepository) TopItems(ctx context.Context, hotelID string, since *time.Time, limit int) ([]domain.TrendingItem, error) {
	var sinceArg interface{}
	if since != nil {
		sinceArg = *since
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.menu_item_id, SUM(oi.quantity) AS total_quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.hotel_id = $1 AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		GROUP BY oi.menu_item_id
		ORDER BY total_quantity DESC, oi.menu_item_id
		LIMIT $3
	`, hotelID, sinceArg, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.TrendingItem
	for rows.Next() {
		var item domain.TrendingItem
		if err := rows.Scan(&item.MenuItemID, &item.TotalQuantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// MenuItems looks up display details for the given ids within one hotel.
// Deleted items are simply absent from the result.
func (r *PostgresRepository) MenuItems(ctx context.Context, hotelID string, ids []string) (map[string]domain.MenuItemSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, price
		FROM menu_items
		WHERE hotel_id = $1 AND id = ANY($2)
	`, hotelID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make(map[string]domain.MenuItemSummary, len(ids))
	for rows.Next() {
		var id string
		var summary domain.MenuItemSummary
		if err := rows.Scan(&id, &summary.Name, &summary.Description, &summary.Price); err != nil {
			return nil, err
		}
		summaries[id] = summary
	}
	return summaries, rows.Err()
}

func (r *PostgresRepository) RatingCounts(ctx context.Context, hotelID string) (map[int]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT score, COUNT(*)
		FROM ratings
		WHERE hotel_id = $1
		GROUP BY score
		ORDER BY score
	`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var score, count int
		if err := rows.Scan(&score, &count); err != nil {
			return nil, err
		}
		counts[score] = count
	}
	return counts, rows.Err()
}
