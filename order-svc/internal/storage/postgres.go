package storage

import (
	"context"
	"database/sql"
	"fmt"

	"qrdine/ledger"
	"qrdine/order-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB     *sql.DB
	Ledger *ledger.Ledger
}

func NewPostgresRepository(db *sql.DB, l *ledger.Ledger) *PostgresRepository {
	return &PostgresRepository{DB: db, Ledger: l}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *PostgresRepository) MenuItems(ctx context.Context, hotelID string, ids []string) ([]domain.MenuItemRef, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, hotel_id, name, price, available
		FROM menu_items
		WHERE hotel_id = $1 AND id = ANY($2)
	`, hotelID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.MenuItemRef
	for rows.Next() {
		var ref domain.MenuItemRef
		if err := rows.Scan(&ref.ID, &ref.HotelID, &ref.Name, &ref.Price, &ref.Available); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// CreateOrder writes the order, its items and the creation-time analytics
// increments in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, hotel_id, table_id, status, subtotal, tax, total, notes, customer_name, room_number, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`, order.ID, order.HotelID, order.TableID, order.Status, order.Subtotal, order.Tax, order.Total,
		order.Notes, order.CustomerName, order.RoomNumber, order.Phone).
		Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, position, menu_item_id, name, unit_price, quantity, instructions, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, item.ID, order.ID, i, item.MenuItemID, item.Name, item.UnitPrice, item.Quantity, item.Instructions, item.LineTotal); err != nil {
			return err
		}
	}

	if err := r.Ledger.OrderCreated(ctx, tx, order.HotelID, order.Total); err != nil {
		return err
	}
	return tx.Commit()
}

const orderColumns = `
	o.id, o.hotel_id, o.table_id, t.name, o.status, o.subtotal, o.tax, o.total,
	o.notes, o.customer_name, o.room_number, o.phone, o.created_at, o.updated_at, o.completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order       domain.Order
		completedAt sql.NullTime
	)
	if err := row.Scan(&order.ID, &order.HotelID, &order.TableID, &order.TableName, &order.Status,
		&order.Subtotal, &order.Tax, &order.Total, &order.Notes, &order.CustomerName, &order.RoomNumber,
		&order.Phone, &order.CreatedAt, &order.UpdatedAt, &completedAt); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN dining_tables t ON t.id = o.table_id
		WHERE o.id = $1
	`, id))
	if err != nil {
		return nil, err
	}

	items, err := r.orderItems(ctx, r.DB, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	return order, nil
}

// ListOrders returns the hotel's orders newest first, each with its items.
func (r *PostgresRepository) ListOrders(ctx context.Context, hotelID string, filter domain.ListFilter) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN dining_tables t ON t.id = o.table_id
		WHERE o.hotel_id = $1 AND ($2 = '' OR o.status = $2)
		ORDER BY o.created_at DESC
		LIMIT $3
	`, hotelID, string(filter.Status), filter.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		orders []domain.Order
		ids    []string
	)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.orderItems(ctx, r.DB, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, q queryer, orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, name, unit_price, quantity, instructions, line_total
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY position
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.UnitPrice,
			&item.Quantity, &item.Instructions, &item.LineTotal); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

// TransitionStatus locks the order row, lets authorize inspect it, and applies
// the new status. The completion credit is posted only when completed_at was
// still empty, so it fires once per order no matter how often the order
// leaves and re-enters COMPLETED.
func (r *PostgresRepository) TransitionStatus(ctx context.Context, id string, next domain.Status,
	authorize func(*domain.Order) error) (*domain.StatusChange, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := scanOrder(tx.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN dining_tables t ON t.id = o.table_id
		WHERE o.id = $1
		FOR UPDATE OF o
	`, id))
	if err != nil {
		return nil, err
	}
	if authorize != nil {
		if err := authorize(order); err != nil {
			return nil, err
		}
	}

	change := &domain.StatusChange{
		Order:           order,
		Previous:        order.Status,
		FirstCompletion: next == domain.StatusCompleted && order.CompletedAt == nil,
	}

	var completedAt sql.NullTime
	if err := tx.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1,
			updated_at = now(),
			completed_at = CASE WHEN $3 THEN COALESCE(completed_at, now()) ELSE completed_at END
		WHERE id = $2
		RETURNING updated_at, completed_at
	`, next, id, next == domain.StatusCompleted).Scan(&order.UpdatedAt, &completedAt); err != nil {
		return nil, err
	}
	order.Status = next
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}

	if change.FirstCompletion {
		if err := r.Ledger.OrderCompleted(ctx, tx, order.HotelID, order.Total); err != nil {
			return nil, err
		}
	}

	items, err := r.orderItems(ctx, tx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit status change: %w", err)
	}
	return change, nil
}
