package storage

import (
	"context"
	"database/sql"
	"errors"

	"qrdine/apperr"
	"qrdine/ledger"
	"qrdine/rate-svc/internal/domain"
)

type PostgresRepository struct {
	DB     *sql.DB
	Ledger *ledger.Ledger
}

func NewPostgresRepository(db *sql.DB, l *ledger.Ledger) *PostgresRepository {
	return &PostgresRepository{DB: db, Ledger: l}
}

// CreateRating locks the rated order, inserts the rating and re-aggregates the
// hotel's rating figures in one transaction. The hotel is taken from the order,
// never from the caller.
func (r *PostgresRepository) CreateRating(ctx context.Context, rating *domain.Rating) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		SELECT hotel_id FROM orders WHERE id = $1 FOR UPDATE
	`, rating.OrderID).Scan(&rating.HotelID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("order not found")
	}
	if err != nil {
		return err
	}

	var rated bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM ratings WHERE order_id = $1)
	`, rating.OrderID).Scan(&rated); err != nil {
		return err
	}
	if rated {
		return apperr.Conflict("order has already been rated")
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO ratings (id, order_id, hotel_id, score, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, rating.ID, rating.OrderID, rating.HotelID, rating.Score, rating.Comment).Scan(&rating.CreatedAt); err != nil {
		return apperr.FromPostgres(err, "order has already been rated")
	}

	if err := r.Ledger.RatingsChanged(ctx, tx, rating.HotelID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresRepository) GetRating(ctx context.Context, orderID string) (*domain.Rating, error) {
	var rating domain.Rating
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, order_id, hotel_id, score, comment, created_at
		FROM ratings
		WHERE order_id = $1
	`, orderID).Scan(&rating.ID, &rating.OrderID, &rating.HotelID, &rating.Score, &rating.Comment, &rating.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
