// Package ledger keeps the per-hotel analytics record consistent with orders
// and ratings. Every method runs inside the caller's transaction and uses
// single-statement upserts, so concurrent writers increment rather than
// overwrite each other.
package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// RevenueMode selects which order events credit revenue.
type RevenueMode string

const (
	// CreditOnCreateAndComplete credits the total at creation and again at
	// first completion. This is the long-standing behavior of the platform.
	CreditOnCreateAndComplete RevenueMode = "create_and_complete"
	// CreditOnCreate counts and credits orders only when they are placed.
	CreditOnCreate RevenueMode = "create"
	// CreditOnComplete counts and credits orders only on first completion.
	CreditOnComplete RevenueMode = "complete"
)

func ParseRevenueMode(s string) (RevenueMode, error) {
	switch mode := RevenueMode(s); mode {
	case CreditOnCreateAndComplete, CreditOnCreate, CreditOnComplete:
		return mode, nil
	case "":
		return CreditOnCreateAndComplete, nil
	default:
		return "", fmt.Errorf("unknown revenue mode %q", s)
	}
}

// Execer is satisfied by *sql.Tx and *sql.DB.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Ledger struct {
	Mode RevenueMode
}

func New(mode RevenueMode) *Ledger {
	return &Ledger{Mode: mode}
}

const upsertCounters = `
	INSERT INTO hotel_analytics (hotel_id, total_orders, total_revenue, avg_rating, review_count, updated_at)
	VALUES ($1, $2, $3, 0, 0, now())
	ON CONFLICT (hotel_id) DO UPDATE SET
		total_orders = hotel_analytics.total_orders + EXCLUDED.total_orders,
		total_revenue = hotel_analytics.total_revenue + EXCLUDED.total_revenue,
		updated_at = now()`

// OrderCreated applies the creation-time increments for a new order.
func (l *Ledger) OrderCreated(ctx context.Context, tx Execer, hotelID string, total decimal.Decimal) error {
	orders, revenue := 0, decimal.Zero
	if l.Mode != CreditOnComplete {
		orders, revenue = 1, total
	}
	if _, err := tx.ExecContext(ctx, upsertCounters, hotelID, orders, revenue); err != nil {
		return fmt.Errorf("credit order creation: %w", err)
	}
	return nil
}

// OrderCompleted applies the increments for an order's first transition into
// COMPLETED. Callers must invoke it at most once per order.
func (l *Ledger) OrderCompleted(ctx context.Context, tx Execer, hotelID string, total decimal.Decimal) error {
	var orders int
	switch l.Mode {
	case CreditOnCreate:
		return nil
	case CreditOnComplete:
		orders = 1
	}
	if _, err := tx.ExecContext(ctx, upsertCounters, hotelID, orders, total); err != nil {
		return fmt.Errorf("credit order completion: %w", err)
	}
	return nil
}

// RatingsChanged re-aggregates every rating of the hotel instead of folding
// the new score into a running mean.
func (l *Ledger) RatingsChanged(ctx context.Context, tx Execer, hotelID string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO hotel_analytics (hotel_id, total_orders, total_revenue, avg_rating, review_count, updated_at)
		SELECT $1, 0, 0, COALESCE(AVG(score), 0), COUNT(*), now()
		FROM ratings
		WHERE hotel_id = $1
		ON CONFLICT (hotel_id) DO UPDATE SET
			avg_rating = EXCLUDED.avg_rating,
			review_count = EXCLUDED.review_count,
			updated_at = now()`, hotelID)
	if err != nil {
		return fmt.Errorf("recompute ratings: %w", err)
	}
	return nil
}
