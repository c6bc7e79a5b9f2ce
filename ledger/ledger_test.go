package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRevenueMode(t *testing.T) {
	mode, err := ParseRevenueMode("")
	require.NoError(t, err)
	assert.Equal(t, CreditOnCreateAndComplete, mode)

	mode, err = ParseRevenueMode("complete")
	require.NoError(t, err)
	assert.Equal(t, CreditOnComplete, mode)

	_, err = ParseRevenueMode("sometimes")
	assert.Error(t, err)
}

func TestLedger_Increments(t *testing.T) {
	total := decimal.RequireFromString("28.62")

	tests := []struct {
		name        string
		mode        RevenueMode
		completion  bool
		wantExec    bool
		wantOrders  int
		wantRevenue decimal.Decimal
	}{
		{name: "observed: creation counts and credits", mode: CreditOnCreateAndComplete, wantExec: true, wantOrders: 1, wantRevenue: total},
		{name: "observed: completion credits again", mode: CreditOnCreateAndComplete, completion: true, wantExec: true, wantOrders: 0, wantRevenue: total},
		{name: "create: creation counts and credits", mode: CreditOnCreate, wantExec: true, wantOrders: 1, wantRevenue: total},
		{name: "create: completion is a no-op", mode: CreditOnCreate, completion: true, wantExec: false},
		{name: "complete: creation only ensures the row", mode: CreditOnComplete, wantExec: true, wantOrders: 0, wantRevenue: decimal.Zero},
		{name: "complete: completion counts and credits", mode: CreditOnComplete, completion: true, wantExec: true, wantOrders: 1, wantRevenue: total},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			if testCase.wantExec {
				mock.ExpectExec("INSERT INTO hotel_analytics").
					WithArgs("hotel-1", testCase.wantOrders, testCase.wantRevenue).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			l := New(testCase.mode)
			if testCase.completion {
				err = l.OrderCompleted(context.Background(), db, "hotel-1", total)
			} else {
				err = l.OrderCreated(context.Background(), db, "hotel-1", total)
			}

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedger_RatingsChanged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO hotel_analytics .* FROM ratings").
		WithArgs("hotel-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, New(CreditOnCreateAndComplete).RatingsChanged(context.Background(), db, "hotel-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_PropagatesErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO hotel_analytics").WillReturnError(errors.New("deadlock"))

	err = New(CreditOnCreateAndComplete).OrderCreated(context.Background(), db, "hotel-1", decimal.NewFromInt(5))
	assert.ErrorContains(t, err, "credit order creation")
}
