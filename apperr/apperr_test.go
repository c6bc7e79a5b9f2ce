package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: NotFound("order not found"), want: http.StatusNotFound},
		{name: "forbidden", err: Forbidden("forbidden"), want: http.StatusForbidden},
		{name: "unauthorized", err: Unauthorized("unauthorized"), want: http.StatusUnauthorized},
		{name: "validation", err: Validation("bad score"), want: http.StatusBadRequest},
		{name: "conflict", err: Conflict("already rated"), want: http.StatusConflict},
		{name: "wrapped", err: fmt.Errorf("create: %w", Conflict("dup")), want: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, HTTPStatus(testCase.err))
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("table not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestMessageHidesInternalDetails(t *testing.T) {
	assert.Equal(t, "internal error", Message(errors.New("dial tcp: refused")))
	assert.Equal(t, "internal error", Message(Internal(errors.New("dial tcp: refused"))))
	assert.Equal(t, "hotel not found", Message(NotFound("hotel not found")))
}

func TestFromPostgres(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "no rows", err: sql.ErrNoRows, want: KindNotFound},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: KindConflict},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: KindValidation},
		{name: "check violation", err: &pq.Error{Code: "23514"}, want: KindValidation},
		{name: "invalid text representation", err: &pq.Error{Code: "22P02"}, want: KindValidation},
		{name: "other pq error", err: &pq.Error{Code: "40001"}, want: KindInternal},
		{name: "already classified", err: Forbidden("nope"), want: KindForbidden},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, KindOf(FromPostgres(testCase.err, "msg")))
		})
	}

	assert.NoError(t, FromPostgres(nil, "msg"))
}
