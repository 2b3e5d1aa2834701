package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: ConstraintPhone}
	foreign := &pgconn.PgError{Code: "23503", ConstraintName: "service_requests_city_id_fkey"}
	other := &pgconn.PgError{Code: "23514"}
	plain := errors.New("boom")

	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(sql.ErrNoRows), ErrNotFound)

	err := translateError(unique)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, ConstraintPhone, ConstraintName(err))

	assert.ErrorIs(t, translateError(foreign), ErrForeignKey)
	assert.Equal(t, other, translateError(other))
	assert.Equal(t, plain, translateError(plain))
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "", ConstraintName(errors.New("boom")))
	assert.Equal(t, ConstraintAcceptRequest, ConstraintName(&pgconn.PgError{ConstraintName: ConstraintAcceptRequest}))
}
