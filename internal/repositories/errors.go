package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey is returned when a referenced row does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")
)

// Unique constraint names declared in schema.sql.
const (
	ConstraintUsername      = "uq_users_username"
	ConstraintPhone         = "uq_users_phone"
	ConstraintIDNumber      = "uq_users_id_number"
	ConstraintAcceptRequest = "uq_accept_records_request"
	ConstraintAcceptResp    = "uq_accept_records_response"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver errors onto the repository sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicate, pgErr)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKey, pgErr)
		}
	}
	return err
}

// ConstraintName returns the name of the violated constraint, or "" if err is not a Postgres constraint error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
