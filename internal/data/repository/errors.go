package repository

import (
	"errors"
	"fmt"

	"ecommerce-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	stringTooLongCode       = "22001"
)

var (
	// ErrNotFound is returned by updates and deletes that matched no row.
	// Lookups return (nil, nil) instead.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate wraps a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrMissingReference wraps a foreign key violation.
	ErrMissingReference = errors.New("referenced record missing")

	// ErrValueTooLong wraps a value that does not fit its column. It also
	// carries apperror.ErrValidation so callers report it as a bad request.
	ErrValueTooLong = errors.New("value too long")
)

const messageValueTooLong = "a field value is too long"

// mapError translates driver errors into the repository sentinels and
// passes anything else through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: %s", ErrMissingReference, pgErr.ConstraintName)
		case stringTooLongCode:
			message := messageValueTooLong
			if pgErr.ColumnName != "" {
				message = pgErr.ColumnName + " is too long"
			}
			return fmt.Errorf("%w: %w", ErrValueTooLong, apperror.ValidationFailed(message))
		}
	}
	return err
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
