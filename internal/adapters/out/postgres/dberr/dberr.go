// Package dberr turns driver errors into the store failures the core understands.
package dberr

import (
	"errors"
	"fmt"

	"tailoring/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Wrap reports err as a StoreFailureError for the given operation. Unique constraint violations
// additionally match errs.ErrConflict.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewStoreFailureError(operation, fmt.Errorf("%w: %s", errs.ErrConflict, pgErr.ConstraintName))
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewStoreFailureError(operation, fmt.Errorf("%w: %w", errs.ErrConflict, err))
	}

	return errs.NewStoreFailureError(operation, err)
}
