package repository

import (
	"errors"
	"fmt"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes we classify at the boundary
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// classify maps store-level rejections onto domain errors. Anything
// unrecognized passes through and surfaces as a server error upstream.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, pgErr.ConstraintName)
	case codeNotNullViolation, codeForeignKeyViolation, codeCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrConstraint, pgErr.ConstraintName)
	}
	return err
}
