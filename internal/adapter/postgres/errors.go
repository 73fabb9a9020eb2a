package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// PostgreSQL error codes mapped to domain errors.
const (
	codeUniqueViolation          = "23505"
	codeForeignKeyViolation      = "23503"
	codeCheckViolation           = "23514"
	codeCharacterNotInRepertoire = "22021"
)

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row (an id or a natural key) in the error message.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case codeCheckViolation, codeCharacterNotInRepertoire:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
