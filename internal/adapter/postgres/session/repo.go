// Package session implements the login Session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
	"github.com/heartmarshall/learning-log/internal/domain"
)

const table = "sessions"

var columns = []string{"id", "user_id", "expires_at", "created_at"}

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.UserID, s.ExpiresAt, s.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert session: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "session", s.ID)
	}

	return nil
}

// GetByID returns a session by id. Expired sessions are returned as well;
// the caller decides whether they are still valid.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select session: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return &domain.Session{
		ID:        dst.ID,
		UserID:    dst.UserID,
		ExpiresAt: dst.ExpiresAt,
		CreatedAt: dst.CreatedAt,
	}, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete session: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "session", id)
	}

	return nil
}

// DeleteExpired removes all sessions that expired at or before now and
// returns how many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired sessions: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

