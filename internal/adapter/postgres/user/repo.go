// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
	"github.com/heartmarshall/learning-log/internal/domain"
)

const table = "users"

var (
	columns   = []string{"id", "username", "password_hash", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// Create inserts a new user. A taken username maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	return dst.toDomain(), nil
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return dst.toDomain(), nil
}
