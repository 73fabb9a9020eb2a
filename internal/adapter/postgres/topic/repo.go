// Package topic implements the Topic repository using PostgreSQL.
// Lookups by id are not owner-scoped: ownership is enforced by the caller.
package topic

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

const table = "topics"

var (
	columns   = []string{"id", "text", "date_added", "owner_id"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Text      string    `db:"text"`
	DateAdded time.Time `db:"date_added"`
	OwnerID   uuid.UUID `db:"owner_id"`
}

func (r row) toDomain() *domain.Topic {
	return &domain.Topic{
		ID:        r.ID,
		Text:      r.Text,
		DateAdded: r.DateAdded,
		OwnerID:   r.OwnerID,
	}
}

// Create inserts a fully populated topic and returns the stored row.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.Text, t.DateAdded, t.OwnerID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert topic: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}

	return dst.toDomain(), nil
}

// GetByID returns a topic by id regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select topic: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return dst.toDomain(), nil
}

// ListByOwner returns all topics of ownerID, oldest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Topic, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("date_added ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list topics for owner %s: %w", ownerID, err)
	}

	topics := make([]domain.Topic, len(rows))
	for i, rw := range rows {
		topics[i] = *rw.toDomain()
	}

	return topics, nil
}

// UpdateText replaces the text of a topic. Owner and date_added are never
// written.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Topic, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("text", text).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update topic: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return dst.toDomain(), nil
}
