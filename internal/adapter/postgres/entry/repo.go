// Package entry implements the Entry repository using PostgreSQL.
package entry

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

const table = "entries"

var (
	columns   = []string{"id", "text", "date_added", "topic_id"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Text      string    `db:"text"`
	DateAdded time.Time `db:"date_added"`
	TopicID   uuid.UUID `db:"topic_id"`
}

func (r row) toDomain() *domain.Entry {
	return &domain.Entry{
		ID:        r.ID,
		TopicID:   r.TopicID,
		Text:      r.Text,
		DateAdded: r.DateAdded,
	}
}

// Create inserts a fully populated entry. A missing topic maps to
// domain.ErrNotFound via the foreign key.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.Text, e.DateAdded, e.TopicID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert entry: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return dst.toDomain(), nil
}

// GetByID returns an entry by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select entry: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return dst.toDomain(), nil
}

// ListByTopic returns the entries of a topic, most recent first.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Entry, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"topic_id": topicID}).
		OrderBy("date_added DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entries for topic %s: %w", topicID, err)
	}

	entries := make([]domain.Entry, len(rows))
	for i, rw := range rows {
		entries[i] = *rw.toDomain()
	}

	return entries, nil
}

// UpdateText replaces the text of an entry. The parent topic and
// date_added are never written.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("text", text).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update entry: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return dst.toDomain(), nil
}
