// Package topic implements the topic use cases of the journal. Every
// operation takes the session user explicitly and resolves ownership before
// touching data.
package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Topic, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Topic, error)
}

type entryRepo interface {
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Entry, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides topic management operations.
type Service struct {
	topics  topicRepo
	entries entryRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	entries entryRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		topics:  topics,
		entries: entries,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "topic"),
		now:     time.Now,
	}
}

// Detail is a topic together with its entries, most recent first.
type Detail struct {
	Topic   *domain.Topic
	Entries []domain.Entry
}

// timestamp returns the current time at the precision Postgres stores.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
