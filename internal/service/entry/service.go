// Package entry implements the journal entry use cases. Entries carry no
// owner of their own; every operation resolves the parent topic and checks
// that the session user owns it.
package entry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides entry management operations.
type Service struct {
	entries entryRepo
	topics  topicRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Entry service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	topics topicRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		entries: entries,
		topics:  topics,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "entry"),
		now:     time.Now,
	}
}

// Detail is an entry with the topic it belongs to.
type Detail struct {
	Entry *domain.Entry
	Topic *domain.Topic
}

// timestamp returns the current time at the precision Postgres stores.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// ownedTopic fetches a topic and checks it belongs to userID.
func (s *Service) ownedTopic(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureOwned(t, userID); err != nil {
		return nil, err
	}
	return t, nil
}
