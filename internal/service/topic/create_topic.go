package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// CreateTopic creates a new topic owned by userID.
func (s *Service) CreateTopic(ctx context.Context, userID uuid.UUID, input CreateTopicInput) (*domain.Topic, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.timestamp()
	text := strings.TrimSpace(input.Text)

	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		topic, createErr = s.topics.Create(txCtx, &domain.Topic{
			ID:        uuid.New(),
			Text:      text,
			DateAdded: now,
			OwnerID:   userID,
		})
		if createErr != nil {
			return fmt.Errorf("create topic: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   topic.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"text": map[string]any{"new": text},
			},
			CreatedAt: now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
	)

	return topic, nil
}
