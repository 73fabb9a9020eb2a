package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// UpdateTopic replaces the text of a topic owned by userID. Ownership is
// checked before the input is validated, so a foreign topic is reported as
// not found even when the submitted text is invalid.
func (s *Service) UpdateTopic(ctx context.Context, userID uuid.UUID, input UpdateTopicInput) (*domain.Topic, error) {
	old, err := s.GetTopic(ctx, userID, input.TopicID)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == old.Text {
		return old, nil
	}

	var updated *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.topics.UpdateText(txCtx, old.ID, text)
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   old.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"text": map[string]any{"old": old.Text, "new": text},
			},
			CreatedAt: s.timestamp(),
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", old.ID.String()),
	)

	return updated, nil
}
