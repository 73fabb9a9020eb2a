package entry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// CreateEntry adds an entry to a topic owned by userID.
func (s *Service) CreateEntry(ctx context.Context, userID uuid.UUID, input CreateEntryInput) (*domain.Entry, error) {
	topic, err := s.ownedTopic(ctx, userID, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("topic %s: %w", input.TopicID, err)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.timestamp()
	text := strings.TrimSpace(input.Text)

	var entry *domain.Entry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		entry, createErr = s.entries.Create(txCtx, &domain.Entry{
			ID:        uuid.New(),
			TopicID:   topic.ID,
			Text:      text,
			DateAdded: now,
		})
		if createErr != nil {
			return fmt.Errorf("create entry: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeEntry,
			EntityID:   entry.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"topic_id": topic.ID.String(),
				"text":     map[string]any{"new": text},
			},
			CreatedAt: now,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
		slog.String("entry_id", entry.ID.String()),
	)

	return entry, nil
}
