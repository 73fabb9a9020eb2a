package entry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// UpdateEntry replaces the text of an entry whose topic is owned by userID.
// The entry stays under its topic and keeps its date_added.
func (s *Service) UpdateEntry(ctx context.Context, userID uuid.UUID, input UpdateEntryInput) (*Detail, error) {
	current, err := s.GetEntry(ctx, userID, input.EntryID)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old := current.Entry
	text := strings.TrimSpace(input.Text)
	if text == old.Text {
		return current, nil
	}

	var updated *domain.Entry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.entries.UpdateText(txCtx, old.ID, text)
		if updateErr != nil {
			return fmt.Errorf("update entry: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeEntry,
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

	s.log.InfoContext(ctx, "entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", old.ID.String()),
	)

	return &Detail{Entry: updated, Topic: current.Topic}, nil
}
