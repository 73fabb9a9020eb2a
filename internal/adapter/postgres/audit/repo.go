// Package audit implements the append-only audit log repository using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
	"github.com/heartmarshall/learning-log/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends an audit record. Inside RunInTx it joins the caller's
// transaction, so the record commits or rolls back with the change it
// describes.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if !record.EntityType.IsValid() || !record.Action.IsValid() {
		return fmt.Errorf("audit_record %s: %s %s: %w", record.ID, record.Action, record.EntityType, domain.ErrValidation)
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	query, args, err := postgres.Builder.
		Insert("audit_log").
		Columns("id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at").
		Values(record.ID, record.UserID, record.EntityType.String(), record.EntityID, record.Action.String(), changesJSON, record.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit_record: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}

	return nil
}
