package sqlite

import (
	"context"
	"database/sql"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// AuditRepository appends patient lifecycle events to patient_events.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO patient_events (id, patient_id, action, status, actor_id, actor_name, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.PatientID, string(e.Action), string(e.Status), e.ActorID, e.ActorName, e.At.UTC().UnixMilli(),
	)
	if err != nil {
		return domain.NewStoreError("insert patient event", err)
	}
	return nil
}
