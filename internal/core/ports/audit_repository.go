package ports

import (
	"context"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// AuditRepository persists the patient audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
