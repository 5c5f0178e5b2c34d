package ports

import (
	"context"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// PatientRepository defines persistence for patient records. Every mutation
// is a single-row statement; there is no row locking across requests.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (int64, error)
	// List returns every patient ordered by id.
	List(ctx context.Context) ([]domain.Patient, error)
	// FindByID returns domain.ErrPatientNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Patient, error)
	// UpdateStatus sets only the status column and returns rows affected.
	UpdateStatus(ctx context.Context, id int64, status domain.PatientStatus) (int64, error)
	// Update overwrites name, sex, birth date, notes and status of p.ID and
	// returns rows affected.
	Update(ctx context.Context, p *domain.Patient) (int64, error)
}
