package ports

import (
	"context"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// PatientInput carries the editable fields of a patient form.
type PatientInput struct {
	Name      string
	Sex       string
	BirthDate string
	Notes     string
	// Status is ignored on create and stored verbatim on edit.
	Status string
}

// PatientService defines the patient lifecycle use cases.
type PatientService interface {
	Create(ctx context.Context, actor domain.Claims, in PatientInput) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id int64) (*domain.Patient, error)
	Discharge(ctx context.Context, actor domain.Claims, id int64) error
	Edit(ctx context.Context, actor domain.Claims, id int64, in PatientInput) error
}
