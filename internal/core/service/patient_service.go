package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
	"github.com/clinica/patient-admin/internal/pkg/metrics"
)

// PatientOptions tunes the lifecycle controller.
type PatientOptions struct {
	// StrictStatus rejects edits whose status is not a recognised lifecycle
	// state. When false, edits store the submitted status verbatim.
	StrictStatus bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// PatientService implements the patient lifecycle: create, list, discharge
// and edit.
type PatientService struct {
	repo   ports.PatientRepository
	audit  ports.AuditRecorder
	opts   PatientOptions
	logger zerolog.Logger
}

// NewPatientService returns a PatientService. audit may be nil.
func NewPatientService(repo ports.PatientRepository, audit ports.AuditRecorder, opts PatientOptions, logger zerolog.Logger) *PatientService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &PatientService{repo: repo, audit: audit, opts: opts, logger: logger}
}

// Create persists a new record. The status is always in_care regardless of
// what the caller submitted.
func (s *PatientService) Create(ctx context.Context, actor domain.Claims, in ports.PatientInput) (*domain.Patient, error) {
	p := &domain.Patient{
		Name:      in.Name,
		Sex:       in.Sex,
		BirthDate: in.BirthDate,
		Notes:     in.Notes,
		Status:    domain.StatusInCare,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create patient")
		return nil, fmt.Errorf("create patient: %w", err)
	}
	p.ID = id

	s.record(actor, p.ID, domain.AuditCreated, p.Status)
	s.logger.Info().Int64("patient_id", p.ID).Int64("actor_id", actor.UserID).Msg("patient created")
	return p, nil
}

// List returns every patient. There is no per-user scoping.
func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// Get returns domain.ErrPatientNotFound for unknown ids.
func (s *PatientService) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

// Discharge sets the status of id to discharged and touches nothing else.
// An unknown id is a no-op.
func (s *PatientService) Discharge(ctx context.Context, actor domain.Claims, id int64) error {
	n, err := s.repo.UpdateStatus(ctx, id, domain.StatusDischarged)
	if err != nil {
		return fmt.Errorf("discharge patient: %w", err)
	}
	if n == 0 {
		s.logger.Debug().Int64("patient_id", id).Msg("discharge matched no patient")
		return nil
	}

	s.record(actor, id, domain.AuditDischarged, domain.StatusDischarged)
	s.logger.Info().Int64("patient_id", id).Int64("actor_id", actor.UserID).Msg("patient discharged")
	return nil
}

// Edit overwrites every editable field of id with the submitted values,
// status included. Concurrent edits resolve by last write. Discharged records
// stay editable and may be moved back to in_care. An unknown id is a no-op.
func (s *PatientService) Edit(ctx context.Context, actor domain.Claims, id int64, in ports.PatientInput) error {
	status := domain.PatientStatus(in.Status)
	if s.opts.StrictStatus && !status.Known() {
		return fmt.Errorf("edit patient: %w: %q", domain.ErrInvalidStatus, in.Status)
	}

	n, err := s.repo.Update(ctx, &domain.Patient{
		ID:        id,
		Name:      in.Name,
		Sex:       in.Sex,
		BirthDate: in.BirthDate,
		Notes:     in.Notes,
		Status:    status,
	})
	if err != nil {
		return fmt.Errorf("edit patient: %w", err)
	}
	if n == 0 {
		s.logger.Debug().Int64("patient_id", id).Msg("edit matched no patient")
		return nil
	}

	if !status.Known() {
		s.logger.Warn().Int64("patient_id", id).Str("status", in.Status).Msg("patient stored with unrecognised status")
	}
	s.record(actor, id, domain.AuditEdited, status)
	s.logger.Info().Int64("patient_id", id).Int64("actor_id", actor.UserID).Msg("patient edited")
	return nil
}

func (s *PatientService) record(actor domain.Claims, patientID int64, action domain.AuditAction, status domain.PatientStatus) {
	metrics.PatientMutationsTotal.WithLabelValues(string(action)).Inc()
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Action:    action,
		Status:    status,
		ActorID:   actor.UserID,
		ActorName: actor.Name,
		At:        s.opts.Now().UTC(),
	})
}
