package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clinica/patient-admin/internal/core/domain"
)

type PatientRepository struct {
	db *sql.DB
}

func NewPatientRepository(db *sql.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO patients (name, sex, birth_date, status, notes) VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Sex, p.BirthDate, string(p.Status), p.Notes,
	)
	if err != nil {
		return 0, domain.NewStoreError("insert patient", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.NewStoreError("insert patient", err)
	}
	return id, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, sex, birth_date, status, notes FROM patients ORDER BY id`)
	if err != nil {
		return nil, domain.NewStoreError("list patients", err)
	}
	defer rows.Close()

	patients := make([]domain.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, domain.NewStoreError("scan patient", err)
		}
		patients = append(patients, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list patients", err)
	}
	return patients, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, sex, birth_date, status, notes FROM patients WHERE id = ?`, id)
	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, domain.NewStoreError("select patient", err)
	}
	return p, nil
}

// UpdateStatus writes only the status column.
func (r *PatientRepository) UpdateStatus(ctx context.Context, id int64, status domain.PatientStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE patients SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return 0, domain.NewStoreError("update patient status", err)
	}
	return rowsAffected(res, "update patient status")
}

func (r *PatientRepository) Update(ctx context.Context, p *domain.Patient) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE patients SET name = ?, sex = ?, birth_date = ?, notes = ?, status = ? WHERE id = ?`,
		p.Name, p.Sex, p.BirthDate, p.Notes, string(p.Status), p.ID,
	)
	if err != nil {
		return 0, domain.NewStoreError("update patient", err)
	}
	return rowsAffected(res, "update patient")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (*domain.Patient, error) {
	var (
		p      domain.Patient
		status string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Sex, &p.BirthDate, &status, &p.Notes); err != nil {
		return nil, err
	}
	p.Status = domain.PatientStatus(status)
	return &p, nil
}

func rowsAffected(res sql.Result, op string) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, domain.NewStoreError(op, err)
	}
	return n, nil
}
