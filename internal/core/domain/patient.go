package domain

import "time"

// PatientStatus is the lifecycle marker of a patient record. Only StatusInCare
// and StatusDischarged are recognised, but the column is free text and edits
// may store other values.
type PatientStatus string

const (
	StatusInCare     PatientStatus = "in_care"
	StatusDischarged PatientStatus = "discharged"
)

// Known reports whether s is one of the recognised lifecycle states.
func (s PatientStatus) Known() bool {
	return s == StatusInCare || s == StatusDischarged
}

// Patient is a clinical record tracked through intake, care and discharge.
type Patient struct {
	ID        int64         `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name"`
	Sex       string        `json:"sex" bson:"sex"`
	BirthDate string        `json:"birth_date" bson:"birth_date"`
	Status    PatientStatus `json:"status" bson:"status"`
	Notes     string        `json:"notes" bson:"notes"`
}

// AuditAction names the lifecycle operation recorded in the audit trail.
type AuditAction string

const (
	AuditCreated    AuditAction = "created"
	AuditDischarged AuditAction = "discharged"
	AuditEdited     AuditAction = "edited"
)

// AuditEvent records one successful mutation of a patient record.
type AuditEvent struct {
	ID        string
	PatientID int64
	Action    AuditAction
	Status    PatientStatus
	ActorID   int64
	ActorName string
	At        time.Time
}
