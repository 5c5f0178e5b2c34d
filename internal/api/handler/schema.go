package handler

import (
	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
)

// formDescriptor tells a client which form to render and where to submit it.
type formDescriptor struct {
	Form   string   `json:"form"`
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

var (
	loginForm = formDescriptor{
		Form:   "login",
		Action: "/login",
		Fields: []string{"login", "password"},
	}
	staffForm = formDescriptor{
		Form:   "staff",
		Action: "/staff/new",
		Fields: []string{"name", "login", "password"},
	}
	newPatientForm = formDescriptor{
		Form:   "patient_new",
		Action: "/patients/new",
		Fields: []string{"name", "sex", "birth_date", "notes"},
	}
)

func editPatientForm(action string) formDescriptor {
	return formDescriptor{
		Form:   "patient_edit",
		Action: action,
		Fields: []string{"name", "sex", "birth_date", "notes", "status"},
	}
}

// loginRequest is bound from the login form. Empty fields are left to the
// auth service, which rejects them as bad credentials.
type loginRequest struct {
	Login    string `form:"login" json:"login" validate:"max=128"`
	Password string `form:"password" json:"password" validate:"max=256"`
}

type staffRequest struct {
	Name     string `form:"name" json:"name" validate:"max=200"`
	Login    string `form:"login" json:"login" validate:"required,max=128"`
	Password string `form:"password" json:"password" validate:"required,max=72"`
	// Role is accepted and ignored.
	Role string `form:"role" json:"role"`
}

func (r staffRequest) toInput() ports.StaffInput {
	return ports.StaffInput{Name: r.Name, Login: r.Login, Password: r.Password, Role: r.Role}
}

// patientRequest only bounds field sizes; contents are stored as submitted.
type patientRequest struct {
	Name      string `form:"name" json:"name" validate:"max=1000"`
	Sex       string `form:"sex" json:"sex" validate:"max=255"`
	BirthDate string `form:"birth_date" json:"birth_date" validate:"max=255"`
	Notes     string `form:"notes" json:"notes" validate:"max=65535"`
	Status    string `form:"status" json:"status" validate:"max=255"`
}

func (r patientRequest) toInput() ports.PatientInput {
	return ports.PatientInput{
		Name:      r.Name,
		Sex:       r.Sex,
		BirthDate: r.BirthDate,
		Notes:     r.Notes,
		Status:    r.Status,
	}
}

type messageResponse struct {
	Message string `json:"message"`
	Login   string `json:"login,omitempty"`
}

type staffCreatedResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type dashboardResponse struct {
	User     *domain.Claims   `json:"user"`
	Patients []domain.Patient `json:"patients"`
}

type editFormResponse struct {
	formDescriptor
	Patient *domain.Patient `json:"patient"`
}
