package ports

import (
	"context"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// AuthService verifies credentials and manages the session lifecycle.
type AuthService interface {
	Login(ctx context.Context, login, password string) (string, *domain.Claims, error)
	Resolve(ctx context.Context, token string) (*domain.Claims, error)
	Logout(ctx context.Context, token string) error
}

// StaffInput carries the fields of the staff creation form.
type StaffInput struct {
	Name     string
	Login    string
	Password string
	// Role is accepted from forms but ignored; staff accounts are always
	// created with domain.RoleStaff.
	Role string
}

// ProvisioningService seeds the administrator and creates staff accounts.
type ProvisioningService interface {
	BootstrapAdmin(ctx context.Context) (*domain.User, error)
	CreateStaff(ctx context.Context, actor domain.Claims, in StaffInput) (*domain.User, error)
}
