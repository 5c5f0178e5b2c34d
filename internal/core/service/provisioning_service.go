package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
	"github.com/clinica/patient-admin/internal/pkg/metrics"
)

// Well-known identity of the bootstrap administrator.
const (
	AdminLogin = "admin"
	AdminName  = "Administrator"
)

// ProvisioningService creates the bootstrap administrator and staff accounts.
type ProvisioningService struct {
	credentials   *Credentials
	adminPassword string
	log           zerolog.Logger
}

func NewProvisioningService(credentials *Credentials, adminPassword string, log zerolog.Logger) *ProvisioningService {
	return &ProvisioningService{credentials: credentials, adminPassword: adminPassword, log: log}
}

// BootstrapAdmin creates the single administrator account. A second call
// fails with domain.ErrDuplicateLogin instead of creating another one.
func (s *ProvisioningService) BootstrapAdmin(ctx context.Context) (*domain.User, error) {
	user, err := s.credentials.CreateUser(ctx, AdminName, AdminLogin, s.adminPassword, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(domain.RoleAdmin)).Inc()
	s.log.Info().Int64("user_id", user.ID).Str("login", user.Login).Msg("administrator created")
	return user, nil
}

// CreateStaff creates a staff account on behalf of actor, who must be an
// administrator. Any role hint in the input is ignored.
func (s *ProvisioningService) CreateStaff(ctx context.Context, actor domain.Claims, in ports.StaffInput) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	user, err := s.credentials.CreateUser(ctx, in.Name, in.Login, in.Password, domain.RoleStaff)
	if err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(domain.RoleStaff)).Inc()
	s.log.Info().
		Int64("user_id", user.ID).
		Str("login", user.Login).
		Int64("created_by", actor.UserID).
		Msg("staff account created")
	return user, nil
}
