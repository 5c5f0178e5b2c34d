package ports

import (
	"context"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// UserRepository defines persistence for staff accounts. Accounts are never
// updated or deleted.
type UserRepository interface {
	// Create inserts user and returns the store-assigned id. A login that is
	// already present fails with domain.ErrDuplicateLogin.
	Create(ctx context.Context, user *domain.User) (int64, error)
	// FindByLogin returns domain.ErrUserNotFound when no row matches.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}
