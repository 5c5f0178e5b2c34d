package ports

import (
	"context"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// SessionStore holds the server-side half of a session: the opaque token and
// the claims snapshot taken at login.
type SessionStore interface {
	Save(ctx context.Context, token string, claims domain.Claims) error
	// Load returns domain.ErrSessionNotFound for unknown or expired tokens.
	Load(ctx context.Context, token string) (*domain.Claims, error)
	Delete(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}
