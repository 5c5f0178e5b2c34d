package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
)

const tokenBytes = 32

// SessionManager binds opaque tokens to claims snapshots. It has no logic
// beyond the create/read/destroy lifecycle.
type SessionManager struct {
	store ports.SessionStore
}

func NewSessionManager(store ports.SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

// Begin issues a fresh token for user. Every call draws a new token, so a
// token never survives across login events.
func (m *SessionManager) Begin(ctx context.Context, user *domain.User) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	if err := m.store.Save(ctx, token, domain.ClaimsFor(user)); err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	return token, nil
}

// Resolve returns domain.ErrSessionNotFound for unknown or ended tokens.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}
	return m.store.Load(ctx, token)
}

// End invalidates token. Ending an unknown token is not an error.
func (m *SessionManager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
