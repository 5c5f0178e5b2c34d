package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/pkg/metrics"
)

// AuthService implements login, session resolution and logout.
type AuthService struct {
	credentials *Credentials
	sessions    *SessionManager
	log         zerolog.Logger
}

func NewAuthService(credentials *Credentials, sessions *SessionManager, log zerolog.Logger) *AuthService {
	return &AuthService{credentials: credentials, sessions: sessions, log: log}
}

// Login verifies the credential pair and begins a session.
//
// Unknown logins fail with domain.ErrUserNotFound and wrong passwords with
// domain.ErrInvalidCredentials; the two stay distinct at this layer.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *domain.Claims, error) {
	if login == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.credentials.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("unknown_login").Inc()
			s.log.Info().Str("login", login).Msg("login rejected: unknown login")
			return "", nil, domain.ErrUserNotFound
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	if err := s.credentials.Verify(user, password); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_password").Inc()
		s.log.Info().Str("login", login).Msg("login rejected: bad password")
		return "", nil, err
	}

	token, err := s.sessions.Begin(ctx, user)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("session started")

	claims := domain.ClaimsFor(user)
	return token, &claims, nil
}

// Resolve returns the claims bound to token.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Claims, error) {
	return s.sessions.Resolve(ctx, token)
}

// Logout ends the session bound to token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.End(ctx, token)
}
