package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/clinica/patient-admin/internal/api/cookie"
	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
)

// Context keys set by Session.
const (
	ClaimsKey = "claims"
	TokenKey  = "session_token"
)

// Session resolves the session cookie and injects the claims snapshot into
// the context. Requests without a valid session continue anonymously; the
// guard decides what they may reach.
func Session(auth ports.AuthService, codec *cookie.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := codec.Read(c)
			if !ok {
				return next(c)
			}

			claims, err := auth.Resolve(c.Request().Context(), token)
			switch {
			case errors.Is(err, domain.ErrSessionNotFound):
				codec.Clear(c)
				return next(c)
			case err != nil:
				return err
			}

			c.Set(ClaimsKey, claims)
			c.Set(TokenKey, token)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by Session, or nil.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(ClaimsKey).(*domain.Claims)
	return claims
}

// TokenFrom returns the session token injected by Session, or "".
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(TokenKey).(string)
	return token
}
