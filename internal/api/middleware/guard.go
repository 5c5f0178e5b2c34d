package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// LoginPath is where anonymous callers of authenticated routes are sent.
const LoginPath = "/login"

// Require enforces the access level of a route. It must run after Session.
func Require(level domain.AccessLevel) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch domain.Authorize(level, ClaimsFrom(c)) {
			case domain.Allow:
				return next(c)
			case domain.RedirectToLogin:
				return c.Redirect(http.StatusFound, LoginPath)
			case domain.Unauthorized:
				return domain.ErrUnauthorized
			default:
				return domain.ErrForbidden
			}
		}
	}
}
