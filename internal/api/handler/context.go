package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinica/patient-admin/internal/api/middleware"
	"github.com/clinica/patient-admin/internal/core/domain"
)

// ctxClaims returns the session snapshot injected by the Session middleware.
// Guarded routes always have one; a missing snapshot means the route was
// registered without its guard.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// pathID parses the :id route parameter. Non-numeric ids report false and
// are treated like ids that match no patient.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
