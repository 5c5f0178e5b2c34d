package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinica/patient-admin/internal/api/cookie"
	"github.com/clinica/patient-admin/internal/api/middleware"
	"github.com/clinica/patient-admin/internal/core/ports"
)

// DashboardPath is where successful logins and patient mutations land.
const DashboardPath = "/dashboard"

type AuthHandler struct {
	authService ports.AuthService
	codec       *cookie.Codec
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, codec *cookie.Codec, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec, log: log}
}

// LoginForm describes the login form.
//
// @Summary      Login form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  formDescriptor
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, loginForm)
}

// Login verifies the credentials, starts a session and sets the session
// cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      303
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	token, _, err := h.authService.Login(ctx, req.Login, req.Password)
	if err != nil {
		return err
	}

	// A fresh login replaces whatever session the browser held before.
	if previous := middleware.TokenFrom(c); previous != "" {
		if err := h.authService.Logout(ctx, previous); err != nil {
			h.log.Warn().Err(err).Msg("failed to end previous session")
		}
	}

	if err := h.codec.Set(c, token); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, DashboardPath)
}

// Logout ends the current session, if any, and sends the browser to the
// login page.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.TokenFrom(c); token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}
	h.codec.Clear(c)
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}
