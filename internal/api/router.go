package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/clinica/patient-admin/internal/api/cookie"
	"github.com/clinica/patient-admin/internal/api/handler"
	"github.com/clinica/patient-admin/internal/api/middleware"
	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
	"github.com/clinica/patient-admin/internal/infrastructure/http/handlers"
)

// Dependencies carries everything NewRouter wires into routes.
type Dependencies struct {
	Auth         ports.AuthService
	Provisioning ports.ProvisioningService
	Patients     ports.PatientService
	Cookies      *cookie.Codec
	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]handlers.Pinger
	// BootstrapRoute registers GET /bootstrap-admin. Leave it off once the
	// administrator exists.
	BootstrapRoute bool
	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "clinic",
		Subsystem:  "http",
		Registerer: deps.Registerer,
	}))
	e.Use(middleware.Logger(deps.Log))
	e.Use(middleware.Session(deps.Auth, deps.Cookies))

	authenticated := middleware.Require(domain.LevelAuthenticated)
	adminOnly := middleware.Require(domain.LevelAdministrator)

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookies, deps.Log)
	staffHandler := handler.NewStaffHandler(deps.Provisioning)
	patientHandler := handler.NewPatientHandler(deps.Patients)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, handler.DashboardPath)
	})

	// --- Auth routes ---
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	if deps.BootstrapRoute {
		e.GET("/bootstrap-admin", staffHandler.Bootstrap)
	}

	// --- Staff routes (administrators only) ---
	e.GET("/staff/new", staffHandler.NewForm, adminOnly)
	e.POST("/staff/new", staffHandler.Create, adminOnly)

	// --- Patient routes ---
	e.GET("/dashboard", patientHandler.Dashboard, authenticated)
	e.GET("/patients/new", patientHandler.NewForm, authenticated)
	e.POST("/patients/new", patientHandler.Create, authenticated)
	e.GET("/patients/:id/discharge", patientHandler.Discharge, authenticated)
	e.GET("/patients/:id/edit", patientHandler.EditForm, authenticated)
	e.POST("/patients/:id/edit", patientHandler.Edit, authenticated)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))

	return e
}
