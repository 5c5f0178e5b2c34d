package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinica/patient-admin/internal/api/cookie"
	"github.com/clinica/patient-admin/internal/api/middleware"
	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, login, password string) (string, *domain.Claims, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, login, password string) (string, *domain.Claims, error) {
	return s.loginFn(ctx, login, password)
}

func (s *stubAuthService) Resolve(context.Context, string) (*domain.Claims, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, token)
}

type stubProvisioning struct {
	bootstrapFn   func(ctx context.Context) (*domain.User, error)
	createStaffFn func(ctx context.Context, actor domain.Claims, in ports.StaffInput) (*domain.User, error)
}

func (s *stubProvisioning) BootstrapAdmin(ctx context.Context) (*domain.User, error) {
	return s.bootstrapFn(ctx)
}

func (s *stubProvisioning) CreateStaff(ctx context.Context, actor domain.Claims, in ports.StaffInput) (*domain.User, error) {
	return s.createStaffFn(ctx, actor, in)
}

type stubPatientService struct {
	createFn    func(ctx context.Context, actor domain.Claims, in ports.PatientInput) (*domain.Patient, error)
	listFn      func(ctx context.Context) ([]domain.Patient, error)
	getFn       func(ctx context.Context, id int64) (*domain.Patient, error)
	dischargeFn func(ctx context.Context, actor domain.Claims, id int64) error
	editFn      func(ctx context.Context, actor domain.Claims, id int64, in ports.PatientInput) error
}

func (s *stubPatientService) Create(ctx context.Context, actor domain.Claims, in ports.PatientInput) (*domain.Patient, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubPatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.listFn(ctx)
}

func (s *stubPatientService) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	return s.getFn(ctx, id)
}

func (s *stubPatientService) Discharge(ctx context.Context, actor domain.Claims, id int64) error {
	return s.dischargeFn(ctx, actor, id)
}

func (s *stubPatientService) Edit(ctx context.Context, actor domain.Claims, id int64, in ports.PatientInput) error {
	return s.editFn(ctx, actor, id, in)
}

var (
	testCodec   = cookie.NewCodec([]byte("test-secret"), false)
	adminClaims = &domain.Claims{UserID: 1, Name: "Administrator", Role: domain.RoleAdmin}
	staffClaims = &domain.Claims{UserID: 2, Name: "Ana", Role: domain.RoleStaff}
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// newContext builds a context as the Session middleware would leave it.
func newContext(e *echo.Echo, req *http.Request, claims *domain.Claims) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(middleware.ClaimsKey, claims)
		c.Set(middleware.TokenKey, "tok-current")
	}
	return c, rec
}
