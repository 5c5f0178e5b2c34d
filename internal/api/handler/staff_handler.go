package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinica/patient-admin/internal/core/ports"
)

type StaffHandler struct {
	provisioning ports.ProvisioningService
}

func NewStaffHandler(provisioning ports.ProvisioningService) *StaffHandler {
	return &StaffHandler{provisioning: provisioning}
}

// NewForm describes the staff creation form.
//
// @Summary      Staff creation form
// @Tags         staff
// @Produce      json
// @Success      200  {object}  formDescriptor
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /staff/new [get]
func (h *StaffHandler) NewForm(c echo.Context) error {
	return c.JSON(http.StatusOK, staffForm)
}

// Create provisions a staff account. Any submitted role is ignored.
//
// @Summary      Create staff account
// @Tags         staff
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body      staffRequest  true  "Staff account"
// @Success      201   {object}  staffCreatedResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /staff/new [post]
func (h *StaffHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.provisioning.CreateStaff(c.Request().Context(), *claims, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, staffCreatedResponse{Message: "staff account created", User: user})
}

// Bootstrap creates the administrator account. It is registered only when
// the bootstrap route is enabled.
//
// @Summary      Create the administrator account
// @Tags         staff
// @Produce      json
// @Success      201  {object}  messageResponse
// @Failure      409  {object}  map[string]string
// @Router       /bootstrap-admin [get]
func (h *StaffHandler) Bootstrap(c echo.Context) error {
	user, err := h.provisioning.BootstrapAdmin(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "administrator created", Login: user.Login})
}
