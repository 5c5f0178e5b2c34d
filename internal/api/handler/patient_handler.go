package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
)

type PatientHandler struct {
	patients ports.PatientService
}

func NewPatientHandler(patients ports.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// Dashboard lists every patient alongside the session user.
//
// @Summary      Dashboard
// @Tags         patients
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Success      302
// @Router       /dashboard [get]
func (h *PatientHandler) Dashboard(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	patients, err := h.patients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{User: claims, Patients: patients})
}

// NewForm describes the patient creation form.
//
// @Summary      Patient creation form
// @Tags         patients
// @Produce      json
// @Success      200  {object}  formDescriptor
// @Router       /patients/new [get]
func (h *PatientHandler) NewForm(c echo.Context) error {
	return c.JSON(http.StatusOK, newPatientForm)
}

// Create admits a patient. The record always starts in care.
//
// @Summary      Create patient
// @Tags         patients
// @Accept       x-www-form-urlencoded,json
// @Param        body  body      patientRequest  true  "Patient"
// @Success      303
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /patients/new [post]
func (h *PatientHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.patients.Create(c.Request().Context(), *claims, req.toInput()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, DashboardPath)
}

// Discharge marks a patient discharged. Unknown ids change nothing.
//
// @Summary      Discharge patient
// @Tags         patients
// @Param        id   path  int  true  "Patient id"
// @Success      302
// @Router       /patients/{id}/discharge [get]
func (h *PatientHandler) Discharge(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if id, ok := pathID(c); ok {
		if err := h.patients.Discharge(c.Request().Context(), *claims, id); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusFound, DashboardPath)
}

// EditForm returns the patient with the edit form descriptor.
//
// @Summary      Patient edit form
// @Tags         patients
// @Produce      json
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  editFormResponse
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id}/edit [get]
func (h *PatientHandler) EditForm(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrPatientNotFound
	}

	p, err := h.patients.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, editFormResponse{
		formDescriptor: editPatientForm("/patients/" + strconv.FormatInt(id, 10) + "/edit"),
		Patient:        p,
	})
}

// Edit overwrites every field of the patient, status included.
//
// @Summary      Edit patient
// @Tags         patients
// @Accept       x-www-form-urlencoded,json
// @Param        id    path      int             true  "Patient id"
// @Param        body  body      patientRequest  true  "Patient"
// @Success      303
// @Failure      422   {object}  map[string]string
// @Router       /patients/{id}/edit [post]
func (h *PatientHandler) Edit(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if id, ok := pathID(c); ok {
		if err := h.patients.Edit(c.Request().Context(), *claims, id, req.toInput()); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, DashboardPath)
}
