package handler

import (
	"net/http"

	"internlink/api/middleware"
	"internlink/internal/dto"
	"internlink/internal/entity"
	"internlink/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InternshipHandler struct {
	internships *service.InternshipService
}

func NewInternshipHandler(internships *service.InternshipService) *InternshipHandler {
	return &InternshipHandler{internships: internships}
}

// Create is reachable only through the verified-industry middleware, so the
// caller is guaranteed to be an industry account with an attested company.
func (h *InternshipHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CreateInternshipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	internship, err := h.internships.Create(c.Request().Context(), user.ID, req)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusCreated, dto.InternshipResponseFromEntity(internship), "internship created")
}

func (h *InternshipHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("internshipId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid internship id")
	}
	internship, err := h.internships.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, dto.InternshipResponseFromEntity(internship), "internship")
}

func (h *InternshipHandler) Approve(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(c.Param("internshipId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid internship id")
	}

	internship, err := h.internships.Approve(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, dto.InternshipResponseFromEntity(internship), "internship approved")
}

// Delete is allowed for the posting's owner or any faculty member. Ownership
// is checked against the stored record, not a route parameter.
func (h *InternshipHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("internshipId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid internship id")
	}

	internship, err := h.internships.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := middleware.AdmitOwnerOrRole(c, internship.PostedBy.String(), entity.UserRoleFaculty); err != nil {
		return err
	}

	if err := h.internships.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "internship deleted")
}
