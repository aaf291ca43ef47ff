package handler

import (
	"net/http"
	"strconv"

	"internlink/api/middleware"
	"internlink/internal/dto"
	"internlink/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// MyProfile returns the caller's principal joined with its role extension.
func (h *UserHandler) MyProfile(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return h.writeProfile(c, user.ID)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return h.writeProfile(c, userID)
}

func (h *UserHandler) writeProfile(c echo.Context, userID uuid.UUID) error {
	profile, err := h.users.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	response := dto.ProfileResponse{
		User:     dto.UserResponseFromEntity(profile.User),
		Student:  dto.StudentProfileResponseFromEntity(profile.Student),
		Faculty:  dto.FacultyProfileResponseFromEntity(profile.Faculty),
		Industry: dto.IndustryProfileResponseFromEntity(profile.Industry),
	}
	return writeSuccess(c, http.StatusOK, response, "user profile")
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	users, total, err := h.users.ListUsers(c.Request().Context(), c.QueryParam("role"), limit, (page-1)*limit)
	if err != nil {
		return err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.UserResponseFromEntity(&users[i]))
	}
	return writePaginated(c, responses, "users", NewPagination(total, page, limit))
}

func (h *UserHandler) Deactivate(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if targetID == actor.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "you cannot deactivate your own account")
	}
	if err := h.users.Deactivate(c.Request().Context(), targetID, actor.ID); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "account deactivated")
}

func (h *UserHandler) Activate(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if err := h.users.Activate(c.Request().Context(), targetID, actor.ID); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "account activated")
}

func (h *UserHandler) VerifyIndustry(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if err := h.users.VerifyIndustry(c.Request().Context(), targetID, actor.ID); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "company verified")
}

func (h *UserHandler) AssignMentor(c echo.Context) error {
	studentID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req dto.AssignMentorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid faculty id")
	}

	if err := h.users.AssignMentor(c.Request().Context(), studentID, facultyID); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "mentor assigned")
}
