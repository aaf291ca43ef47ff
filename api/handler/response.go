package handler

import (
	"net/http"
	"time"

	"internlink/internal/service"

	"github.com/labstack/echo/v4"
)

// Every response, success or failure, uses the same envelope so clients can
// handle the API uniformly.
type envelope struct {
	Success    bool                 `json:"success"`
	StatusCode int                  `json:"statusCode"`
	Message    string               `json:"message"`
	Data       any                  `json:"data,omitempty"`
	Errors     []service.FieldError `json:"errors,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
	Pagination *Pagination          `json:"pagination,omitempty"`
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

func NewPagination(totalItems int64, page, limit int) *Pagination {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return &Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

func writeSuccess(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, envelope{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}

func writePaginated(c echo.Context, data any, message string, pagination *Pagination) error {
	return c.JSON(http.StatusOK, envelope{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
		Pagination: pagination,
	})
}
