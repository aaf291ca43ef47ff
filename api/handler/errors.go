package handler

import (
	"errors"
	"net/http"
	"time"

	"internlink/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewHTTPErrorHandler translates every error that escapes a handler or
// middleware into the uniform envelope. Service and token errors are mapped
// to the taxonomy here; nothing below this layer writes HTTP responses.
// Unclassified errors are logged with full detail and reported to the client
// as a bare 500 unless the server runs in development mode.
func NewHTTPErrorHandler(logger logrus.FieldLogger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"
		var fields []service.FieldError

		var validation *service.ValidationError
		var httpError *echo.HTTPError
		switch {
		case errors.As(err, &validation):
			status = http.StatusBadRequest
			message = "validation failed"
			fields = validation.Fields
		case errors.As(err, &httpError):
			status = httpError.Code
			if text, ok := httpError.Message.(string); ok {
				message = text
			} else {
				message = http.StatusText(status)
			}
		case errors.Is(err, service.ErrDuplicateIdentity):
			status, message = http.StatusBadRequest, err.Error()
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			status, message = http.StatusBadRequest, err.Error()
		case errors.Is(err, service.ErrMentorCapacityReached):
			status, message = http.StatusBadRequest, err.Error()
		case errors.Is(err, service.ErrInvalidCredentials):
			status, message = http.StatusUnauthorized, err.Error()
		case errors.Is(err, service.ErrAccountDeactivated):
			status, message = http.StatusUnauthorized, err.Error()
		case errors.Is(err, service.ErrInvalidRefreshToken):
			status, message = http.StatusUnauthorized, err.Error()
		case errors.Is(err, service.ErrInvalidGoogleToken):
			status, message = http.StatusUnauthorized, err.Error()
		case errors.Is(err, service.ErrNotFound):
			status, message = http.StatusNotFound, err.Error()
		case errors.Is(err, service.ErrEmailDeliveryFailed):
			status, message = http.StatusInternalServerError, err.Error()
		default:
			logger.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
			}).Error("unhandled error")
			if development {
				message = err.Error()
			}
		}

		writeErr := c.JSON(status, envelope{
			Success:    false,
			StatusCode: status,
			Message:    message,
			Errors:     fields,
			Timestamp:  time.Now().UTC(),
		})
		if writeErr != nil {
			logger.WithError(writeErr).Error("error response write failed")
		}
	}
}

// collectFieldErrors flattens validator output into the envelope's per-field
// list; every failed field is reported, not just the first.
func collectFieldErrors(err error) error {
	var validatorErrors validator.ValidationErrors
	if !errors.As(err, &validatorErrors) {
		return err
	}
	validation := &service.ValidationError{}
	for _, fieldError := range validatorErrors {
		validation.Add(fieldError.Field(), validationMessage(fieldError))
	}
	return validation
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fieldError.Param()
	case "max":
		return "must not exceed " + fieldError.Param() + " characters"
	case "uuid":
		return "must be a valid id"
	case "e164":
		return "must be a valid phone number"
	default:
		return "is invalid"
	}
}
