package service

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateIdentity     = errors.New("an account with this email already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAccountDeactivated    = errors.New("account is deactivated")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrInvalidGoogleToken    = errors.New("google authentication failed")
	ErrNotFound              = errors.New("resource not found")
	ErrEmailDeliveryFailed   = errors.New("failed to send email")
	ErrMentorCapacityReached = errors.New("mentorship capacity reached")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failed field before reporting, never just
// the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
