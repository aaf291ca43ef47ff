package middleware

import (
	"errors"
	"net/http"
	"strings"

	"internlink/internal/repository"
	"internlink/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccessCookieName is checked when no Authorization header is present; the
// header always wins.
const AccessCookieName = "access_token"

// The expired and invalid cases share a status code but carry distinct
// messages: clients use the difference to decide whether refreshing is worth
// attempting.
const (
	msgMissingToken = "authentication required"
	msgTokenExpired = "token has expired"
	msgInvalidToken = "invalid token"
)

type AuthMiddleware struct {
	Tokens *utils.TokenManager
	Users  repository.UserRepository
}

// RequireAuth resolves the calling principal: token extraction, signature and
// expiry validation, then a store lookup that also rejects deactivated
// accounts. The resolved user is placed on the request context.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
		}

		subject, err := m.Tokens.VerifyAccessToken(token)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, msgTokenExpired)
			}
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
		}

		user, err := m.Users.FindByID(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		if user == nil || !user.IsActive {
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
		}

		SetCurrentUser(c, user)
		return next(c)
	}
}

// OptionalAuth resolves the principal when a usable token is present and
// proceeds unauthenticated otherwise. It never fails the request.
func (m AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return next(c)
		}

		subject, err := m.Tokens.VerifyAccessToken(token)
		if err != nil {
			return next(c)
		}
		userID, err := uuid.Parse(subject)
		if err != nil {
			return next(c)
		}

		user, err := m.Users.FindByID(c.Request().Context(), userID)
		if err == nil && user != nil && user.IsActive {
			SetCurrentUser(c, user)
		}
		return next(c)
	}
}

func extractToken(c echo.Context) string {
	if token := extractBearerToken(c.Request()); token != "" {
		return token
	}
	cookie, err := c.Cookie(AccessCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
