package middleware

import (
	"net/http"

	"internlink/internal/entity"
	"internlink/internal/repository"

	"github.com/labstack/echo/v4"
)

// RequireRole admits the request only when the resolved principal's role is
// in the allowed set. Runs after RequireAuth.
func RequireRole(roles ...entity.UserRole) echo.MiddlewareFunc {
	allowed := make(map[entity.UserRole]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
			}
			if !allowed[user.Role] {
				return echo.NewHTTPError(http.StatusForbidden, "access denied: insufficient role")
			}
			return next(c)
		}
	}
}

// RequireOwnerOrRole admits the request when the caller is the principal
// named by the given path parameter, or holds one of the privileged roles.
func RequireOwnerOrRole(param string, privileged ...entity.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := AdmitOwnerOrRole(c, c.Param(param), privileged...); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// AdmitOwnerOrRole is the ownership check for handlers that only learn the
// owning principal after loading the resource (e.g. a posting's author).
func AdmitOwnerOrRole(c echo.Context, ownerID string, privileged ...entity.UserRole) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
	}
	if user.ID.String() == ownerID {
		return nil
	}
	for _, role := range privileged {
		if user.Role == role {
			return nil
		}
	}
	return echo.NewHTTPError(http.StatusForbidden, "access denied: you can only access your own resources")
}

// PolicyMiddleware holds the fine-grained checks that need the role
// extension: faculty capability flags and the industry verification gate.
type PolicyMiddleware struct {
	Profiles repository.ProfileRepository
}

// RequireCapability loads the faculty extension and denies unless the named
// capability is set. Non-faculty principals are denied outright; the loaded
// extension is left on the context for the handler.
func (m PolicyMiddleware) RequireCapability(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
			}
			if user.Role != entity.UserRoleFaculty {
				return echo.NewHTTPError(http.StatusForbidden, "faculty access required")
			}

			profile, err := m.Profiles.FindFaculty(c.Request().Context(), user.ID)
			if err != nil {
				return err
			}
			if profile == nil {
				return echo.NewHTTPError(http.StatusForbidden, "faculty profile not found")
			}
			if !profile.HasPermission(name) {
				return echo.NewHTTPError(http.StatusForbidden, "permission '"+name+"' is required")
			}

			SetFacultyProfile(c, profile)
			return next(c)
		}
	}
}

// RequireVerifiedIndustry blocks company-originating write actions until a
// human has verified the account.
func (m PolicyMiddleware) RequireVerifiedIndustry(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
		}
		if user.Role != entity.UserRoleIndustry {
			return echo.NewHTTPError(http.StatusForbidden, "industry access required")
		}

		profile, err := m.Profiles.FindIndustry(c.Request().Context(), user.ID)
		if err != nil {
			return err
		}
		if profile == nil {
			return echo.NewHTTPError(http.StatusForbidden, "industry profile not found")
		}
		if !profile.Verification.IsVerified {
			return echo.NewHTTPError(http.StatusForbidden, "company verification required to perform this action")
		}

		SetIndustryProfile(c, profile)
		return next(c)
	}
}
