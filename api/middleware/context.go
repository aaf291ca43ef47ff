package middleware

import (
	"internlink/internal/entity"

	"github.com/labstack/echo/v4"
)

const (
	contextUserKey     = "auth_user"
	contextFacultyKey  = "auth_faculty_profile"
	contextIndustryKey = "auth_industry_profile"
)

func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(contextUserKey, user)
}

func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextUserKey).(*entity.User)
	return user, ok && user != nil
}

func SetFacultyProfile(c echo.Context, profile *entity.FacultyProfile) {
	c.Set(contextFacultyKey, profile)
}

func FacultyProfileFromContext(c echo.Context) (*entity.FacultyProfile, bool) {
	profile, ok := c.Get(contextFacultyKey).(*entity.FacultyProfile)
	return profile, ok && profile != nil
}

func SetIndustryProfile(c echo.Context, profile *entity.IndustryProfile) {
	c.Set(contextIndustryKey, profile)
}

func IndustryProfileFromContext(c echo.Context) (*entity.IndustryProfile, bool) {
	profile, ok := c.Get(contextIndustryKey).(*entity.IndustryProfile)
	return profile, ok && profile != nil
}
