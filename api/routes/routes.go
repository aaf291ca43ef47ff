package routes

import (
	"time"

	"internlink/api/handler"
	"internlink/api/middleware"
	"internlink/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Router binds the handlers to their paths and middleware chains. The
// credential endpoints sit behind two limiters: a general one for the whole
// auth surface and a stricter one for the guessable flows (login, password
// reset, provider login).
type Router struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Internships *handler.InternshipHandler

	AuthMW   middleware.AuthMiddleware
	PolicyMW middleware.PolicyMiddleware
}

func (r Router) Register(e *echo.Echo) {
	general := middleware.NewRateLimiter(rate.Limit(10), 20, 10*time.Minute).Middleware()
	strict := middleware.NewRateLimiter(rate.Limit(1), 5, 10*time.Minute).Middleware()

	auth := e.Group("/auth", general)
	auth.POST("/register", r.Auth.Register)
	auth.POST("/login", r.Auth.Login, strict)
	auth.POST("/google-login", r.Auth.GoogleLogin, strict)
	auth.GET("/verify-email/:token", r.Auth.VerifyEmail)
	auth.POST("/forgot-password", r.Auth.ForgotPassword, strict)
	auth.POST("/reset-password/:token", r.Auth.ResetPassword, strict)
	auth.POST("/refresh-token", r.Auth.Refresh)
	auth.POST("/change-password", r.Auth.ChangePassword, r.AuthMW.RequireAuth)
	auth.POST("/logout", r.Auth.Logout, r.AuthMW.RequireAuth)
	auth.GET("/me", r.Auth.Me, r.AuthMW.RequireAuth)
	auth.GET("/check-auth", r.Auth.CheckAuth, r.AuthMW.OptionalAuth)

	users := e.Group("/users", r.AuthMW.RequireAuth)
	users.GET("/me", r.Users.MyProfile)
	users.GET("", r.Users.ListUsers, r.PolicyMW.RequireCapability("canViewAllStudents"))
	users.GET("/:userId", r.Users.GetUser, middleware.RequireOwnerOrRole("userId", entity.UserRoleFaculty))
	users.PUT("/:userId/deactivate", r.Users.Deactivate, middleware.RequireRole(entity.UserRoleFaculty))
	users.PUT("/:userId/activate", r.Users.Activate, middleware.RequireRole(entity.UserRoleFaculty))
	users.PUT("/:userId/verify-industry", r.Users.VerifyIndustry, r.PolicyMW.RequireCapability("canManageDepartment"))
	users.PUT("/:userId/mentor", r.Users.AssignMentor, middleware.RequireRole(entity.UserRoleFaculty))

	internships := e.Group("/internships", r.AuthMW.RequireAuth)
	internships.POST("", r.Internships.Create, r.PolicyMW.RequireVerifiedIndustry)
	internships.GET("/:internshipId", r.Internships.Get)
	internships.PUT("/:internshipId/approve", r.Internships.Approve, r.PolicyMW.RequireCapability("canApproveInternships"))
	internships.DELETE("/:internshipId", r.Internships.Delete)
}
