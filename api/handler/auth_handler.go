package handler

import (
	"net/http"
	"time"

	"internlink/api/middleware"
	"internlink/internal/dto"
	"internlink/internal/service"

	"github.com/labstack/echo/v4"
)

const refreshCookieName = "refresh_token"

// AuthHandler exposes the credential flows. Access tokens travel in the
// response body; refresh tokens only ever live in an HttpOnly cookie.
type AuthHandler struct {
	auth *service.AuthService

	// CookieSecure marks auth cookies Secure; off in development so the
	// flows work over plain http.
	CookieSecure bool
	CookieDomain string
}

func NewAuthHandler(auth *service.AuthService, cookieSecure bool, cookieDomain string) *AuthHandler {
	return &AuthHandler{auth: auth, CookieSecure: cookieSecure, CookieDomain: cookieDomain}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.RefreshToken, result.RefreshExpiresIn)
	return writeSuccess(c, http.StatusCreated, dto.AuthResponse{
		User:        dto.UserResponseFromEntity(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.AccessExpiresIn,
	}, "registration successful")
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ip := c.RealIP()
	result, err := h.auth.Login(c.Request().Context(), req, &ip)
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.RefreshToken, result.RefreshExpiresIn)
	return writeSuccess(c, http.StatusOK, dto.AuthResponse{
		User:        dto.UserResponseFromEntity(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.AccessExpiresIn,
	}, "login successful")
}

func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req dto.GoogleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ip := c.RealIP()
	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.Token, &ip)
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.RefreshToken, result.RefreshExpiresIn)
	return writeSuccess(c, http.StatusOK, dto.AuthResponse{
		User:        dto.UserResponseFromEntity(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.AccessExpiresIn,
	}, "login successful")
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return service.ErrInvalidOrExpiredToken
	}
	if err := h.auth.VerifyEmail(c.Request().Context(), token); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "email verified successfully")
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.auth.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "password reset email sent")
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return service.ErrInvalidOrExpiredToken
	}
	var req dto.ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.auth.ResetPassword(c.Request().Context(), token, req.NewPassword); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "password reset successful")
}

// Refresh accepts the refresh token from the cookie first, then the body, and
// rotates both tokens on success.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		token = cookie.Value
	} else {
		var req dto.RefreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		return service.ErrInvalidRefreshToken
	}

	result, err := h.auth.Refresh(c.Request().Context(), token)
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, result.RefreshToken, result.RefreshExpiresIn)
	return writeSuccess(c, http.StatusOK, dto.TokenResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   result.AccessExpiresIn,
	}, "token refreshed")
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil, "password changed successfully")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	ip := c.RealIP()
	if err := h.auth.Logout(c.Request().Context(), user.ID, &ip); err != nil {
		return err
	}
	h.clearRefreshCookie(c)
	return writeSuccess(c, http.StatusOK, nil, "logged out successfully")
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	response := dto.UserResponseFromEntity(user)
	return writeSuccess(c, http.StatusOK, response, "current user")
}

// CheckAuth never fails: with a valid token it reports the user, otherwise it
// reports an anonymous session with a 200.
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	response := dto.CheckAuthResponse{}
	if user, ok := middleware.CurrentUser(c); ok {
		response.IsAuthenticated = true
		userResponse := dto.UserResponseFromEntity(user)
		response.User = &userResponse
	}
	return writeSuccess(c, http.StatusOK, response, "auth status")
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string, expiresIn int64) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(expiresIn),
		Expires:  time.Now().Add(time.Duration(expiresIn) * time.Second),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}
