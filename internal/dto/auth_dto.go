package dto

import (
	"time"

	"internlink/internal/entity"
)

type StudentData struct {
	StudentID  string `json:"studentId"`
	College    string `json:"college"`
	Department string `json:"department"`
	Semester   int    `json:"semester"`
}

type FacultyData struct {
	EmployeeID  string `json:"employeeId"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	College     string `json:"college"`
}

type IndustryData struct {
	CompanyName    string `json:"companyName"`
	CompanySize    string `json:"companySize"`
	CompanyWebsite string `json:"companyWebsite"`
	IndustryType   string `json:"industryType"`
	Designation    string `json:"designation"`
}

// RegisterRequest carries the base principal fields plus the role-specific
// block matching Role. Password length is a policy constant checked by the
// session manager, not a validator tag.
type RegisterRequest struct {
	Email        string        `json:"email" validate:"required,email"`
	Password     string        `json:"password" validate:"required"`
	Name         string        `json:"name" validate:"required,max=100"`
	Role         string        `json:"role" validate:"required,oneof=student faculty industry"`
	Phone        string        `json:"phone" validate:"omitempty,e164"`
	StudentData  *StudentData  `json:"studentData,omitempty"`
	FacultyData  *FacultyData  `json:"facultyData,omitempty"`
	IndustryData *IndustryData `json:"industryData,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int64        `json:"expiresIn"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type CheckAuthResponse struct {
	IsAuthenticated bool          `json:"isAuthenticated"`
	User            *UserResponse `json:"user"`
}

// UserResponse is the public principal projection. The password hash and the
// verification/reset token fields are never serialized.
type UserResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	ProfilePicture  *string    `json:"profilePicture,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	IsActive        bool       `json:"isActive"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID.String(),
		Email:           user.Email,
		Name:            user.Name,
		Role:            string(user.Role),
		ProfilePicture:  user.ProfilePicture,
		Phone:           user.Phone,
		IsEmailVerified: user.IsEmailVerified,
		IsActive:        user.IsActive,
		LastLoginAt:     user.LastLoginAt,
		CreatedAt:       user.CreatedAt,
	}
}
