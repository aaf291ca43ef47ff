package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleFaculty  UserRole = "faculty"
	UserRoleIndustry UserRole = "industry"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleStudent, UserRoleFaculty, UserRoleIndustry:
		return true
	}
	return false
}

// User is the base principal record. Role-specific attributes live in the
// matching profile table, keyed 1:1 by user id and selected by Role.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:text"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Role         UserRole  `gorm:"type:varchar(20);not null;index"`

	ProfilePicture *string `gorm:"type:text"`
	Phone          *string `gorm:"type:varchar(20)"`

	// GoogleID is unique only when present; accounts created with a password
	// have no external identity binding.
	GoogleID *string `gorm:"type:varchar(255);uniqueIndex"`

	IsEmailVerified            bool    `gorm:"default:false"`
	EmailVerificationTokenHash *string `gorm:"type:text;index"`
	EmailVerificationExpiresAt *time.Time

	PasswordResetTokenHash *string `gorm:"type:text;index"`
	PasswordResetExpiresAt *time.Time

	IsActive    bool `gorm:"default:true"`
	LastLoginAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
