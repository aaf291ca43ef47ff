package entity

import (
	"time"

	"github.com/google/uuid"
)

type CompanySize string

const (
	CompanySizeStartup    CompanySize = "startup"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeEnterprise CompanySize = "enterprise"
)

func (s CompanySize) Valid() bool {
	switch s {
	case CompanySizeStartup, CompanySizeSmall, CompanySizeMedium, CompanySizeLarge, CompanySizeEnterprise:
		return true
	}
	return false
}

// IndustryVerification is the administrative attestation that a company
// account is legitimate. Public-facing write actions are gated on IsVerified.
type IndustryVerification struct {
	IsVerified bool       `gorm:"default:false"`
	VerifiedBy *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt *time.Time
}

type IndustryProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	CompanyName    string      `gorm:"type:varchar(255)"`
	CompanySize    CompanySize `gorm:"type:varchar(20)"`
	CompanyWebsite string      `gorm:"type:varchar(255)"`
	IndustryType   string      `gorm:"type:varchar(255)"`
	Designation    string      `gorm:"type:varchar(255)"`

	Verification IndustryVerification `gorm:"embedded;embeddedPrefix:verification_"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
