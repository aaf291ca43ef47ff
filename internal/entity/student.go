package entity

import (
	"time"

	"github.com/google/uuid"
)

type StudentProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	StudentID  string `gorm:"type:varchar(50);index"`
	College    string `gorm:"type:varchar(255)"`
	Department string `gorm:"type:varchar(255)"`
	Semester   int

	// MentorID is a weak reference to a faculty principal; no ownership implied.
	MentorID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
