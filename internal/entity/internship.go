package entity

import (
	"time"

	"github.com/google/uuid"
)

type InternshipStatus string

const (
	InternshipPending  InternshipStatus = "pending"
	InternshipApproved InternshipStatus = "approved"
	InternshipRejected InternshipStatus = "rejected"
)

// Internship is a company posting. Only verified industry accounts may create
// one; it becomes visible to students once a faculty member approves it.
type Internship struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// PostedBy is the owning industry principal.
	PostedBy uuid.UUID `gorm:"type:uuid;not null;index"`

	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"type:varchar(255)"`
	Stipend     int

	Status     InternshipStatus `gorm:"type:varchar(20);default:'pending';not null"`
	ApprovedBy *uuid.UUID       `gorm:"type:uuid"`
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
