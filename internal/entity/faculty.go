package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FacultyPermissions is a fixed record of named capabilities. Kept as plain
// booleans rather than a dynamic permission-string system so the full matrix
// stays exhaustively testable.
type FacultyPermissions struct {
	CanApproveInternships bool `gorm:"default:true"`
	CanViewAllStudents    bool `gorm:"default:false"`
	CanGenerateReports    bool `gorm:"default:true"`
	CanManageDepartment   bool `gorm:"default:false"`
}

type FacultyProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	EmployeeID  string `gorm:"type:varchar(50);index"`
	Designation string `gorm:"type:varchar(255)"`
	Department  string `gorm:"type:varchar(255)"`
	College     string `gorm:"type:varchar(255)"`

	Permissions FacultyPermissions `gorm:"embedded;embeddedPrefix:perm_"`

	// Mentees holds weak references to student principals, bounded by
	// MentorshipCapacity.
	MentorshipCapacity int                           `gorm:"default:20"`
	Mentees            datatypes.JSONSlice[uuid.UUID]

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *FacultyProfile) HasMentee(studentID uuid.UUID) bool {
	for _, id := range f.Mentees {
		if id == studentID {
			return true
		}
	}
	return false
}

func (f *FacultyProfile) AddMentee(studentID uuid.UUID) bool {
	if f.HasMentee(studentID) {
		return true
	}
	if len(f.Mentees) >= f.MentorshipCapacity {
		return false
	}
	f.Mentees = append(f.Mentees, studentID)
	return true
}

func (f *FacultyProfile) RemoveMentee(studentID uuid.UUID) {
	for i, id := range f.Mentees {
		if id == studentID {
			f.Mentees = append(f.Mentees[:i], f.Mentees[i+1:]...)
			return
		}
	}
}

// HasPermission resolves a capability by name. Unknown names are denied.
func (f *FacultyProfile) HasPermission(name string) bool {
	switch name {
	case "canApproveInternships":
		return f.Permissions.CanApproveInternships
	case "canViewAllStudents":
		return f.Permissions.CanViewAllStudents
	case "canGenerateReports":
		return f.Permissions.CanGenerateReports
	case "canManageDepartment":
		return f.Permissions.CanManageDepartment
	}
	return false
}
