package config

import (
	"internlink/internal/entity"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date for every model the service owns.
// Order matters: the principal table must exist before the extension tables
// that reference it.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.StudentProfile{},
		&entity.FacultyProfile{},
		&entity.IndustryProfile{},
		&entity.AuditLog{},
		&entity.Internship{},
	)
}
