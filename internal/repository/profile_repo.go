package repository

import (
	"context"
	"errors"

	"internlink/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository loads and saves the role extension matching a principal's
// role discriminant.
type ProfileRepository interface {
	FindStudent(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error)
	FindFaculty(ctx context.Context, userID uuid.UUID) (*entity.FacultyProfile, error)
	FindIndustry(ctx context.Context, userID uuid.UUID) (*entity.IndustryProfile, error)
	SaveStudent(ctx context.Context, profile *entity.StudentProfile) error
	SaveFaculty(ctx context.Context, profile *entity.FacultyProfile) error
	SaveIndustry(ctx context.Context, profile *entity.IndustryProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindStudent(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error) {
	var profile entity.StudentProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindFaculty(ctx context.Context, userID uuid.UUID) (*entity.FacultyProfile, error) {
	var profile entity.FacultyProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindIndustry(ctx context.Context, userID uuid.UUID) (*entity.IndustryProfile, error) {
	var profile entity.IndustryProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) SaveStudent(ctx context.Context, profile *entity.StudentProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) SaveFaculty(ctx context.Context, profile *entity.FacultyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) SaveIndustry(ctx context.Context, profile *entity.IndustryProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
