package repository

import (
	"context"
	"errors"

	"internlink/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InternshipRepository interface {
	Create(ctx context.Context, internship *entity.Internship) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error)
	Update(ctx context.Context, internship *entity.Internship) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type internshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &internshipRepository{db: db}
}

func (r *internshipRepository) Create(ctx context.Context, internship *entity.Internship) error {
	return r.db.WithContext(ctx).Create(internship).Error
}

func (r *internshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error) {
	var internship entity.Internship
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&internship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) Update(ctx context.Context, internship *entity.Internship) error {
	return r.db.WithContext(ctx).Save(internship).Error
}

func (r *internshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Internship{}, "id = ?", id).Error
}
