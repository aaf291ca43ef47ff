package repository

import (
	"context"
	"errors"
	"time"

	"internlink/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when a unique constraint (email, google id)
// rejects an insert. The storage layer is the authority on uniqueness;
// pre-checks in the service are only a convenience.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository is the credential store. Default projections exclude the
// password hash; callers that need it for comparison must use the
// ...WithSecret variants.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *entity.User, profile any) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByIDWithSecret(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailWithSecret(ctx context.Context, email string) (*entity.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	FindByVerificationTokenHash(ctx context.Context, hash string, now time.Time) (*entity.User, error)
	FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*entity.User, error)
	List(ctx context.Context, role *entity.UserRole, limit, offset int) ([]entity.User, int64, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile inserts the principal and its role extension as one
// transaction, so a failed extension insert never leaves an orphaned user.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *entity.User, profile any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		switch p := profile.(type) {
		case *entity.StudentProfile:
			p.UserID = user.ID
			return tx.Create(p).Error
		case *entity.FacultyProfile:
			p.UserID = user.ID
			return tx.Create(p).Error
		case *entity.IndustryProfile:
			p.UserID = user.ID
			return tx.Create(p).Error
		case nil:
			return errors.New("role profile is required")
		default:
			return errors.New("unknown role profile type")
		}
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, false, "id = ?", id)
}

func (r *userRepository) FindByIDWithSecret(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, true, "id = ?", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, false, "email = ?", email)
}

func (r *userRepository) FindByEmailWithSecret(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, true, "email = ?", email)
}

func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	return r.findOne(ctx, false, "google_id = ?", googleID)
}

func (r *userRepository) FindByVerificationTokenHash(ctx context.Context, hash string, now time.Time) (*entity.User, error) {
	return r.findOne(ctx, false, "email_verification_token_hash = ? AND email_verification_expires_at > ?", hash, now)
}

func (r *userRepository) FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*entity.User, error) {
	return r.findOne(ctx, false, "password_reset_token_hash = ? AND password_reset_expires_at > ?", hash, now)
}

func (r *userRepository) List(ctx context.Context, role *entity.UserRole, limit, offset int) ([]entity.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.User{}).Where("is_active = true")
	if role != nil {
		query = query.Where("role = ?", *role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err := query.
		Omit("password_hash").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = nil
	}
	return users, total, nil
}

// Update writes the full document except the password hash, which only
// UpdatePassword may touch. Finders with the default projection return users
// without the hash, so saving it back here would null it out.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Omit("password_hash").Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).
		Error
}

func (r *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("is_active", active).
		Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

func (r *userRepository) findOne(ctx context.Context, withSecret bool, query string, args ...any) (*entity.User, error) {
	var user entity.User
	tx := r.db.WithContext(ctx)
	if !withSecret {
		tx = tx.Omit("password_hash")
	}
	err := tx.Where(query, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !withSecret {
		user.PasswordHash = nil
	}
	return &user, nil
}
