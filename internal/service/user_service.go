package service

import (
	"context"
	"time"

	"internlink/internal/entity"
	"internlink/internal/repository"

	"github.com/google/uuid"
)

// UserService covers the administrative operations layered on top of the
// credential store: activation, company verification, mentor assignment and
// profile reads that join the role extension.
type UserService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	auditLogs repository.AuditLogRepository
	clock     Clock
}

func NewUserService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	auditLogs repository.AuditLogRepository,
	clock Clock,
) *UserService {
	return &UserService{
		users:     users,
		profiles:  profiles,
		auditLogs: auditLogs,
		clock:     clock,
	}
}

// Profile bundles the principal with whichever role extension matches its
// discriminant.
type Profile struct {
	User     *entity.User
	Student  *entity.StudentProfile
	Faculty  *entity.FacultyProfile
	Industry *entity.IndustryProfile
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	profile := &Profile{User: user}
	switch user.Role {
	case entity.UserRoleStudent:
		profile.Student, err = s.profiles.FindStudent(ctx, userID)
	case entity.UserRoleFaculty:
		profile.Faculty, err = s.profiles.FindFaculty(ctx, userID)
	case entity.UserRoleIndustry:
		profile.Industry, err = s.profiles.FindIndustry(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) ListUsers(ctx context.Context, role string, limit, offset int) ([]entity.User, int64, error) {
	var roleFilter *entity.UserRole
	if role != "" {
		parsed := entity.UserRole(role)
		if !parsed.Valid() {
			validation := &ValidationError{}
			validation.Add("role", "must be one of student, faculty, industry")
			return nil, 0, validation
		}
		roleFilter = &parsed
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(ctx, roleFilter, limit, offset)
}

func (s *UserService) Deactivate(ctx context.Context, targetID uuid.UUID, actorID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.users.SetActive(ctx, targetID, false); err != nil {
		return err
	}
	s.audit(ctx, &targetID, entity.AuditAccountDisabled, map[string]any{"by": actorID.String()})
	return nil
}

func (s *UserService) Activate(ctx context.Context, targetID uuid.UUID, actorID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.users.SetActive(ctx, targetID, true); err != nil {
		return err
	}
	s.audit(ctx, &targetID, entity.AuditAccountEnabled, map[string]any{"by": actorID.String()})
	return nil
}

// VerifyIndustry records the attestation that unlocks public-facing postings
// for a company account. Only a faculty member holding the department
// management capability reaches this (enforced by the middleware chain).
func (s *UserService) VerifyIndustry(ctx context.Context, targetID uuid.UUID, verifierID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil || user.Role != entity.UserRoleIndustry {
		return ErrNotFound
	}

	profile, err := s.profiles.FindIndustry(ctx, targetID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNotFound
	}

	now := s.nowTime()
	profile.Verification.IsVerified = true
	profile.Verification.VerifiedBy = &verifierID
	profile.Verification.VerifiedAt = &now
	if err := s.profiles.SaveIndustry(ctx, profile); err != nil {
		return err
	}

	s.audit(ctx, &targetID, entity.AuditCompanyVerified, map[string]any{"by": verifierID.String()})
	return nil
}

// AssignMentor links a student to a faculty mentor. The faculty's mentee list
// is bounded by its capacity; the student side is a weak reference.
func (s *UserService) AssignMentor(ctx context.Context, studentID uuid.UUID, facultyID uuid.UUID) error {
	student, err := s.profiles.FindStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrNotFound
	}

	faculty, err := s.profiles.FindFaculty(ctx, facultyID)
	if err != nil {
		return err
	}
	if faculty == nil {
		return ErrNotFound
	}

	if !faculty.AddMentee(studentID) {
		return ErrMentorCapacityReached
	}
	if err := s.profiles.SaveFaculty(ctx, faculty); err != nil {
		return err
	}

	if student.MentorID != nil && *student.MentorID != facultyID {
		if previous, err := s.profiles.FindFaculty(ctx, *student.MentorID); err == nil && previous != nil {
			previous.RemoveMentee(studentID)
			_ = s.profiles.SaveFaculty(ctx, previous)
		}
	}

	student.MentorID = &facultyID
	return s.profiles.SaveStudent(ctx, student)
}

func (s *UserService) audit(ctx context.Context, userID *uuid.UUID, action entity.AuditAction, metadata map[string]any) {
	if s.auditLogs == nil {
		return
	}
	payload, err := auditMetadata(metadata)
	if err != nil {
		return
	}
	_ = s.auditLogs.Log(ctx, &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: payload,
	})
}

func (s *UserService) nowTime() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
