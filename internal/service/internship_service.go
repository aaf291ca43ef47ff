package service

import (
	"context"
	"time"

	"internlink/internal/dto"
	"internlink/internal/entity"
	"internlink/internal/repository"

	"github.com/google/uuid"
)

// InternshipService is the minimal posting workflow: verified companies
// create postings, faculty with the approval capability publish them.
type InternshipService struct {
	internships repository.InternshipRepository
	clock       Clock
}

func NewInternshipService(internships repository.InternshipRepository, clock Clock) *InternshipService {
	return &InternshipService{internships: internships, clock: clock}
}

func (s *InternshipService) Create(ctx context.Context, postedBy uuid.UUID, input dto.CreateInternshipRequest) (*entity.Internship, error) {
	internship := &entity.Internship{
		PostedBy:    postedBy,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Stipend:     input.Stipend,
		Status:      entity.InternshipPending,
	}
	if err := s.internships.Create(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

func (s *InternshipService) Get(ctx context.Context, id uuid.UUID) (*entity.Internship, error) {
	internship, err := s.internships.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship == nil {
		return nil, ErrNotFound
	}
	return internship, nil
}

func (s *InternshipService) Approve(ctx context.Context, id uuid.UUID, approverID uuid.UUID) (*entity.Internship, error) {
	internship, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.nowTime()
	internship.Status = entity.InternshipApproved
	internship.ApprovedBy = &approverID
	internship.ApprovedAt = &now
	if err := s.internships.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

func (s *InternshipService) Delete(ctx context.Context, id uuid.UUID) error {
	internship, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.internships.Delete(ctx, internship.ID)
}

func (s *InternshipService) nowTime() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
