package dto

import (
	"time"

	"internlink/internal/entity"
)

type CreateInternshipRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Stipend     int    `json:"stipend" validate:"omitempty,gte=0"`
}

type InternshipResponse struct {
	ID          string     `json:"id"`
	PostedBy    string     `json:"postedBy"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Stipend     int        `json:"stipend,omitempty"`
	Status      string     `json:"status"`
	ApprovedBy  *string    `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func InternshipResponseFromEntity(internship *entity.Internship) InternshipResponse {
	response := InternshipResponse{
		ID:          internship.ID.String(),
		PostedBy:    internship.PostedBy.String(),
		Title:       internship.Title,
		Description: internship.Description,
		Location:    internship.Location,
		Stipend:     internship.Stipend,
		Status:      string(internship.Status),
		ApprovedAt:  internship.ApprovedAt,
		CreatedAt:   internship.CreatedAt,
	}
	if internship.ApprovedBy != nil {
		approvedBy := internship.ApprovedBy.String()
		response.ApprovedBy = &approvedBy
	}
	return response
}
