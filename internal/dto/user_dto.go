package dto

import (
	"time"

	"internlink/internal/entity"
)

type AssignMentorRequest struct {
	FacultyID string `json:"facultyId" validate:"required,uuid"`
}

type StudentProfileResponse struct {
	StudentID  string  `json:"studentId"`
	College    string  `json:"college,omitempty"`
	Department string  `json:"department,omitempty"`
	Semester   int     `json:"semester,omitempty"`
	MentorID   *string `json:"mentorId,omitempty"`
}

type FacultyProfileResponse struct {
	EmployeeID         string          `json:"employeeId"`
	Designation        string          `json:"designation,omitempty"`
	Department         string          `json:"department,omitempty"`
	College            string          `json:"college,omitempty"`
	Permissions        map[string]bool `json:"permissions"`
	MentorshipCapacity int             `json:"mentorshipCapacity"`
	Mentees            []string        `json:"mentees"`
}

type IndustryProfileResponse struct {
	CompanyName    string     `json:"companyName"`
	CompanySize    string     `json:"companySize"`
	CompanyWebsite string     `json:"companyWebsite,omitempty"`
	IndustryType   string     `json:"industryType,omitempty"`
	Designation    string     `json:"designation,omitempty"`
	IsVerified     bool       `json:"isVerified"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty"`
}

// ProfileResponse is the principal plus its role extension; exactly one of
// the role blocks is set, matching the user's role.
type ProfileResponse struct {
	User     UserResponse             `json:"user"`
	Student  *StudentProfileResponse  `json:"student,omitempty"`
	Faculty  *FacultyProfileResponse  `json:"faculty,omitempty"`
	Industry *IndustryProfileResponse `json:"industry,omitempty"`
}

func StudentProfileResponseFromEntity(profile *entity.StudentProfile) *StudentProfileResponse {
	if profile == nil {
		return nil
	}
	response := &StudentProfileResponse{
		StudentID:  profile.StudentID,
		College:    profile.College,
		Department: profile.Department,
		Semester:   profile.Semester,
	}
	if profile.MentorID != nil {
		mentorID := profile.MentorID.String()
		response.MentorID = &mentorID
	}
	return response
}

func FacultyProfileResponseFromEntity(profile *entity.FacultyProfile) *FacultyProfileResponse {
	if profile == nil {
		return nil
	}
	mentees := make([]string, 0, len(profile.Mentees))
	for _, id := range profile.Mentees {
		mentees = append(mentees, id.String())
	}
	return &FacultyProfileResponse{
		EmployeeID:  profile.EmployeeID,
		Designation: profile.Designation,
		Department:  profile.Department,
		College:     profile.College,
		Permissions: map[string]bool{
			"canApproveInternships": profile.Permissions.CanApproveInternships,
			"canViewAllStudents":    profile.Permissions.CanViewAllStudents,
			"canGenerateReports":    profile.Permissions.CanGenerateReports,
			"canManageDepartment":   profile.Permissions.CanManageDepartment,
		},
		MentorshipCapacity: profile.MentorshipCapacity,
		Mentees:            mentees,
	}
}

func IndustryProfileResponseFromEntity(profile *entity.IndustryProfile) *IndustryProfileResponse {
	if profile == nil {
		return nil
	}
	return &IndustryProfileResponse{
		CompanyName:    profile.CompanyName,
		CompanySize:    string(profile.CompanySize),
		CompanyWebsite: profile.CompanyWebsite,
		IndustryType:   profile.IndustryType,
		Designation:    profile.Designation,
		IsVerified:     profile.Verification.IsVerified,
		VerifiedAt:     profile.Verification.VerifiedAt,
	}
}
