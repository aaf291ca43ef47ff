package service

import (
	"fmt"

	"internlink/internal/dto"
	"internlink/internal/entity"
)

func passwordLengthMessage(minLength int) string {
	return fmt.Sprintf("must be at least %d characters", minLength)
}

// validateRegistration checks the policy constraints the struct validator
// cannot express: the password minimum and the role-conditional required
// fields. Every failure is collected before reporting.
func validateRegistration(input dto.RegisterRequest, minPasswordLength int) error {
	validation := &ValidationError{}

	if len(input.Password) < minPasswordLength {
		validation.Add("password", passwordLengthMessage(minPasswordLength))
	}

	role := entity.UserRole(input.Role)
	switch role {
	case entity.UserRoleStudent:
		if input.StudentData == nil || input.StudentData.StudentID == "" {
			validation.Add("studentData.studentId", "required for student accounts")
		}
	case entity.UserRoleFaculty:
		if input.FacultyData == nil || input.FacultyData.EmployeeID == "" {
			validation.Add("facultyData.employeeId", "required for faculty accounts")
		}
		if input.FacultyData == nil || input.FacultyData.Department == "" {
			validation.Add("facultyData.department", "required for faculty accounts")
		}
	case entity.UserRoleIndustry:
		if input.IndustryData == nil || input.IndustryData.CompanyName == "" {
			validation.Add("industryData.companyName", "required for industry accounts")
		}
		if input.IndustryData == nil || !entity.CompanySize(input.IndustryData.CompanySize).Valid() {
			validation.Add("industryData.companySize", "must be one of startup, small, medium, large, enterprise")
		}
	default:
		validation.Add("role", "must be one of student, faculty, industry")
	}

	if validation.HasErrors() {
		return validation
	}
	return nil
}

func buildProfile(input dto.RegisterRequest) any {
	switch entity.UserRole(input.Role) {
	case entity.UserRoleStudent:
		return &entity.StudentProfile{
			StudentID:  input.StudentData.StudentID,
			College:    input.StudentData.College,
			Department: input.StudentData.Department,
			Semester:   input.StudentData.Semester,
		}
	case entity.UserRoleFaculty:
		return &entity.FacultyProfile{
			EmployeeID:  input.FacultyData.EmployeeID,
			Designation: input.FacultyData.Designation,
			Department:  input.FacultyData.Department,
			College:     input.FacultyData.College,
			Permissions: entity.FacultyPermissions{
				CanApproveInternships: true,
				CanGenerateReports:    true,
			},
			MentorshipCapacity: 20,
		}
	case entity.UserRoleIndustry:
		return &entity.IndustryProfile{
			CompanyName:    input.IndustryData.CompanyName,
			CompanySize:    entity.CompanySize(input.IndustryData.CompanySize),
			CompanyWebsite: input.IndustryData.CompanyWebsite,
			IndustryType:   input.IndustryData.IndustryType,
			Designation:    input.IndustryData.Designation,
		}
	}
	return nil
}

// emptyProfile backs a Google-provisioned account: the extension row exists
// from the start (it is created atomically with the principal) and the user
// fills in the role-specific fields later.
func emptyProfile(role entity.UserRole) any {
	switch role {
	case entity.UserRoleStudent:
		return &entity.StudentProfile{}
	case entity.UserRoleFaculty:
		return &entity.FacultyProfile{
			Permissions: entity.FacultyPermissions{
				CanApproveInternships: true,
				CanGenerateReports:    true,
			},
			MentorshipCapacity: 20,
		}
	case entity.UserRoleIndustry:
		return &entity.IndustryProfile{}
	}
	return nil
}
