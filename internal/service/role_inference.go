package service

import (
	"strings"

	"internlink/internal/entity"
)

// Ordered substring rules for auto-provisioned Google accounts. Earlier rules
// win; the default is student.
var (
	academicMarkers      = []string{"edu", "ac."}
	institutionalMarkers = []string{"university", "college", "faculty"}
	commercialMarkers    = []string{"inc", "llc", "corp", "company", "tech"}
)

// InferRoleFromEmail guesses a role from the email's domain when a Google
// login creates an account. This is a convenience so new users land on a
// sensible dashboard; it carries no security weight, and nothing downstream
// may treat an inferred role as an administrator-confirmed one.
func InferRoleFromEmail(email string) entity.UserRole {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return entity.UserRoleStudent
	}
	domain := strings.ToLower(email[at+1:])

	if containsAny(domain, academicMarkers) {
		return entity.UserRoleStudent
	}
	if containsAny(domain, institutionalMarkers) {
		return entity.UserRoleFaculty
	}
	if containsAny(domain, commercialMarkers) {
		return entity.UserRoleIndustry
	}
	return entity.UserRoleStudent
}

func containsAny(domain string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(domain, marker) {
			return true
		}
	}
	return false
}
