package service

import (
	"testing"

	"internlink/internal/entity"
)

func TestInferRoleFromEmail(t *testing.T) {
	cases := []struct {
		email string
		want  entity.UserRole
	}{
		{"alice@mit.edu", entity.UserRoleStudent},
		{"bob@kyoto.ac.jp", entity.UserRoleStudent},
		{"carol@stateuniversity.org", entity.UserRoleFaculty},
		{"dan@citycollege.org", entity.UserRoleFaculty},
		{"erin@acme-inc.com", entity.UserRoleIndustry},
		{"frank@widgets-llc.io", entity.UserRoleIndustry},
		{"grace@fintech.io", entity.UserRoleIndustry},
		{"henry@gmail.com", entity.UserRoleStudent},
		{"no-at-sign", entity.UserRoleStudent},
		{"trailing@", entity.UserRoleStudent},
		// academic markers win over commercial ones
		{"ivy@techuniversity.edu", entity.UserRoleStudent},
	}
	for _, tc := range cases {
		if got := InferRoleFromEmail(tc.email); got != tc.want {
			t.Errorf("InferRoleFromEmail(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}
