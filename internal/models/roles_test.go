package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in       string
		role     string
		approved bool
		ok       bool
	}{
		{"customer", RoleCustomer, true, true},
		{"admin", RoleAdmin, false, true},
		{"head", RoleSuperadmin, false, true},
		// "superadmin" is not a valid registration role; it only exists
		// internally after the head mapping.
		{"superadmin", "", false, false},
		{"", "", false, false},
		{"root", "", false, false},
	}
	for _, c := range cases {
		role, approved, ok := NormalizeRole(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.role, role, c.in)
		assert.Equal(t, c.approved, approved, c.in)
	}
}

func TestAdminTier(t *testing.T) {
	assert.False(t, AdminTier(RoleCustomer))
	assert.True(t, AdminTier(RoleAdmin))
	assert.True(t, AdminTier(RoleSuperadmin))
}
