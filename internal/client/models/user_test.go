package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleListener, RoleCreator, RoleExpert, RoleLabel, RoleAdmin} {
		assert.True(t, r.Valid(), "role %s", r)
	}
	assert.False(t, Role("moderator").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_CanPublish(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleListener, false},
		{RoleCreator, true},
		{RoleExpert, true},
		{RoleLabel, true},
		{RoleAdmin, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.CanPublish(), "role %s", tt.role)
	}
}

func TestRegistrableRoles_ExcludeAdmin(t *testing.T) {
	assert.NotContains(t, RegistrableRoles, RoleAdmin)
	assert.Len(t, RegistrableRoles, 4)
}
