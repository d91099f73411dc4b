package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"", RoleUser},
		{"abc", RoleUser},
		{"2abc", RoleUser},
		{"0", RoleUser},
		{"-1", RoleUser},
		{"1", RoleAdmin},
		{" 2 ", RoleAgent},
		{"3", RoleUser},
		{"7", Role(7)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.raw))
		})
	}
}

func TestRoleSatisfies(t *testing.T) {
	roles := []Role{RoleAdmin, RoleAgent, RoleUser}
	for _, v := range roles {
		assert.True(t, v.Satisfies(RoleNone), "%s with no requirement", v)
		for _, m := range roles {
			assert.Equal(t, v <= m, v.Satisfies(m), "role %s, min %s", v, m)
		}
	}
}

func TestRoleFromName(t *testing.T) {
	role, err := RoleFromName("Agent")
	require.NoError(t, err)
	assert.Equal(t, RoleAgent, role)

	role, err = RoleFromName("1")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = RoleFromName("owner")
	assert.Error(t, err)
	_, err = RoleFromName("4")
	assert.Error(t, err)
}

func TestRoleStorageValue(t *testing.T) {
	assert.Equal(t, "2", RoleAgent.StorageValue())
	assert.Equal(t, "", RoleNone.StorageValue())
	assert.Equal(t, "admin", RoleAdmin.String())
}
