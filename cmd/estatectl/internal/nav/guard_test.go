package nav

import (
	"testing"

	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoute(t *testing.T, path string) Route {
	t.Helper()
	r, ok := DefaultTable().Lookup(path)
	require.True(t, ok, "route %s", path)
	return r
}

func TestGuard_Scenarios(t *testing.T) {
	g := DefaultGuard()
	anon := sdk.Session{Role: sdk.DefaultRole}

	tests := []struct {
		name    string
		to      string
		session sdk.Session
		want    Outcome
	}{
		{
			name:    "no token on protected route goes to login",
			to:      PathProperties,
			session: anon,
			want:    Outcome{Kind: Redirected, To: PathLogin},
		},
		{
			name:    "no token on admin goes to login before role check",
			to:      PathAdmin,
			session: anon,
			want:    Outcome{Kind: Redirected, To: PathLogin},
		},
		{
			name:    "register is public",
			to:      PathRegister,
			session: anon,
			want:    Outcome{Kind: Allowed, To: PathRegister},
		},
		{
			name:    "login is public",
			to:      PathLogin,
			session: anon,
			want:    Outcome{Kind: Allowed, To: PathLogin},
		},
		{
			name:    "admin allowed for admin",
			to:      PathAdmin,
			session: sdk.Session{Token: "abc", Role: sdk.RoleAdmin},
			want:    Outcome{Kind: Allowed, To: PathAdmin},
		},
		{
			name:    "agent allowed on sales",
			to:      PathSales,
			session: sdk.Session{Token: "abc", Role: sdk.RoleAgent},
			want:    Outcome{Kind: Allowed, To: PathSales},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Evaluate(mustRoute(t, tt.to), Route{}, tt.session)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuard_BlocksInsufficientRole(t *testing.T) {
	got := DefaultGuard().Evaluate(mustRoute(t, PathAdmin), Route{}, sdk.Session{Token: "abc", Role: sdk.RoleUser})
	assert.Equal(t, Blocked, got.Kind)
	assert.Equal(t, PathProperties, got.To)
	assert.Contains(t, got.Reason, "Insufficient privileges")
	assert.Contains(t, got.Reason, PathAdmin)
}

func TestGuard_ThresholdProperty(t *testing.T) {
	g := DefaultGuard()
	roles := []sdk.Role{sdk.RoleAdmin, sdk.RoleAgent, sdk.RoleUser}
	for _, minRole := range roles {
		route := Route{Path: "/x", MinRole: minRole}
		for _, v := range roles {
			got := g.Evaluate(route, Route{}, sdk.Session{Token: "t", Role: v})
			assert.Equal(t, v <= minRole, got.Kind == Allowed, "role %s min %s", v, minRole)
		}
	}
}

func TestGuard_NoMinRoleAllowsEveryone(t *testing.T) {
	g := DefaultGuard()
	for _, v := range []sdk.Role{sdk.RoleAdmin, sdk.RoleAgent, sdk.RoleUser, sdk.Role(9)} {
		got := g.Evaluate(mustRoute(t, PathProperties), Route{}, sdk.Session{Token: "t", Role: v})
		assert.Equal(t, Allowed, got.Kind, "role %s", v)
	}
}

func TestGuard_UnsetRoleIsLeastPrivileged(t *testing.T) {
	g := DefaultGuard()
	// A zero role must not read as more privileged than admin.
	got := g.Evaluate(mustRoute(t, PathAdmin), Route{}, sdk.Session{Token: "t"})
	assert.Equal(t, Blocked, got.Kind)
	assert.Contains(t, got.Reason, "user")

	got = g.Evaluate(mustRoute(t, PathAdmin), Route{}, sdk.SessionFromValues(map[string]string{sdk.TokenKey: "t", sdk.RoleKey: "garbage"}))
	assert.Equal(t, Blocked, got.Kind)
}

func TestGuard_Deterministic(t *testing.T) {
	g := DefaultGuard()
	s := sdk.Session{Token: "t", Role: sdk.RoleAgent}
	first := g.Evaluate(mustRoute(t, PathAdmin), mustRoute(t, PathSales), s)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.Evaluate(mustRoute(t, PathAdmin), Route{}, s))
	}
}
