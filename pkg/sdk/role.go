package sdk

import (
	"fmt"
	"strconv"
	"strings"
)

// Role is a privilege tier. Lower values carry more privilege.
type Role int

const (
	// RoleNone marks a route without a role requirement.
	RoleNone Role = 0
	// RoleAdmin is the most privileged tier.
	RoleAdmin Role = 1
	// RoleAgent can record purchases and sales.
	RoleAgent Role = 2
	// RoleUser is the default tier for registered and anonymous users.
	RoleUser Role = 3
)

// DefaultRole is used whenever a stored role is missing or unreadable.
const DefaultRole = RoleUser

// ParseRole converts a stored role_id value into a Role.
// Absent, non-numeric and non-positive values yield DefaultRole. Values with a
// numeric prefix such as "2abc" are rejected outright rather than read as 2.
func ParseRole(raw string) Role {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < int(RoleAdmin) {
		return DefaultRole
	}
	return Role(n)
}

// RoleFromName accepts either a role name (admin, agent, user) or its number.
func RoleFromName(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admin":
		return RoleAdmin, nil
	case "agent":
		return RoleAgent, nil
	case "user":
		return RoleUser, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(name))
	if err != nil || n < int(RoleAdmin) || n > int(RoleUser) {
		return RoleNone, fmt.Errorf("unknown role %q (expected admin, agent, user or 1-3)", name)
	}
	return Role(n), nil
}

// Satisfies reports whether r may access something that requires min.
// RoleNone as min means no requirement.
func (r Role) Satisfies(min Role) bool {
	if min == RoleNone {
		return true
	}
	return r <= min
}

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleAdmin:
		return "admin"
	case RoleAgent:
		return "agent"
	case RoleUser:
		return "user"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// StorageValue renders r as kept under RoleKey. RoleNone renders empty.
func (r Role) StorageValue() string {
	if r == RoleNone {
		return ""
	}
	return strconv.Itoa(int(r))
}
