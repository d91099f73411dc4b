package nav

import (
	"fmt"
	"slices"

	"github.com/estatedesk/estate/pkg/sdk"
)

// OutcomeKind classifies a guard decision.
type OutcomeKind int

const (
	// Allowed lets the transition proceed unchanged.
	Allowed OutcomeKind = iota
	// Redirected sends the user to another path without a notice.
	Redirected
	// Blocked refuses the transition, shows Reason, and sends the user to To.
	Blocked
)

func (k OutcomeKind) String() string {
	switch k {
	case Allowed:
		return "allowed"
	case Redirected:
		return "redirected"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of evaluating a transition.
type Outcome struct {
	Kind   OutcomeKind
	To     string
	Reason string
}

// Guard decides whether a session may enter a route.
type Guard struct {
	// PublicPaths skip the authentication check.
	PublicPaths []string
	// LoginPath receives unauthenticated users.
	LoginPath string
	// LandingPath receives users who lack the privilege for a route.
	LandingPath string
}

// DefaultGuard treats login and register as public and lands blocked users on
// the property list.
func DefaultGuard() Guard {
	return Guard{
		PublicPaths: []string{PathLogin, PathRegister},
		LoginPath:   PathLogin,
		LandingPath: PathProperties,
	}
}

// Evaluate decides the transition to `to` for session s. The result depends
// only on its inputs; from is accepted for symmetry with the navigator and is
// not consulted.
func (g Guard) Evaluate(to, from Route, s sdk.Session) Outcome {
	if !g.IsPublic(to.Path) && !s.Authenticated() {
		return Outcome{Kind: Redirected, To: g.LoginPath}
	}

	role := s.Role
	if role < sdk.RoleAdmin {
		role = sdk.DefaultRole
	}
	if !role.Satisfies(to.MinRole) {
		return Outcome{
			Kind:   Blocked,
			To:     g.LandingPath,
			Reason: fmt.Sprintf("Insufficient privileges for %s: requires %s, signed in as %s", to.Path, to.MinRole, role),
		}
	}

	return Outcome{Kind: Allowed, To: to.Path}
}

// IsPublic reports whether path skips the authentication check.
func (g Guard) IsPublic(path string) bool {
	return slices.Contains(g.PublicPaths, path)
}
