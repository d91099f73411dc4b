package nav

import (
	"errors"
	"fmt"
	"sync"

	"github.com/estatedesk/estate/pkg/sdk"
	"go.uber.org/zap"
)

// maxHops bounds redirect chains so a misconfigured table cannot loop.
const maxHops = 8

var (
	// ErrRouteNotFound is returned when a path is not in the table.
	ErrRouteNotFound = errors.New("route not found")
	// ErrRedirectLoop is returned when redirects do not settle.
	ErrRedirectLoop = errors.New("too many redirects")
)

// Notifier shows user-visible notices such as a blocked transition.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }

// Navigator tracks the current location and applies the guard to every
// transition. A redirect chain records only its final destination, so the
// history never holds a page the user was refused.
type Navigator struct {
	routes   *Table
	guard    Guard
	sessions sdk.SessionStore
	notifier Notifier
	logger   *zap.Logger

	mu      sync.Mutex
	current Route
	history []string
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithNotifier sets where blocked-transition notices go.
func WithNotifier(n Notifier) Option {
	return func(nav *Navigator) { nav.notifier = n }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(nav *Navigator) { nav.logger = l }
}

// NewNavigator creates a Navigator with no current location.
func NewNavigator(routes *Table, guard Guard, sessions sdk.SessionStore, opts ...Option) *Navigator {
	n := &Navigator{
		routes:   routes,
		guard:    guard,
		sessions: sessions,
		notifier: NotifierFunc(func(string) {}),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Navigate moves to path, following route redirects and guard decisions
// until a route is allowed. It returns the route actually reached.
func (n *Navigator) Navigate(path string) (Route, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.current
	target := path
	for hop := 0; hop < maxHops; hop++ {
		to, ok := n.routes.Lookup(target)
		if !ok {
			return Route{}, fmt.Errorf("%w: %s", ErrRouteNotFound, target)
		}
		if to.Redirect != "" {
			target = to.Redirect
			continue
		}

		outcome := n.guard.Evaluate(to, from, n.sessions.Session())
		n.logger.Debug("navigation",
			zap.String("from", from.Path),
			zap.String("to", to.Path),
			zap.Stringer("outcome", outcome.Kind),
			zap.String("next", outcome.To),
		)

		switch outcome.Kind {
		case Allowed:
			n.enter(to, false)
			return to, nil
		case Blocked:
			n.notifier.Notify(outcome.Reason)
		}
		target = outcome.To
	}
	return Route{}, fmt.Errorf("%w navigating to %s", ErrRedirectLoop, path)
}

// ForceLogin replaces the current location with the login route without
// consulting the guard. Calling it while already on the login route does
// nothing.
func (n *Navigator) ForceLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current.Path == n.guard.LoginPath {
		return
	}
	login, ok := n.routes.Lookup(n.guard.LoginPath)
	if !ok {
		login = Route{Path: n.guard.LoginPath}
	}
	n.logger.Debug("forced navigation", zap.String("from", n.current.Path), zap.String("to", login.Path))
	n.enter(login, true)
}

// Current returns the current location. The zero Route means none yet.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// History returns the visited paths, oldest first.
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}

// Routes exposes the route table.
func (n *Navigator) Routes() *Table {
	return n.routes
}

// Guard exposes the guard in use.
func (n *Navigator) Guard() Guard {
	return n.guard
}

// enter moves to r, pushing a history entry or replacing the current one.
func (n *Navigator) enter(r Route, replace bool) {
	n.current = r
	if replace && len(n.history) > 0 {
		n.history[len(n.history)-1] = r.Path
		return
	}
	n.history = append(n.history, r.Path)
}
