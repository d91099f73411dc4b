package nav

import (
	"fmt"

	"github.com/estatedesk/estate/pkg/sdk"
)

// Route paths known to estatectl.
const (
	PathRoot       = "/"
	PathLogin      = "/login"
	PathRegister   = "/register"
	PathProperties = "/properties"
	PathPurchases  = "/purchases"
	PathSales      = "/sales"
	PathAdmin      = "/admin"
)

// Route describes a navigable destination.
type Route struct {
	Path string
	Name string
	// MinRole is the least privileged role allowed in. RoleNone means anyone.
	MinRole sdk.Role
	// Redirect sends navigation elsewhere before any checks run.
	Redirect string
}

// Table is an ordered, immutable set of routes.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewTable builds a table. Paths must be unique, as must non-empty names.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	for _, r := range routes {
		if r.Path == "" {
			return nil, fmt.Errorf("route %q has no path", r.Name)
		}
		if _, dup := t.byPath[r.Path]; dup {
			return nil, fmt.Errorf("duplicate route path %s", r.Path)
		}
		if r.Name != "" {
			if _, dup := t.byName[r.Name]; dup {
				return nil, fmt.Errorf("duplicate route name %s", r.Name)
			}
			t.byName[r.Name] = len(t.routes)
		}
		t.byPath[r.Path] = len(t.routes)
		t.routes = append(t.routes, r)
	}
	for _, r := range t.routes {
		if r.Redirect == "" {
			continue
		}
		if _, ok := t.byPath[r.Redirect]; !ok {
			return nil, fmt.Errorf("route %s redirects to unknown path %s", r.Path, r.Redirect)
		}
	}
	return t, nil
}

// DefaultTable is the estatectl route table.
func DefaultTable() *Table {
	t, err := NewTable(
		Route{Path: PathLogin, Name: "login"},
		Route{Path: PathRegister, Name: "register"},
		Route{Path: PathProperties, Name: "properties"},
		Route{Path: PathRoot, Redirect: PathProperties},
		Route{Path: PathPurchases, Name: "purchases", MinRole: sdk.RoleAgent},
		Route{Path: PathSales, Name: "sales", MinRole: sdk.RoleAgent},
		Route{Path: PathAdmin, Name: "admin", MinRole: sdk.RoleAdmin},
	)
	if err != nil {
		panic("nav: invalid default route table: " + err.Error())
	}
	return t
}

// Lookup finds a route by path.
func (t *Table) Lookup(path string) (Route, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// ByName finds a route by name.
func (t *Table) ByName(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}
