// Package router holds the declarative route table of the client and the
// pre-navigation authorization guard evaluated before every transition.
package router

import "strings"

// Route paths. External contract: deep links and bookmarks use these.
const (
	PathHome        = "/"
	PathLogin       = "/auth/login"
	PathRegister    = "/auth/register"
	PathActivate    = "/auth/confirm/:token"
	PathDashboard   = "/dashboard"
	PathGroups      = "/dashboard/link-groups"
	PathGroupCreate = "/dashboard/link-groups/create"
	PathGroupEdit   = "/dashboard/link-groups/edit/:id"
	PathAdmin       = "/admin"
)

// Route names.
const (
	NameHome        = "home"
	NameLogin       = "login"
	NameRegister    = "register"
	NameActivate    = "activate"
	NameDashboard   = "dashboard"
	NameGroups      = "link-groups"
	NameGroupCreate = "link-group-create"
	NameGroupEdit   = "link-group-edit"
	NameAdmin       = "admin-dashboard"
)

// Route is one entry of the route table. Pattern segments starting with ':'
// capture path parameters.
type Route struct {
	Name          string
	Pattern       string
	RequiresAuth  bool
	RequiresAdmin bool
}

// Params are the captured path parameters of a match.
type Params map[string]string

var routes = []Route{
	{Name: NameHome, Pattern: PathHome},
	{Name: NameLogin, Pattern: PathLogin},
	{Name: NameRegister, Pattern: PathRegister},
	{Name: NameActivate, Pattern: PathActivate},
	{Name: NameDashboard, Pattern: PathDashboard, RequiresAuth: true},
	{Name: NameGroups, Pattern: PathGroups, RequiresAuth: true},
	{Name: NameGroupCreate, Pattern: PathGroupCreate, RequiresAuth: true},
	{Name: NameGroupEdit, Pattern: PathGroupEdit, RequiresAuth: true},
	{Name: NameAdmin, Pattern: PathAdmin, RequiresAuth: true, RequiresAdmin: true},
}

// entry routes an authenticated user is bounced away from.
func isEntryRoute(name string) bool {
	return name == NameHome || name == NameLogin || name == NameRegister
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Match finds the route for path and captures its parameters.
func Match(path string) (Route, Params, bool) {
	want := splitPath(path)

	for _, r := range routes {
		segs := splitPath(r.Pattern)
		if len(segs) != len(want) {
			continue
		}

		params := Params{}
		ok := true
		for i, seg := range segs {
			if strings.HasPrefix(seg, ":") {
				params[seg[1:]] = want[i]
				continue
			}
			if seg != want[i] {
				ok = false
				break
			}
		}
		if ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// Resolve matches path, falling back to the home route for unknown paths.
func Resolve(path string) (Route, Params) {
	if r, params, ok := Match(path); ok {
		return r, params
	}
	home, _, _ := Match(PathHome)
	return home, Params{}
}
