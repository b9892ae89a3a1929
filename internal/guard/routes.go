// Package guard decides, before every navigation, whether the target route
// may be entered or where the user must be sent instead.
package guard

import "strings"

const (
	Login              = "Login"
	Register           = "Register"
	Dashboard          = "Dashboard"
	Properties         = "Properties"
	PropertyDetail     = "PropertyDetail"
	GenerateLease      = "GenerateLease"
	PrintLease         = "PrintLease"
	GenerateReceipt    = "GenerateReceipt"
	Tenants            = "Tenants"
	Organizations      = "Organizations"
	OrganizationDetail = "OrganizationDetail"
	Profile            = "Profile"
	NotFound           = "NotFound"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
	Redirect     string
}

// Routes lists every screen in match order. The root path only redirects.
var Routes = []Route{
	{Path: "/", Redirect: DashboardPath},
	{Name: Login, Path: LoginPath},
	{Name: Register, Path: "/register"},
	{Name: Dashboard, Path: DashboardPath, RequiresAuth: true},
	{Name: Properties, Path: "/properties", RequiresAuth: true},
	{Name: PropertyDetail, Path: "/properties/:id", RequiresAuth: true},
	{Name: GenerateLease, Path: "/properties/:propertyId/lease/new", RequiresAuth: true},
	{Name: PrintLease, Path: "/properties/:propertyId/lease/:leaseId/print", RequiresAuth: true},
	{Name: GenerateReceipt, Path: "/properties/:propertyId/receipt/new/:leaseId", RequiresAuth: true},
	{Name: Tenants, Path: "/tenants", RequiresAuth: true},
	{Name: Organizations, Path: "/organizations", RequiresAuth: true},
	{Name: OrganizationDetail, Path: "/organizations/:id", RequiresAuth: true},
	{Name: Profile, Path: "/profile", RequiresAuth: true},
}

var notFound = Route{Name: NotFound, Path: "/*"}

// Named returns the route registered under name.
func Named(name string) (Route, bool) {
	if name == NotFound {
		return notFound, true
	}
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Match resolves a concrete path to its route and path parameters. Unknown
// paths resolve to NotFound.
func Match(path string) (Route, map[string]string) {
	segments := split(path)
	for _, r := range Routes {
		if params, ok := matchSegments(split(r.Path), segments); ok {
			return r, params
		}
	}
	return notFound, map[string]string{}
}

func matchSegments(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	params := make(map[string]string)
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if segments[i] == "" {
				return nil, false
			}
			params[name] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
