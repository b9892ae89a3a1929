package guard

import (
	"log/slog"

	"github.com/Leestalion/quittance/internal/models"
)

// Authenticator is the slice of the auth store the guard needs.
type Authenticator interface {
	IsAuthenticated() bool
	User() (models.User, bool)
	FetchCurrentUser() error
	Logout()
}

// Decision is the outcome of a navigation check: either proceed, or go to
// Redirect instead.
type Decision struct {
	Redirect string
}

func (d Decision) Proceed() bool { return d.Redirect == "" }

type Guard struct {
	auth Authenticator
}

func New(auth Authenticator) *Guard {
	return &Guard{auth: auth}
}

// Before runs ahead of every navigation. A held token whose user has not
// been loaded yet is resolved first, except on the sign-in screens.
func (g *Guard) Before(to Route) Decision {
	if to.Redirect != "" {
		return Decision{Redirect: to.Redirect}
	}

	signIn := to.Name == Login || to.Name == Register

	if g.auth.IsAuthenticated() && !signIn {
		if _, loaded := g.auth.User(); !loaded {
			if err := g.auth.FetchCurrentUser(); err != nil {
				slog.Warn("navigation blocked: current user unavailable", "route", to.Name, "error", err)
				g.auth.Logout()
				return Decision{Redirect: LoginPath}
			}
		}
	}

	authenticated := g.auth.IsAuthenticated()
	switch {
	case to.RequiresAuth && !authenticated:
		return Decision{Redirect: LoginPath}
	case signIn && authenticated:
		return Decision{Redirect: DashboardPath}
	default:
		return Decision{}
	}
}

// Navigate resolves path and runs Before on the resulting route.
func (g *Guard) Navigate(path string) (Route, Decision) {
	route, _ := Match(path)
	return route, g.Before(route)
}
