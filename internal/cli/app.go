// Package cli is the terminal front end of the client data layer. Each
// command maps to one screen of the rental app and goes through the same
// navigation guard.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Leestalion/quittance/internal/api"
	"github.com/Leestalion/quittance/internal/client"
	"github.com/Leestalion/quittance/internal/guard"
	"github.com/Leestalion/quittance/internal/session"
	"github.com/Leestalion/quittance/internal/stores"
)

// routeKey is the cobra annotation naming the screen a command stands for.
const routeKey = "route"

var (
	ErrSignInRequired  = errors.New("not signed in: run `quittance login` first")
	ErrAlreadySignedIn = errors.New("already signed in: run `quittance logout` first")
)

// App wires every store to one HTTP client and one token slot.
type App struct {
	Auth          *stores.Auth
	Properties    *stores.Properties
	Tenants       *stores.Tenants
	Leases        *stores.Leases
	Receipts      *stores.Receipts
	Organizations *stores.Organizations
	Guard         *guard.Guard
}

func NewApp(c *client.Client, slot *session.Slot) *App {
	auth := stores.NewAuth(api.NewAuth(c), slot)
	return &App{
		Auth:          auth,
		Properties:    stores.NewProperties(api.NewProperties(c)),
		Tenants:       stores.NewTenants(api.NewTenants(c)),
		Leases:        stores.NewLeases(api.NewLeases(c)),
		Receipts:      stores.NewReceipts(api.NewReceipts(c)),
		Organizations: stores.NewOrganizations(api.NewOrganizations(c)),
		Guard:         guard.New(auth),
	}
}

// NewRootCmd builds the command tree. The guard runs before any command
// that carries a route annotation.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "quittance",
		Short:         "Manage rental properties, leases and rent receipts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.enter(cmd.Annotations[routeKey])
		},
	}

	root.AddCommand(
		loginCmd(app),
		registerCmd(app),
		logoutCmd(app),
		whoamiCmd(app),
		propertiesCmd(app),
		tenantsCmd(app),
		leasesCmd(app),
		receiptsCmd(app),
		orgsCmd(app),
	)
	return root
}

func (a *App) enter(routeName string) error {
	if routeName == "" {
		return nil
	}
	route, ok := guard.Named(routeName)
	if !ok {
		return fmt.Errorf("unknown route %q", routeName)
	}

	d := a.Guard.Before(route)
	switch d.Redirect {
	case "":
		return nil
	case guard.LoginPath:
		return ErrSignInRequired
	case guard.DashboardPath:
		return ErrAlreadySignedIn
	default:
		return fmt.Errorf("redirected to %s", d.Redirect)
	}
}

func onRoute(cmd *cobra.Command, routeName string) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[routeKey] = routeName
	return cmd
}

// storeErr surfaces a failure a store swallowed and only kept as its
// display message.
func storeErr(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

func table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
