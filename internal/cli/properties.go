package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/guard"
	"github.com/Leestalion/quittance/internal/models"
)

func propertiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "properties",
		Aliases: []string{"property"},
		Short:   "List and manage rental properties",
	}
	cmd.AddCommand(
		propertiesListCmd(app),
		propertiesGetCmd(app),
		propertiesCreateCmd(app),
		propertiesDeleteCmd(app),
	)
	return cmd
}

func propertiesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.Properties.Fetch(""); err != nil {
				return err
			}
			if err := storeErr(app.Properties.Err()); err != nil {
				return err
			}
			return printProperties(cmd, app.Properties.Items())
		},
	}
	return onRoute(cmd, guard.Properties)
}

func propertiesGetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one property and its active lease",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Properties.FetchOne(args[0])
			if err != nil {
				return err
			}
			if _, err := app.Leases.Fetch(p.ID); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.Address, p.PropertyType)
			fmt.Fprintf(out, "Furnished: %t  Max occupants: %d\n", p.Furnished, p.MaxOccupants)
			if lease, ok := app.Leases.ActiveLease(p.ID); ok {
				fmt.Fprintf(out, "Active lease %s since %s, rent %s + %s\n",
					lease.ID, lease.StartDate, lease.MonthlyRent, lease.Charges)
			} else {
				fmt.Fprintln(out, "No active lease")
			}
			return nil
		},
	}
	return onRoute(cmd, guard.PropertyDetail)
}

func propertiesCreateCmd(app *App) *cobra.Command {
	var req dto.CreateProperty
	var org, description string
	var surface float64
	var rooms int
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.OrganizationID = optional(org)
			req.Description = optional(description)
			if cmd.Flags().Changed("surface") {
				req.SurfaceArea = &surface
			}
			if cmd.Flags().Changed("rooms") {
				req.Rooms = &rooms
			}
			p, err := app.Properties.Create(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Address, "address", "", "postal address")
	f.StringVar(&req.PropertyType, "type", "", "apartment, house, studio...")
	f.BoolVar(&req.Furnished, "furnished", false, "let furnished")
	f.Float64Var(&surface, "surface", 0, "surface area in square metres")
	f.IntVar(&rooms, "rooms", 0, "number of rooms")
	f.IntVar(&req.MaxOccupants, "max-occupants", 0, "maximum occupants (default 1)")
	f.StringVar(&description, "description", "", "free text")
	f.StringVar(&org, "org", "", "owning organization id")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("type")
	return onRoute(cmd, guard.Properties)
}

func propertiesDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Properties.Delete(args[0])
		},
	}
	return onRoute(cmd, guard.Properties)
}

func printProperties(cmd *cobra.Command, items []models.Property) error {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{p.ID, p.Address, p.PropertyType, strconv.FormatBool(p.Furnished)})
	}
	return table(cmd.OutOrStdout(), []string{"ID", "ADDRESS", "TYPE", "FURNISHED"}, rows)
}
