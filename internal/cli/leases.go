package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/guard"
	"github.com/Leestalion/quittance/internal/models"
)

func leasesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leases",
		Aliases: []string{"lease"},
		Short:   "List and create leases",
	}

	var property string
	list := &cobra.Command{
		Use:   "list",
		Short: "List leases, optionally for one property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.Leases.Fetch(property)
			if err != nil {
				return err
			}
			return printLeases(cmd, items)
		},
	}
	list.Flags().StringVar(&property, "property", "", "property id")

	var req dto.CreateLease
	var rent, charges, deposit float64
	var inventory string
	create := &cobra.Command{
		Use:   "create",
		Short: "Start a lease between a property and a tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.MonthlyRent = models.Euros(rent)
			req.Charges = models.Euros(charges)
			req.Deposit = models.Euros(deposit)
			req.InventoryDate = optional(inventory)
			l, err := app.Leases.Create(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (ends %s)\n", l.ID, deref(l.EndDate))
			return nil
		},
	}
	f := create.Flags()
	f.StringVar(&req.PropertyID, "property", "", "property id")
	f.StringVar(&req.TenantID, "tenant", "", "tenant id")
	f.StringVar(&req.StartDate, "start", "", "start date (YYYY-MM-DD)")
	f.IntVar(&req.DurationMonths, "months", 12, "duration in months")
	f.Float64Var(&rent, "rent", 0, "monthly rent in euros")
	f.Float64Var(&charges, "charges", 0, "monthly charges in euros")
	f.Float64Var(&deposit, "deposit", 0, "security deposit in euros")
	f.BoolVar(&req.RentRevision, "revision", false, "rent is revised yearly")
	f.StringVar(&inventory, "inventory-date", "", "move-in inventory date (YYYY-MM-DD)")
	for _, name := range []string{"property", "tenant", "start", "rent"} {
		_ = create.MarkFlagRequired(name)
	}

	active := &cobra.Command{
		Use:   "active <property-id>",
		Short: "Show the active lease of a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Leases.Fetch(args[0]); err != nil {
				return err
			}
			l, ok := app.Leases.ActiveLease(args[0])
			if !ok {
				return fmt.Errorf("no active lease for property %s", args[0])
			}
			return printLeases(cmd, []models.Lease{l})
		},
	}

	cmd.AddCommand(
		onRoute(list, guard.Properties),
		onRoute(create, guard.GenerateLease),
		onRoute(active, guard.PropertyDetail),
	)
	return cmd
}

func printLeases(cmd *cobra.Command, items []models.Lease) error {
	rows := make([][]string, 0, len(items))
	for _, l := range items {
		rows = append(rows, []string{l.ID, l.PropertyID, l.TenantID, l.StartDate, deref(l.EndDate), l.MonthlyRent.String(), l.Status})
	}
	return table(cmd.OutOrStdout(), []string{"ID", "PROPERTY", "TENANT", "START", "END", "RENT", "STATUS"}, rows)
}
