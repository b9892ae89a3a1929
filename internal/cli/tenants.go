package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/guard"
)

func tenantsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant"},
		Short:   "List and manage tenants",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.Tenants.Fetch(""); err != nil {
				return err
			}
			rows := [][]string{}
			for _, t := range app.Tenants.Items() {
				rows = append(rows, []string{t.ID, t.Name, deref(t.Email), deref(t.Phone)})
			}
			return table(cmd.OutOrStdout(), []string{"ID", "NAME", "EMAIL", "PHONE"}, rows)
		},
	}

	var req dto.CreateTenant
	var email, phone, address, birthDate, birthPlace, notes string
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Email = optional(email)
			req.Phone = optional(phone)
			req.Address = optional(address)
			req.BirthDate = optional(birthDate)
			req.BirthPlace = optional(birthPlace)
			req.Notes = optional(notes)
			t, err := app.Tenants.Create(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.ID)
			return nil
		},
	}
	f := create.Flags()
	f.StringVar(&req.Name, "name", "", "full name")
	f.StringVar(&email, "email", "", "e-mail receipts are sent to")
	f.StringVar(&phone, "phone", "", "phone number")
	f.StringVar(&address, "address", "", "postal address")
	f.StringVar(&birthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	f.StringVar(&birthPlace, "birth-place", "", "birth place")
	f.StringVar(&notes, "notes", "", "free text")
	_ = create.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tenants.Delete(args[0])
		},
	}

	cmd.AddCommand(
		onRoute(list, guard.Tenants),
		onRoute(create, guard.Tenants),
		onRoute(del, guard.Tenants),
	)
	return cmd
}
