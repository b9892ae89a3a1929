package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/guard"
	"github.com/Leestalion/quittance/internal/models"
)

func receiptsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "receipts",
		Aliases: []string{"receipt"},
		Short:   "Issue and send rent receipts",
	}

	var lease string
	list := &cobra.Command{
		Use:   "list",
		Short: "List receipts, optionally for one lease",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.Receipts.Fetch(lease)
			if err != nil {
				return err
			}
			return printReceipts(cmd, items)
		},
	}
	list.Flags().StringVar(&lease, "lease", "", "lease id")

	var req dto.CreateReceipt
	var rent, charges float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Issue the receipt of one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.BaseRent = models.Euros(rent)
			req.Charges = models.Euros(charges)
			r, err := app.Receipts.Create(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s total %s\n", r.ID, r.TotalAmount)
			return nil
		},
	}
	f := create.Flags()
	f.StringVar(&req.LeaseID, "lease", "", "lease id")
	f.IntVar(&req.PeriodMonth, "month", 0, "period month (1-12)")
	f.IntVar(&req.PeriodYear, "year", 0, "period year")
	f.Float64Var(&rent, "rent", 0, "rent paid in euros")
	f.Float64Var(&charges, "charges", 0, "charges paid in euros")
	f.StringVar(&req.PaymentDate, "paid-on", "", "payment date (YYYY-MM-DD)")
	for _, name := range []string{"lease", "month", "year", "rent", "paid-on"} {
		_ = create.MarkFlagRequired(name)
	}

	send := &cobra.Command{
		Use:   "send <id>",
		Short: "E-mail a receipt to the tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Receipts.SendReceipt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent at %s.\n", deref(r.EmailSentAt))
			return nil
		},
	}

	pending := &cobra.Command{
		Use:   "pending",
		Short: "List receipts generated but never sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.Receipts.Fetch(""); err != nil {
				return err
			}
			return printReceipts(cmd, app.Receipts.Pending())
		},
	}

	cmd.AddCommand(
		onRoute(list, guard.Dashboard),
		onRoute(create, guard.GenerateReceipt),
		onRoute(send, guard.Dashboard),
		onRoute(pending, guard.Dashboard),
	)
	return cmd
}

func printReceipts(cmd *cobra.Command, items []models.Receipt) error {
	rows := make([][]string, 0, len(items))
	for _, r := range items {
		period := strconv.Itoa(r.PeriodMonth) + "/" + strconv.Itoa(r.PeriodYear)
		rows = append(rows, []string{r.ID, r.LeaseID, period, r.TotalAmount.String(), r.Status})
	}
	return table(cmd.OutOrStdout(), []string{"ID", "LEASE", "PERIOD", "TOTAL", "STATUS"}, rows)
}
