package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/guard"
	"github.com/Leestalion/quittance/internal/models"
)

func orgsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations"},
		Short:   "Manage landlord organizations and their members",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the organizations you belong to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.Organizations.Fetch("")
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(items))
			for _, o := range items {
				rows = append(rows, []string{o.ID, o.Name, o.LegalForm, deref(o.Siret)})
			}
			return table(cmd.OutOrStdout(), []string{"ID", "NAME", "FORM", "SIRET"}, rows)
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an organization and its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := app.Organizations.FetchOrganization(args[0])
			if err != nil {
				return err
			}
			return printOrganization(cmd, org)
		},
	}

	var req dto.CreateOrganization
	var siret, phone, email string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an organization you own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Siret = optional(siret)
			req.Phone = optional(phone)
			req.Email = optional(email)
			o, err := app.Organizations.Create(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), o.ID)
			return nil
		},
	}
	f := create.Flags()
	f.StringVar(&req.Name, "name", "", "organization name")
	f.StringVar(&req.LegalForm, "legal-form", "SCI", "legal form")
	f.StringVar(&siret, "siret", "", "SIRET number")
	f.StringVar(&req.Address, "address", "", "registered address")
	f.StringVar(&phone, "phone", "", "phone number")
	f.StringVar(&email, "email", "", "contact e-mail")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("address")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Organizations.Delete(args[0])
		},
	}

	var member dto.AddOrganizationMember
	var share float64
	addMember := &cobra.Command{
		Use:   "add-member <org-id>",
		Short: "Add a user to an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("share") {
				member.SharePercentage = &share
			}
			if _, err := app.Organizations.FetchOrganization(args[0]); err != nil {
				return err
			}
			if err := app.Organizations.AddMember(args[0], member); err != nil {
				return err
			}
			org, _ := app.Organizations.Current()
			return printOrganization(cmd, org)
		},
	}
	af := addMember.Flags()
	af.StringVar(&member.UserID, "user", "", "user id")
	af.StringVar(&member.Role, "role", models.MemberRoleMember, "owner or member")
	af.Float64Var(&share, "share", 0, "ownership share in percent")
	_ = addMember.MarkFlagRequired("user")

	removeMember := &cobra.Command{
		Use:   "remove-member <org-id> <member-id>",
		Short: "Remove a member from an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Organizations.RemoveMember(args[0], args[1])
		},
	}

	cmd.AddCommand(
		onRoute(list, guard.Organizations),
		onRoute(show, guard.OrganizationDetail),
		onRoute(create, guard.Organizations),
		onRoute(del, guard.Organizations),
		onRoute(addMember, guard.OrganizationDetail),
		onRoute(removeMember, guard.OrganizationDetail),
	)
	return cmd
}

func printOrganization(cmd *cobra.Command, org models.OrganizationWithMembers) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n%s\n\n", org.Name, org.LegalForm, org.Address)

	rows := make([][]string, 0, len(org.Members))
	for _, m := range org.Members {
		share := "-"
		if m.SharePercentage != nil {
			share = strconv.FormatFloat(*m.SharePercentage, 'f', -1, 64) + "%"
		}
		rows = append(rows, []string{m.ID, m.UserName, m.UserEmail, m.Role, share})
	}
	return table(out, []string{"MEMBER", "NAME", "EMAIL", "ROLE", "SHARE"}, rows)
}
