package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/guard"
)

func loginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Auth.Login(email, password); err != nil {
				return err
			}
			return printSignedIn(cmd, app)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account e-mail")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return onRoute(cmd, guard.Login)
}

func registerCmd(app *App) *cobra.Command {
	var req dto.RegisterRequest
	var phone, birthDate, birthPlace string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a landlord account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Phone = optional(phone)
			req.BirthDate = optional(birthDate)
			req.BirthPlace = optional(birthPlace)
			if err := app.Auth.Register(req); err != nil {
				return err
			}
			return printSignedIn(cmd, app)
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Email, "email", "", "account e-mail")
	f.StringVar(&req.Password, "password", "", "password, at least 8 characters")
	f.StringVar(&req.Name, "name", "", "full name printed on receipts")
	f.StringVar(&req.Address, "address", "", "postal address printed on receipts")
	f.StringVar(&phone, "phone", "", "phone number")
	f.StringVar(&birthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	f.StringVar(&birthPlace, "birth-place", "", "birth place")
	for _, name := range []string{"email", "password", "name", "address"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return onRoute(cmd, guard.Register)
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Auth.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func whoamiCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, ok := app.Auth.User()
			if !ok {
				return ErrSignInRequired
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintln(out, user.Address)
			return nil
		},
	}
	return onRoute(cmd, guard.Profile)
}

func printSignedIn(cmd *cobra.Command, app *App) error {
	user, _ := app.Auth.User()
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>.\n", user.Name, user.Email)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
