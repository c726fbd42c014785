package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/application"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureScreen(cmd, app, application.ScreenAnonymousOnly); err != nil {
				return err
			}

			if err := app.session.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			identity := app.session.Identity()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", identity.Name)
			return err
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Logout is local-first and never fails; a dead server cannot
			// keep the client logged in.
			app.session.Logout(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}

func newRegisterCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureScreen(cmd, app, application.ScreenAnonymousOnly); err != nil {
				return err
			}

			if err := app.session.Register(cmd.Context(), name, email, password); err != nil {
				return fmt.Errorf("register: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Account created. Log in with `roomctl login`.")
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
