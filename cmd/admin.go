package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/domain"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator views",
	}

	cmd.AddCommand(newAdminBookingsCmd(app), newAdminLogsCmd(app))

	return cmd
}

func newAdminBookingsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List every booking on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireAdministrator(cmd, app); err != nil {
				return err
			}

			var bookings []domain.Booking
			fetch := func(ctx context.Context) error {
				var err error
				bookings, err = app.api.ListAllBookings(ctx)
				return err
			}
			if err := runFetch(cmd, "Loading bookings...", fetch); err != nil {
				return fmt.Errorf("list all bookings: %w", err)
			}

			output, err := app.bookingsRenderer("All bookings", bookings)
			if err != nil {
				return fmt.Errorf("render bookings: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newAdminLogsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Show the booking audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireAdministrator(cmd, app); err != nil {
				return err
			}

			var logs []domain.BookingLog
			fetch := func(ctx context.Context) error {
				var err error
				logs, err = app.api.ListBookingLogs(ctx)
				return err
			}
			if err := runFetch(cmd, "Loading booking log...", fetch); err != nil {
				return fmt.Errorf("list booking logs: %w", err)
			}

			output, err := app.logsRenderer(logs)
			if err != nil {
				return fmt.Errorf("render booking logs: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}
