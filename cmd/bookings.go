package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newBookingsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := requireIdentity(cmd, app)
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context) error {
				return app.booking.LoadBookings(ctx, identity.ID)
			}

			if err := runFetch(cmd, "Loading bookings...", fetch); err != nil {
				if msg := app.booking.ErrorMessage(); msg != "" {
					return errors.New(msg)
				}
				return fmt.Errorf("list bookings: %w", err)
			}

			output, err := app.bookingsRenderer("My bookings", app.booking.Bookings())
			if err != nil {
				return fmt.Errorf("render bookings: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}
