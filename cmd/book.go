package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/domain"
)

func newBookCmd(app *app) *cobra.Command {
	var timeslotID int64

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a timeslot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := requireIdentity(cmd, app)
			if err != nil {
				return err
			}

			app.booking.Create(cmd.Context(), identity.ID, domain.TimeslotID(timeslotID))
			if msg := app.booking.ErrorMessage(); msg != "" {
				return errors.New(msg)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.booking.SuccessMessage())
			return err
		},
	}

	cmd.Flags().Int64Var(&timeslotID, "timeslot", 0, "Timeslot ID")
	_ = cmd.MarkFlagRequired("timeslot")

	return cmd
}

func newCancelCmd(app *app) *cobra.Command {
	var bookingID int64

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel one of your bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := requireIdentity(cmd, app)
			if err != nil {
				return err
			}

			app.booking.Cancel(cmd.Context(), domain.BookingID(bookingID), identity.ID)
			if msg := app.booking.ErrorMessage(); msg != "" {
				return errors.New(msg)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.booking.SuccessMessage())
			return err
		},
	}

	cmd.Flags().Int64Var(&bookingID, "booking", 0, "Booking ID")
	_ = cmd.MarkFlagRequired("booking")

	return cmd
}
