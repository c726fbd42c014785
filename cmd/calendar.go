package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/adapters/render/calview"
	"github.com/mfekete/roomctl/internal/application"
	"github.com/mfekete/roomctl/internal/calendar"
	"github.com/mfekete/roomctl/internal/domain"
)

const dateLayout = "2006-01-02"

func newCalendarCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar views of bookings and slots",
	}

	cmd.AddCommand(newCalendarMonthCmd(app), newCalendarWeekCmd(app))

	return cmd
}

func newCalendarMonthCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Month view of your bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := requireIdentity(cmd, app)
			if err != nil {
				return err
			}

			ref, err := resolveDate(date, app.now)
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
				return fmt.Errorf("load bookings: %w", err)
			}

			output, err := app.monthRenderer(ref, app.booking.Bookings(), calview.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render month: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the month to show (YYYY-MM-DD, default today)")

	return cmd
}

func newCalendarWeekCmd(app *app) *cobra.Command {
	var resourceID string
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Week view of a resource's slots with occupancy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureScreen(cmd, app, application.ScreenProtected); err != nil {
				return err
			}

			ref, err := resolveDate(date, app.now)
			if err != nil {
				return err
			}

			from := calendar.StartOfWeek(ref)
			to := from.AddDate(0, 0, 7)

			var slots []domain.Slot
			fetch := func(ctx context.Context) error {
				var fetchErr error
				slots, fetchErr = app.api.ListSlots(ctx, resourceID, from, to)
				return fetchErr
			}
			if err := runFetch(cmd, "Loading slots...", fetch); err != nil {
				return fmt.Errorf("list slots: %w", err)
			}

			output, err := app.weekRenderer(ref, slots)
			if err != nil {
				return fmt.Errorf("render week: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&resourceID, "resource", "", "Resource ID")
	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week to show (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func resolveDate(date string, now func() time.Time) (time.Time, error) {
	if date == "" {
		return now(), nil
	}

	parsed, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", date)
	}

	return parsed, nil
}
