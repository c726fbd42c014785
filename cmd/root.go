package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "roomctl",
		Short:         "Room booking CLI: browse rooms, book timeslots, manage your bookings",
		Long:          "roomctl talks to a room booking server from the terminal: log in, browse rooms and available timeslots, book and cancel, and view your bookings as lists or calendars.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newRoomsCmd(app),
		newSlotsCmd(app),
		newBookCmd(app),
		newCancelCmd(app),
		newBookingsCmd(app),
		newCalendarCmd(app),
		newAdminCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
