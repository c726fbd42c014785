package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/application"
	"github.com/mfekete/roomctl/internal/domain"
)

func newRoomsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List bookable rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureScreen(cmd, app, application.ScreenProtected); err != nil {
				return err
			}

			var rooms []domain.Room
			fetch := func(ctx context.Context) error {
				var err error
				rooms, err = app.api.ListRooms(ctx)
				return err
			}

			if err := runFetch(cmd, "Loading rooms...", fetch); err != nil {
				return fmt.Errorf("list rooms: %w", err)
			}

			output, err := app.roomsRenderer(rooms)
			if err != nil {
				return fmt.Errorf("render rooms: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}
