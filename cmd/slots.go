package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/application"
	"github.com/mfekete/roomctl/internal/domain"
)

func newSlotsCmd(app *app) *cobra.Command {
	var (
		roomID int64
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List available timeslots for a room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureScreen(cmd, app, application.ScreenProtected); err != nil {
				return err
			}

			var slots []domain.Timeslot
			fetch := func(ctx context.Context) error {
				if all {
					var err error
					slots, err = app.api.ListRoomTimeslots(ctx, domain.RoomID(roomID))
					return err
				}
				if err := app.booking.SelectRoom(ctx, domain.RoomID(roomID)); err != nil {
					return err
				}
				slots = app.booking.Slots()
				return nil
			}

			if err := runFetch(cmd, "Loading timeslots...", fetch); err != nil {
				if msg := app.booking.ErrorMessage(); !all && msg != "" {
					return errors.New(msg)
				}
				return fmt.Errorf("list timeslots: %w", err)
			}

			output, err := app.timeslotsRenderer(roomLabel(cmd.Context(), app, domain.RoomID(roomID)), slots)
			if err != nil {
				return fmt.Errorf("render timeslots: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().Int64Var(&roomID, "room", 0, "Room ID")
	cmd.Flags().BoolVar(&all, "all", false, "Include timeslots that are already booked")
	_ = cmd.MarkFlagRequired("room")

	return cmd
}

// roomLabel resolves the room's display name, falling back to its id when
// the room list cannot be fetched.
func roomLabel(ctx context.Context, app *app, roomID domain.RoomID) string {
	rooms, err := app.api.ListRooms(ctx)
	if err != nil {
		app.logger.Debug("room name lookup failed", "room_id", roomID, "error", err)
		return fmt.Sprintf("room %d", roomID)
	}

	for _, room := range rooms {
		if room.ID == roomID {
			return room.Name
		}
	}

	return fmt.Sprintf("room %d", roomID)
}
