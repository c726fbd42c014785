// Package listing renders rooms, timeslots, bookings and identities as
// terminal lists.
package listing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfekete/roomctl/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// RenderIdentity draws the whoami view: who is logged in and with which
// roles.
func RenderIdentity(identity *domain.Identity) (string, error) {
	return run(func(s styles) string {
		if identity == nil {
			return s.empty.Render("Not logged in.")
		}

		lines := []string{
			s.name.Render(identity.Name),
			s.detail.Render(fmt.Sprintf("email: %s", identity.Email)),
			s.meta.Render(fmt.Sprintf("user id: %d", identity.ID)),
		}

		if len(identity.Roles) == 0 {
			lines = append(lines, s.empty.Render("roles: none"))
		} else {
			names := make([]string, 0, len(identity.Roles))
			for _, role := range identity.Roles {
				names = append(names, role.Name)
			}
			lines = append(lines, s.detail.Render("roles: "+strings.Join(names, ", ")))
		}

		if domain.IsAdministrator(identity) {
			lines = append(lines, s.admin.Render("administrator access"))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderRooms(rooms []domain.Room) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Rooms"),
			s.header.Render(fmt.Sprintf("rooms: %d", len(rooms))),
		}

		if len(rooms) == 0 {
			lines = append(lines, s.empty.Render("No rooms available."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, room := range rooms {
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.name.Render(room.Name),
				s.meta.Render(fmt.Sprintf("  #%d, capacity %d", room.ID, room.Capacity)),
			))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// RenderTimeslots draws available timeslots for one room as bookable rows.
func RenderTimeslots(room string, slots []domain.Timeslot) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render(fmt.Sprintf("Available timeslots – %s", room)),
		}

		if len(slots) == 0 {
			lines = append(lines, s.empty.Render("No available timeslots."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, slot := range slots {
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.detail.Render(fmt.Sprintf("%s – %s", slot.StartTime.Format(timeLayout), slot.EndTime.Format("15:04"))),
				s.meta.Render(fmt.Sprintf("  timeslot %d", slot.ID)),
			))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderBookings(title string, bookings []domain.Booking) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render(title),
			s.header.Render(fmt.Sprintf("bookings: %d", len(bookings))),
		}

		if len(bookings) == 0 {
			lines = append(lines, s.empty.Render("No bookings."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, booking := range bookings {
			lines = append(lines, renderBookingLine(booking, s))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func renderBookingLine(booking domain.Booking, s styles) string {
	when := "time unknown"
	if !booking.StartTime.IsZero() {
		when = fmt.Sprintf("%s – %s", booking.StartTime.Format(timeLayout), booking.EndTime.Format("15:04"))
	}

	room := booking.RoomName
	if room == "" {
		room = fmt.Sprintf("timeslot %d", booking.TimeslotID)
	}

	line := fmt.Sprintf("#%d  %s  %s", booking.ID, room, when)
	if booking.Status == domain.BookingStatusCancelled {
		return s.cancelled.Render(line + "  (cancelled)")
	}

	return s.detail.Render(line)
}

// RenderBookingLogs draws the audit trail of booking operations.
func RenderBookingLogs(logs []domain.BookingLog) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Booking log"),
			s.header.Render(fmt.Sprintf("entries: %d", len(logs))),
		}

		if len(logs) == 0 {
			lines = append(lines, s.empty.Render("No log entries."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, entry := range logs {
			lines = append(lines, s.detail.Render(fmt.Sprintf(
				"%s  booking %d  %s  by user %d",
				entry.CreatedAt.Format(timeLayout), entry.BookingID, entry.Operation, entry.CreatedBy,
			)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}
