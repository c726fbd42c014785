// Package calview renders month and week calendars for the terminal.
package calview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfekete/roomctl/internal/calendar"
	"github.com/mfekete/roomctl/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// RenderMonth draws the month containing ref as a Monday-first grid. Days
// with at least one booking are marked; days outside the month are dimmed.
func RenderMonth(ref time.Time, bookings []domain.Booking, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderMonthView(ref, bookings, opts, s)
	})
}

func renderMonthView(ref time.Time, bookings []domain.Booking, opts RenderOptions, s styles) string {
	header := make([]string, 0, len(weekdayHeader))
	for _, day := range weekdayHeader {
		header = append(header, pad(day, 3))
	}

	lines := []string{
		s.title.Render(ref.Format("January 2006")),
		s.header.Render(strings.Join(header, " ")),
	}

	for _, week := range calendar.MonthGrid(ref) {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, renderMonthCell(cell, bookings, opts, s))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	lines = append(lines, s.empty.Render("* day has a booking"))
	lines = append(lines, renderDayDetail(ref, bookings, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderDayDetail lists the bookings on the reference day under the grid.
func renderDayDetail(ref time.Time, bookings []domain.Booking, s styles) []string {
	onDay := calendar.BookingsOn(bookings, ref)
	if len(onDay) == 0 {
		return nil
	}

	lines := make([]string, 0, len(onDay)+1)
	lines = append(lines, s.header.Render(ref.Format("Monday, January 2")))
	for _, booking := range onDay {
		room := booking.RoomName
		if room == "" {
			room = fmt.Sprintf("timeslot %d", booking.TimeslotID)
		}
		lines = append(lines, s.day.Render(fmt.Sprintf(
			"%s – %s  %s",
			booking.StartTime.Format("15:04"), booking.EndTime.Format("15:04"), room,
		)))
	}

	return lines
}

func renderMonthCell(cell calendar.Cell, bookings []domain.Booking, opts RenderOptions, s styles) string {
	switch {
	case !cell.InMonth:
		return s.outOfMonth.Render(fmt.Sprintf("%2d ", cell.Date.Day()))
	case calendar.HasBookingOn(bookings, cell.Date):
		return s.booked.Render(fmt.Sprintf("%2d*", cell.Date.Day()))
	case !opts.Now.IsZero() && calendar.SameDay(cell.Date, opts.Now):
		return s.today.Render(fmt.Sprintf("%2d ", cell.Date.Day()))
	default:
		return s.day.Render(fmt.Sprintf("%2d ", cell.Date.Day()))
	}
}

const weekCellWidth = 16

// RenderWeek draws the hour-by-day grid for the week containing ref. Each
// occupied cell shows the slot title and its occupancy; full slots are
// flagged so they are not offered for booking.
func RenderWeek(ref time.Time, slots []domain.Slot) (string, error) {
	return run(func(s styles) string {
		return renderWeekView(ref, slots, s)
	})
}

func renderWeekView(ref time.Time, slots []domain.Slot, s styles) string {
	grid := calendar.BuildWeekGrid(ref, slots)

	start := grid.Days[0]
	end := grid.Days[len(grid.Days)-1]
	lines := []string{
		s.title.Render(fmt.Sprintf("Week %s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))),
	}

	header := make([]string, 0, len(grid.Days)+1)
	header = append(header, pad("", 6))
	for _, day := range grid.Days {
		header = append(header, pad(day.Format("Mon 02"), weekCellWidth))
	}
	lines = append(lines, s.header.Render(strings.Join(header, "")))

	for i, hour := range grid.Hours {
		row := []string{s.hourLabel.Render(pad(fmt.Sprintf("%02d:00", hour), 6))}
		for j := range grid.Days {
			row = append(row, renderWeekCell(grid.Cells[i][j], s))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWeekCell(slots []domain.Slot, s styles) string {
	if len(slots) == 0 {
		return s.empty.Render(pad(".", weekCellWidth))
	}

	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		label := slot.Title
		if label == "" {
			label = "Session"
		}
		text := fmt.Sprintf("%s %d/%d", label, slot.BookedCount, slot.Capacity)
		if slot.Full() {
			parts = append(parts, s.slotFull.Render(pad(text+" FULL", weekCellWidth)))
			continue
		}
		parts = append(parts, s.slot.Render(pad(text, weekCellWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func pad(text string, width int) string {
	if len(text) >= width {
		return text[:width-1] + " "
	}

	return text + strings.Repeat(" ", width-len(text))
}
