// Package calendar derives display grids from reference dates and fetched
// collections. Everything here is a pure function: same inputs, same grid,
// no I/O.
package calendar

import (
	"time"

	"github.com/mfekete/roomctl/internal/domain"
)

// Cell is one day in a month grid. Out-of-month cells pad the first and last
// rows and are not selectable.
type Cell struct {
	Date    time.Time
	InMonth bool
}

// MonthGrid returns the weeks covering the full calendar month containing
// ref. Weeks begin on Monday; every row has exactly 7 cells, padded at both
// ends with adjacent-month days.
func MonthGrid(ref time.Time) [][]Cell {
	loc := ref.Location()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	// Weekday() counts from Sunday; shift so Monday is column zero.
	offset := (int(first.Weekday()) + 6) % 7
	current := first.AddDate(0, 0, -offset)

	var cells []Cell
	for !current.After(last) || len(cells)%7 != 0 {
		cells = append(cells, Cell{
			Date:    current,
			InMonth: current.Month() == ref.Month() && current.Year() == ref.Year(),
		})
		current = current.AddDate(0, 0, 1)
	}

	rows := make([][]Cell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		rows = append(rows, cells[i:i+7])
	}

	return rows
}

// SameDay reports calendar-date equality (year, month, day) in local time.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BookingsOn filters bookings whose start timestamp falls on the same
// calendar day as day. Bookings without a start timestamp never match.
func BookingsOn(bookings []domain.Booking, day time.Time) []domain.Booking {
	var matched []domain.Booking
	for _, booking := range bookings {
		if booking.StartTime.IsZero() {
			continue
		}
		if SameDay(booking.StartTime, day) {
			matched = append(matched, booking)
		}
	}

	return matched
}

// HasBookingOn reports whether any booking starts on the given day. Used for
// per-cell highlighting.
func HasBookingOn(bookings []domain.Booking, day time.Time) bool {
	for _, booking := range bookings {
		if booking.StartTime.IsZero() {
			continue
		}
		if SameDay(booking.StartTime, day) {
			return true
		}
	}

	return false
}
