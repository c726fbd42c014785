package calendar

import (
	"time"

	"github.com/mfekete/roomctl/internal/domain"
)

// Display window for the weekly hour grid, inclusive on both ends.
const (
	FirstHour = 6
	LastHour  = 21
)

// StartOfWeek returns the Monday 00:00 (local) of the week containing ref.
func StartOfWeek(ref time.Time) time.Time {
	offset := (int(ref.Weekday()) + 6) % 7
	day := ref.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, ref.Location())
}

// WeekGrid is the hour-by-day layout of one displayed week. Cells is indexed
// [hour-row][day-column]; a cell may hold several slots, or none.
type WeekGrid struct {
	Days  []time.Time
	Hours []int
	Cells [][][]domain.Slot
}

// BuildWeekGrid distributes slots over the week containing ref. A slot lands
// in the cell whose day matches its start date and whose hour matches its
// start hour; slots outside the display window are dropped.
func BuildWeekGrid(ref time.Time, slots []domain.Slot) WeekGrid {
	start := StartOfWeek(ref)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}

	cells := make([][][]domain.Slot, len(hours))
	for i, hour := range hours {
		cells[i] = make([][]domain.Slot, len(days))
		for j, day := range days {
			cells[i][j] = SlotsAt(slots, day, hour)
		}
	}

	return WeekGrid{Days: days, Hours: hours, Cells: cells}
}

// SlotsAt returns the slots starting on the given day at the given hour.
func SlotsAt(slots []domain.Slot, day time.Time, hour int) []domain.Slot {
	var matched []domain.Slot
	for _, slot := range slots {
		if SameDay(slot.Start, day) && slot.Start.Hour() == hour {
			matched = append(matched, slot)
		}
	}

	return matched
}
