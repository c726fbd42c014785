package calview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfekete/roomctl/internal/domain"
)

func TestRenderMonthMarksBookedDays(t *testing.T) {
	ref := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	bookings := []domain.Booking{
		{ID: 99, StartTime: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)},
	}

	output, err := RenderMonth(ref, bookings, RenderOptions{Now: ref})

	require.NoError(t, err)
	assert.Contains(t, output, "August 2026")
	assert.Contains(t, output, "Mo")
	assert.Contains(t, output, "24*")
	assert.NotContains(t, output, "25*")
}

func TestRenderMonthSelectedDayDetail(t *testing.T) {
	ref := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	bookings := []domain.Booking{
		{
			ID:        99,
			RoomName:  "Studio",
			StartTime: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		},
		{ID: 100, StartTime: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)},
	}

	output, err := RenderMonth(ref, bookings, RenderOptions{Now: ref})

	require.NoError(t, err)
	assert.Contains(t, output, "Monday, August 24")
	assert.Contains(t, output, "09:00 – 10:00  Studio")
	// Only the selected day's bookings are detailed.
	assert.NotContains(t, output, "August 25")
}

func TestRenderMonthRowWidth(t *testing.T) {
	output, err := RenderMonth(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), nil, RenderOptions{})
	require.NoError(t, err)

	lines := strings.Split(output, "\n")
	// Title, weekday header, week rows, legend. August 2026 spans six weeks
	// because the 1st falls on a Saturday.
	require.Len(t, lines, 9)
	assert.Contains(t, lines[2], "27")
	assert.Contains(t, lines[2], " 1")
}

func TestRenderWeekPlacesSlots(t *testing.T) {
	ref := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	slots := []domain.Slot{
		{
			ID:          "s1",
			Start:       time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			End:         time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
			Title:       "Spin",
			Capacity:    10,
			BookedCount: 4,
		},
		{
			ID:          "s2",
			Start:       time.Date(2026, 8, 25, 18, 0, 0, 0, time.UTC),
			End:         time.Date(2026, 8, 25, 19, 0, 0, 0, time.UTC),
			Title:       "Yoga",
			Capacity:    8,
			BookedCount: 8,
		},
	}

	output, err := RenderWeek(ref, slots)

	require.NoError(t, err)
	assert.Contains(t, output, "Week Aug 24")
	assert.Contains(t, output, "Spin 4/10")
	assert.Contains(t, output, "Yoga 8/8 FULL")
	assert.Contains(t, output, "06:00")
	assert.Contains(t, output, "21:00")
	assert.NotContains(t, output, "22:00")
}

func TestRenderWeekUntitledSlot(t *testing.T) {
	ref := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	slots := []domain.Slot{
		{ID: "s1", Start: ref.Add(9 * time.Hour), Capacity: 5, BookedCount: 1},
	}

	output, err := RenderWeek(ref, slots)

	require.NoError(t, err)
	assert.Contains(t, output, "Session 1/5")
}
