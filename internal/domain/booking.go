package domain

import "time"

type RoomID int64

type TimeslotID int64

type BookingID int64

type Room struct {
	ID        RoomID
	Name      string
	Capacity  int
	CreatedAt time.Time
}

// Timeslot is a bookable interval belonging to a room. The server decides
// which subset counts as "available".
type Timeslot struct {
	ID        TimeslotID
	RoomID    RoomID
	StartTime time.Time
	EndTime   time.Time
}

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a user's reservation of a timeslot. StartTime, EndTime and
// RoomName are denormalized display fields the server may omit; a zero
// StartTime means "not provided".
type Booking struct {
	ID         BookingID
	UserID     UserID
	TimeslotID TimeslotID
	Status     BookingStatus
	CreatedAt  time.Time
	StartTime  time.Time
	EndTime    time.Time
	RoomName   string
}

type BookingLog struct {
	ID        int64
	BookingID BookingID
	Operation string
	CreatedBy UserID
	CreatedAt time.Time
}

// Slot is a generic bookable interval from the resource-slot endpoint,
// carrying live occupancy counts.
type Slot struct {
	ID          string
	Start       time.Time
	End         time.Time
	Title       string
	TrainerName string
	Capacity    int
	BookedCount int
}

// Full reports whether the slot has no remaining capacity. Full slots stay
// visible but must not be offered for booking.
func (s Slot) Full() bool {
	return s.BookedCount >= s.Capacity
}
