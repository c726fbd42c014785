package ports

import (
	"context"
	"time"

	"github.com/mfekete/roomctl/internal/domain"
)

// BookingAPI maps domain operations one-to-one onto the remote booking API.
// Implementations attach the current credential as a bearer token when one
// exists, normalize failures into the domain error taxonomy, and carry no
// retry or caching logic of their own.
type BookingAPI interface {
	Login(ctx context.Context, email, password string) (domain.Credential, domain.Identity, error)
	Logout(ctx context.Context) error
	CheckAuth(ctx context.Context) (domain.UserID, error)
	Register(ctx context.Context, name, email, password string) error
	GetUser(ctx context.Context, id domain.UserID) (domain.Identity, error)
	GetUserRoles(ctx context.Context, id domain.UserID) ([]domain.Role, error)

	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListRoomTimeslots(ctx context.Context, roomID domain.RoomID) ([]domain.Timeslot, error)
	ListAvailableTimeslots(ctx context.Context, roomID domain.RoomID) ([]domain.Timeslot, error)
	ListSlots(ctx context.Context, resourceID string, from, to time.Time) ([]domain.Slot, error)

	CreateBooking(ctx context.Context, userID domain.UserID, timeslotID domain.TimeslotID) (domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID domain.BookingID) (string, error)
	ListUserBookings(ctx context.Context, userID domain.UserID) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	ListBookingLogs(ctx context.Context) ([]domain.BookingLog, error)
}
