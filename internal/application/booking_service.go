package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports"
)

// Fallback texts shown when the server reports a failure without a message.
const (
	msgBookingCreated    = "Booking created."
	msgBookingCancelled  = "Booking cancelled."
	msgCreateFailed      = "Could not create the booking."
	msgCancelFailed      = "Could not cancel the booking."
	msgLoadSlotsFailed   = "Could not load available timeslots."
	msgLoadBookingFailed = "Could not load bookings."
)

// Fetch keys for the gate; one per reference entity driving a fetch.
const (
	fetchKeySlots    = "available-slots"
	fetchKeyBookings = "user-bookings"
)

// BookingService orchestrates booking mutations against displayed view
// state. Mutations never insert locally: on success the affected collection
// is refetched so the display always reflects server-side truth. Success and
// error messages are transient, mutually exclusive, and reset at the start
// of every mutation attempt.
type BookingService struct {
	api    ports.BookingAPI
	gate   *FetchGate
	logger *slog.Logger

	mu           sync.Mutex
	successMsg   string
	errorMsg     string
	selectedRoom domain.RoomID
	slots        []domain.Timeslot
	slotsLoaded  bool
	bookings     []domain.Booking
}

func NewBookingService(api ports.BookingAPI, logger *slog.Logger) *BookingService {
	if logger == nil {
		logger = slog.Default()
	}

	return &BookingService{
		api:    api,
		gate:   NewFetchGate(),
		logger: logger,
	}
}

// SelectRoom switches the displayed room and fetches its available
// timeslots. If the selection changes again while the fetch is in flight,
// the stale response is discarded instead of overwriting the newer room's
// slots.
func (s *BookingService) SelectRoom(ctx context.Context, roomID domain.RoomID) error {
	s.mu.Lock()
	s.selectedRoom = roomID
	s.mu.Unlock()

	return s.fetchSlots(ctx, roomID)
}

// RefreshSlots refetches the available timeslots for the currently selected
// room.
func (s *BookingService) RefreshSlots(ctx context.Context) error {
	s.mu.Lock()
	roomID := s.selectedRoom
	s.mu.Unlock()

	if roomID == 0 {
		return nil
	}

	return s.fetchSlots(ctx, roomID)
}

func (s *BookingService) fetchSlots(ctx context.Context, roomID domain.RoomID) error {
	generation := s.gate.Begin(fetchKeySlots)

	slots, err := s.api.ListAvailableTimeslots(ctx, roomID)
	if !s.gate.Admit(fetchKeySlots, generation) {
		// Superseded by a newer selection; drop result and error alike.
		return nil
	}
	if err != nil {
		s.setError(domain.ServerMessage(err), msgLoadSlotsFailed)
		return err
	}

	s.mu.Lock()
	s.slots = slots
	s.slotsLoaded = true
	s.mu.Unlock()

	return nil
}

// LoadBookings fetches the user's booking list. Without a user id (identity
// not yet resolved) the list is treated as empty: no fetch, no error.
func (s *BookingService) LoadBookings(ctx context.Context, userID domain.UserID) error {
	if userID == 0 {
		s.mu.Lock()
		s.bookings = nil
		s.mu.Unlock()
		return nil
	}

	generation := s.gate.Begin(fetchKeyBookings)

	bookings, err := s.api.ListUserBookings(ctx, userID)
	if !s.gate.Admit(fetchKeyBookings, generation) {
		return nil
	}
	if err != nil {
		s.setError(domain.ServerMessage(err), msgLoadBookingFailed)
		return err
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()

	return nil
}

// Create books the timeslot for the user. On success it sets the success
// message and refetches the available slots so the display reflects the
// server's availability; on failure it surfaces the server's message (or a
// generic fallback) and leaves the displayed slot list untouched. It never
// propagates the failure as an error.
func (s *BookingService) Create(ctx context.Context, userID domain.UserID, timeslotID domain.TimeslotID) {
	s.clearMessages()

	if _, err := s.api.CreateBooking(ctx, userID, timeslotID); err != nil {
		s.setError(domain.ServerMessage(err), msgCreateFailed)
		return
	}

	s.setSuccess(msgBookingCreated)

	if err := s.RefreshSlots(ctx); err != nil {
		s.logger.Warn("refresh slots after booking failed", "error", err)
	}
}

// Cancel cancels the booking and, on success, refetches the user's booking
// list; the displayed state is whatever that refetch returns, never a
// locally patched copy.
func (s *BookingService) Cancel(ctx context.Context, bookingID domain.BookingID, userID domain.UserID) {
	s.clearMessages()

	if _, err := s.api.CancelBooking(ctx, bookingID); err != nil {
		s.setError(domain.ServerMessage(err), msgCancelFailed)
		return
	}

	s.setSuccess(msgBookingCancelled)

	if err := s.LoadBookings(ctx, userID); err != nil {
		s.logger.Warn("refresh bookings after cancel failed", "error", err)
	}
}

// Close tears down the service; any still in-flight fetch is discarded on
// completion.
func (s *BookingService) Close() {
	s.gate.Close()
}

func (s *BookingService) SelectedRoom() domain.RoomID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedRoom
}

func (s *BookingService) Slots() []domain.Timeslot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Timeslot(nil), s.slots...)
}

func (s *BookingService) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Booking(nil), s.bookings...)
}

func (s *BookingService) SuccessMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successMsg
}

func (s *BookingService) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMsg
}

func (s *BookingService) clearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successMsg = ""
	s.errorMsg = ""
}

func (s *BookingService) setSuccess(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successMsg = message
	s.errorMsg = ""
}

func (s *BookingService) setError(message, fallback string) {
	if message == "" {
		message = fallback
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorMsg = message
	s.successMsg = ""
}
