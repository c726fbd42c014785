// Package api implements the booking server gateway over its JSON HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the booking server. Every error it returns is one of the
// domain error types: transport failures become NetworkError, 401/403 become
// AuthorizationError, 409 ConflictError, 400/422 ValidationError and any
// other non-2xx status RemoteError carrying the server's message when the
// body has one.
type Client struct {
	baseURL string
	http    *http.Client
	creds   ports.CredentialStore
	logger  *slog.Logger

	onUnauthorized func(context.Context)
}

func NewClient(baseURL string, httpClient *http.Client, creds ports.CredentialStore, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		creds:   creds,
		logger:  logger,
	}
}

// SetUnauthorizedHook registers a callback invoked when a request that
// carried the bearer token comes back 401/403: the server no longer honours
// the credential, so the holder can drop it right away instead of replaying
// the failure on every later call. Requests sent without a credential (login,
// registration) never trigger it.
func (c *Client) SetUnauthorizedHook(hook func(context.Context)) {
	c.onUnauthorized = hook
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorBody) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	authenticated := false
	credential, err := c.creds.Load(ctx)
	switch {
	case err == nil && !credential.IsZero():
		request.Header.Set("Authorization", "Bearer "+string(credential))
		authenticated = true
	case err != nil && !errors.Is(err, domain.ErrNoCredential):
		return fmt.Errorf("load credential: %w", err)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return &domain.NetworkError{Err: err}
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return &domain.NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		statusErr := c.statusError(method, path, response.StatusCode, raw)
		if authenticated && c.onUnauthorized != nil && domain.IsAuthorizationError(statusErr) {
			c.onUnauthorized(ctx)
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.RemoteError{Status: response.StatusCode, Message: fmt.Sprintf("malformed response body: %v", err)}
	}

	return nil
}

func (c *Client) statusError(method, path string, status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		c.logger.Debug("non-json error body", "method", method, "path", path, "status", status)
	}
	message := body.text()

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &domain.AuthorizationError{Status: status, Message: message}
	case http.StatusConflict:
		return &domain.ConflictError{Message: message}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &domain.ValidationError{Status: status, Message: message}
	default:
		return &domain.RemoteError{Status: status, Message: message}
	}
}

type wireUser struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  wireUser `json:"user"`
}

// Login exchanges credentials for a bearer token. The server answers a bad
// password with 401, which here means "wrong credentials", not "session
// expired", so it is remapped to AuthenticationError.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Credential, domain.Identity, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var authz *domain.AuthorizationError
		if errors.As(err, &authz) {
			message := authz.Message
			if message == "" {
				message = "invalid email or password"
			}
			return "", domain.Identity{}, &domain.AuthenticationError{Message: message}
		}
		return "", domain.Identity{}, err
	}

	if resp.Token == "" {
		return "", domain.Identity{}, &domain.RemoteError{Status: http.StatusOK, Message: "login response missing token"}
	}

	return domain.Credential(resp.Token), domain.Identity{
		ID:    domain.UserID(resp.User.UserID),
		Name:  resp.User.Name,
		Email: resp.User.Email,
	}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, struct{}{}, nil)
}

type checkAuthResponse struct {
	Message string   `json:"message"`
	User    wireUser `json:"user"`
}

// CheckAuth validates the stored token and returns the id it belongs to.
func (c *Client) CheckAuth(ctx context.Context) (domain.UserID, error) {
	var resp checkAuthResponse
	if err := c.do(ctx, http.MethodPost, "/checkauth", nil, struct{}{}, &resp); err != nil {
		return 0, err
	}

	return domain.UserID(resp.User.UserID), nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.do(ctx, http.MethodPost, "/users", nil, registerRequest{Name: name, Email: email, Password: password}, nil)
}

func (c *Client) GetUser(ctx context.Context, id domain.UserID) (domain.Identity, error) {
	var resp wireUser
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &resp); err != nil {
		return domain.Identity{}, err
	}

	return domain.Identity{
		ID:    domain.UserID(resp.UserID),
		Name:  resp.Name,
		Email: resp.Email,
	}, nil
}

type wireRole struct {
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name"`
	RoleDesc string `json:"role_desc"`
}

func (c *Client) GetUserRoles(ctx context.Context, id domain.UserID) ([]domain.Role, error) {
	var resp []wireRole
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/roles", id), nil, nil, &resp); err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(resp))
	for _, role := range resp {
		roles = append(roles, domain.Role{
			ID:          domain.RoleID(role.RoleID),
			Name:        role.RoleName,
			Description: role.RoleDesc,
		})
	}

	return roles, nil
}

type wireRoom struct {
	RoomID    int64     `json:"room_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var resp []wireRoom
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, nil, &resp); err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, 0, len(resp))
	for _, room := range resp {
		rooms = append(rooms, domain.Room{
			ID:        domain.RoomID(room.RoomID),
			Name:      room.Name,
			Capacity:  room.Capacity,
			CreatedAt: room.CreatedAt,
		})
	}

	return rooms, nil
}

type wireTimeslot struct {
	TimeslotID int64     `json:"timeslot_id"`
	RoomID     int64     `json:"room_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

func decodeTimeslots(resp []wireTimeslot) []domain.Timeslot {
	slots := make([]domain.Timeslot, 0, len(resp))
	for _, slot := range resp {
		slots = append(slots, domain.Timeslot{
			ID:        domain.TimeslotID(slot.TimeslotID),
			RoomID:    domain.RoomID(slot.RoomID),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return slots
}

func (c *Client) ListRoomTimeslots(ctx context.Context, roomID domain.RoomID) ([]domain.Timeslot, error) {
	var resp []wireTimeslot
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d/timeslots", roomID), nil, nil, &resp); err != nil {
		return nil, err
	}

	return decodeTimeslots(resp), nil
}

func (c *Client) ListAvailableTimeslots(ctx context.Context, roomID domain.RoomID) ([]domain.Timeslot, error) {
	var resp []wireTimeslot
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d/available-timeslots", roomID), nil, nil, &resp); err != nil {
		return nil, err
	}

	return decodeTimeslots(resp), nil
}

type wireSlot struct {
	ID          string    `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Title       string    `json:"title"`
	TrainerName string    `json:"trainerName"`
	Capacity    int       `json:"capacity"`
	BookedCount int       `json:"bookedCount"`
}

// ListSlots fetches occupancy-annotated slots for one resource and window.
func (c *Client) ListSlots(ctx context.Context, resourceID string, from, to time.Time) ([]domain.Slot, error) {
	query := url.Values{}
	query.Set("resourceId", resourceID)
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))

	var resp []wireSlot
	if err := c.do(ctx, http.MethodGet, "/slots", query, nil, &resp); err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0, len(resp))
	for _, slot := range resp {
		slots = append(slots, domain.Slot{
			ID:          slot.ID,
			Start:       slot.Start,
			End:         slot.End,
			Title:       slot.Title,
			TrainerName: slot.TrainerName,
			Capacity:    slot.Capacity,
			BookedCount: slot.BookedCount,
		})
	}

	return slots, nil
}

type wireBooking struct {
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	TimeslotID int64     `json:"timeslot_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	RoomName   string    `json:"room_name"`
}

func decodeBooking(b wireBooking) domain.Booking {
	return domain.Booking{
		ID:         domain.BookingID(b.BookingID),
		UserID:     domain.UserID(b.UserID),
		TimeslotID: domain.TimeslotID(b.TimeslotID),
		Status:     domain.BookingStatus(b.Status),
		CreatedAt:  b.CreatedAt,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		RoomName:   b.RoomName,
	}
}

func decodeBookings(resp []wireBooking) []domain.Booking {
	bookings := make([]domain.Booking, 0, len(resp))
	for _, b := range resp {
		bookings = append(bookings, decodeBooking(b))
	}

	return bookings
}

type createBookingRequest struct {
	UserID     int64 `json:"user_id"`
	TimeslotID int64 `json:"timeslot_id"`
}

// CreateBooking books a timeslot. The server answers with an array; the
// first element is the booking that was just created.
func (c *Client) CreateBooking(ctx context.Context, userID domain.UserID, timeslotID domain.TimeslotID) (domain.Booking, error) {
	var resp []wireBooking
	err := c.do(ctx, http.MethodPost, "/bookings", nil, createBookingRequest{
		UserID:     int64(userID),
		TimeslotID: int64(timeslotID),
	}, &resp)
	if err != nil {
		return domain.Booking{}, err
	}
	if len(resp) == 0 {
		return domain.Booking{}, &domain.RemoteError{Status: http.StatusOK, Message: "booking response was empty"}
	}

	return decodeBooking(resp[0]), nil
}

type cancelResponse struct {
	Message string `json:"message"`
}

func (c *Client) CancelBooking(ctx context.Context, bookingID domain.BookingID) (string, error) {
	var resp cancelResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/cancel", bookingID), nil, struct{}{}, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (c *Client) ListUserBookings(ctx context.Context, userID domain.UserID) ([]domain.Booking, error) {
	var resp []wireBooking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/bookings", userID), nil, nil, &resp); err != nil {
		return nil, err
	}

	return decodeBookings(resp), nil
}

func (c *Client) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	var resp []wireBooking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, nil, &resp); err != nil {
		return nil, err
	}

	return decodeBookings(resp), nil
}

type wireBookingLog struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	Operation string    `json:"operation"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) ListBookingLogs(ctx context.Context) ([]domain.BookingLog, error) {
	var resp []wireBookingLog
	if err := c.do(ctx, http.MethodGet, "/booking-logs", nil, nil, &resp); err != nil {
		return nil, err
	}

	logs := make([]domain.BookingLog, 0, len(resp))
	for _, entry := range resp {
		logs = append(logs, domain.BookingLog{
			ID:        entry.ID,
			BookingID: domain.BookingID(entry.BookingID),
			Operation: entry.Operation,
			CreatedBy: domain.UserID(entry.CreatedBy),
			CreatedAt: entry.CreatedAt,
		})
	}

	return logs, nil
}

var _ ports.BookingAPI = (*Client)(nil)
