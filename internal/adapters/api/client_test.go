package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storedCredential(t *testing.T, credential domain.Credential) *mocks.MockCredentialStore {
	t.Helper()
	creds := mocks.NewMockCredentialStore(t)
	if credential.IsZero() {
		creds.EXPECT().Load(mock.Anything).Return(domain.Credential(""), domain.ErrNoCredential).Maybe()
	} else {
		creds.EXPECT().Load(mock.Anything).Return(credential, nil).Maybe()
	}
	return creds
}

func TestClientLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"mara@example.com","password":"hunter2"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-123","user":{"user_id":7,"name":"Mara","email":"mara@example.com"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, ""), testLogger())
	credential, identity, err := client.Login(context.Background(), "mara@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, domain.Credential("tok-123"), credential)
	assert.Equal(t, domain.UserID(7), identity.ID)
	assert.Equal(t, "Mara", identity.Name)
}

func TestClientLoginRejectedMapsToAuthenticationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, ""), testLogger())
	_, _, err := client.Login(context.Background(), "mara@example.com", "wrong")

	var authErr *domain.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid email or password", authErr.Message)
}

func TestClientAttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	rooms, err := client.ListRooms(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestClientOmitsBearerWithoutCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, ""), testLogger())
	_, err := client.ListRooms(context.Background())
	require.NoError(t, err)
}

func TestClientUnauthorizedHookFiresOnRejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	invalidated := 0
	client.SetUnauthorizedHook(func(context.Context) { invalidated++ })

	_, err := client.ListRooms(context.Background())

	assert.True(t, domain.IsAuthorizationError(err))
	assert.Equal(t, 1, invalidated)
}

func TestClientUnauthorizedHookSkipsCallsWithoutCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, ""), testLogger())
	client.SetUnauthorizedHook(func(context.Context) {
		t.Error("hook fired for a call that carried no credential")
	})

	_, _, err := client.Login(context.Background(), "mara@example.com", "wrong")

	var authErr *domain.AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestClientUnauthorizedHookIgnoresOtherStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"timeslot already booked"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	client.SetUnauthorizedHook(func(context.Context) {
		t.Error("hook fired for a non-authorization failure")
	})

	_, err := client.CreateBooking(context.Background(), 7, 10)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestClientCheckAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkauth", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok","user":{"user_id":7,"email":"mara@example.com"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	userID, err := client.CheckAuth(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.UserID(7), userID)
}

func TestClientGetUserRoles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/7/roles", r.URL.Path)
		_, _ = w.Write([]byte(`[{"role_id":2,"role_name":"admin","role_desc":"site administration"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	roles, err := client.GetUserRoles(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, domain.RoleID(2), roles[0].ID)
	assert.Equal(t, "admin", roles[0].Name)
}

func TestClientCreateBookingTakesFirstElement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"user_id":7,"timeslot_id":10}`, string(body))

		_, _ = w.Write([]byte(`[{"booking_id":99,"user_id":7,"timeslot_id":10,"status":"booked","created_at":"2026-08-24T09:00:00Z"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	booking, err := client.CreateBooking(context.Background(), 7, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingID(99), booking.ID)
	assert.Equal(t, domain.BookingStatusBooked, booking.Status)
}

func TestClientCreateBookingEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	_, err := client.CreateBooking(context.Background(), 7, 10)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
}

func TestClientCreateBookingConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"timeslot already booked"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	_, err := client.CreateBooking(context.Background(), 7, 10)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "timeslot already booked", conflict.Message)
	assert.Equal(t, "timeslot already booked", domain.ServerMessage(err))
}

func TestClientCancelBookingReturnsMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/99/cancel", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Booking cancelled"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	message, err := client.CancelBooking(context.Background(), 99)

	require.NoError(t, err)
	assert.Equal(t, "Booking cancelled", message)
}

func TestClientListSlotsQuery(t *testing.T) {
	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/slots", r.URL.Path)
		assert.Equal(t, "gym-1", r.URL.Query().Get("resourceId"))
		assert.Equal(t, "2026-08-24T00:00:00Z", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-08-31T00:00:00Z", r.URL.Query().Get("to"))

		_, _ = w.Write([]byte(`[{"id":"s1","start":"2026-08-24T09:00:00Z","end":"2026-08-24T10:00:00Z","title":"Spin","trainerName":"Kata","capacity":10,"bookedCount":10}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
	slots, err := client.ListSlots(context.Background(), "gym-1", from, to)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "s1", slots[0].ID)
	assert.True(t, slots[0].Full())
}

func TestClientStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 is authorization",
			status: http.StatusUnauthorized,
			body:   `{"message":"token expired"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsAuthorizationError(err))
				assert.Equal(t, "token expired", domain.ServerMessage(err))
			},
		},
		{
			name:   "422 is validation",
			status: http.StatusUnprocessableEntity,
			body:   `{"error":"email is required"}`,
			check: func(t *testing.T, err error) {
				var validation *domain.ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, "email is required", validation.Message)
			},
		},
		{
			name:   "500 is remote",
			status: http.StatusInternalServerError,
			body:   `{"message":"database unavailable"}`,
			check: func(t *testing.T, err error) {
				var remote *domain.RemoteError
				require.ErrorAs(t, err, &remote)
				assert.Equal(t, 500, remote.Status)
			},
		},
		{
			name:   "non-json body keeps status",
			status: http.StatusBadGateway,
			body:   `upstream timeout`,
			check: func(t *testing.T, err error) {
				var remote *domain.RemoteError
				require.ErrorAs(t, err, &remote)
				assert.Equal(t, http.StatusBadGateway, remote.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client(), storedCredential(t, "tok-123"), testLogger())
			_, err := client.ListRooms(context.Background())

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClientTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, &http.Client{Timeout: time.Second}, storedCredential(t, ""), testLogger())
	_, err := client.ListRooms(context.Background())

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
}
