package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionHydrateWithoutCredential(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.Credential(""), domain.ErrNoCredential)

	session := NewSession(api, creds, testLogger())
	session.Hydrate(context.Background())

	assert.Equal(t, SessionAnonymous, session.State())
	assert.Nil(t, session.Identity())
	// No BookingAPI expectations were set: hydration without a credential
	// settles anonymous without touching the network.
}

func TestSessionHydrateSuccess(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	creds.EXPECT().Load(mock.Anything).Return(domain.Credential("tok-123"), nil)
	api.EXPECT().CheckAuth(mock.Anything).Return(domain.UserID(7), nil)
	api.EXPECT().GetUser(mock.Anything, domain.UserID(7)).Return(domain.Identity{
		ID:    7,
		Name:  "Mara",
		Email: "mara@example.com",
	}, nil)
	api.EXPECT().GetUserRoles(mock.Anything, domain.UserID(7)).Return([]domain.Role{
		{ID: 2, Name: "admin"},
	}, nil)

	session := NewSession(api, creds, testLogger())
	session.Hydrate(context.Background())

	require.Equal(t, SessionAuthenticated, session.State())
	identity := session.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, domain.UserID(7), identity.ID)
	assert.Equal(t, "Mara", identity.Name)
	require.Len(t, identity.Roles, 1)
	assert.True(t, domain.IsAdministrator(identity))
}

func TestSessionHydrateFailureClearsCredential(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	creds.EXPECT().Load(mock.Anything).Return(domain.Credential("expired"), nil)
	api.EXPECT().CheckAuth(mock.Anything).Return(domain.UserID(0), &domain.AuthorizationError{Status: 401, Message: "token expired"})
	creds.EXPECT().Clear(mock.Anything).Return(nil)

	session := NewSession(api, creds, testLogger())
	session.Hydrate(context.Background())

	assert.Equal(t, SessionAnonymous, session.State())
	assert.Nil(t, session.Identity())
}

func TestSessionHydrateRunsOnce(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)
	creds.EXPECT().Load(mock.Anything).Return(domain.Credential(""), domain.ErrNoCredential).Once()

	session := NewSession(api, creds, testLogger())
	session.Hydrate(context.Background())
	session.Hydrate(context.Background())

	assert.Equal(t, SessionAnonymous, session.State())
}

func TestSessionLoginPersistsCredential(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	api.EXPECT().Login(mock.Anything, "mara@example.com", "hunter2").Return(
		domain.Credential("tok-456"),
		domain.Identity{ID: 7, Name: "Mara", Email: "mara@example.com"},
		nil,
	)
	creds.EXPECT().Store(mock.Anything, domain.Credential("tok-456")).Return(nil)
	api.EXPECT().GetUserRoles(mock.Anything, domain.UserID(7)).Return([]domain.Role{{ID: 1, Name: "member"}}, nil)

	session := NewSession(api, creds, testLogger())
	err := session.Login(context.Background(), "mara@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, SessionAuthenticated, session.State())
	identity := session.Identity()
	require.NotNil(t, identity)
	assert.Len(t, identity.Roles, 1)
}

func TestSessionLoginFailureLeavesNoCredential(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	api.EXPECT().Login(mock.Anything, "mara@example.com", "wrong").Return(
		domain.Credential(""), domain.Identity{},
		&domain.AuthenticationError{Message: "invalid email or password"},
	)

	session := NewSession(api, creds, testLogger())
	err := session.Login(context.Background(), "mara@example.com", "wrong")

	var authErr *domain.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Nil(t, session.Identity())
	// No Store expectation: a rejected login must not persist anything, so a
	// later hydrate resolves anonymous without a network round trip.

	creds.EXPECT().Load(mock.Anything).Return(domain.Credential(""), domain.ErrNoCredential)
	session.Hydrate(context.Background())
	assert.Equal(t, SessionAnonymous, session.State())
}

func TestSessionLoginRoleFetchFailureKeepsIdentity(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	api.EXPECT().Login(mock.Anything, "mara@example.com", "hunter2").Return(
		domain.Credential("tok-789"),
		domain.Identity{ID: 7, Name: "Mara"},
		nil,
	)
	creds.EXPECT().Store(mock.Anything, domain.Credential("tok-789")).Return(nil)
	api.EXPECT().GetUserRoles(mock.Anything, domain.UserID(7)).Return(nil, &domain.NetworkError{Err: errors.New("connection refused")})

	session := NewSession(api, creds, testLogger())
	err := session.Login(context.Background(), "mara@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, SessionAuthenticated, session.State())
	identity := session.Identity()
	require.NotNil(t, identity)
	assert.Empty(t, identity.Roles)
	assert.False(t, domain.IsAdministrator(identity))
}

func TestSessionLogoutIsLocalFirst(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	creds.EXPECT().Load(mock.Anything).Return(domain.Credential("tok-123"), nil)
	creds.EXPECT().Clear(mock.Anything).Return(nil)
	api.EXPECT().Logout(mock.Anything).Return(&domain.NetworkError{Err: errors.New("server unreachable")})

	session := NewSession(api, creds, testLogger())
	session.Logout(context.Background())

	// Server notification failed, but the session is logged out regardless.
	assert.Equal(t, SessionAnonymous, session.State())
	assert.Nil(t, session.Identity())
}

func TestSessionLogoutWithoutCredentialSkipsServer(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	creds.EXPECT().Load(mock.Anything).Return(domain.Credential(""), domain.ErrNoCredential)
	creds.EXPECT().Clear(mock.Anything).Return(nil)

	session := NewSession(api, creds, testLogger())
	session.Logout(context.Background())

	assert.Equal(t, SessionAnonymous, session.State())
}

func TestSessionRegisterDoesNotLogIn(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	api.EXPECT().Register(mock.Anything, "Mara", "mara@example.com", "hunter2").Return(nil)

	session := NewSession(api, creds, testLogger())
	err := session.Register(context.Background(), "Mara", "mara@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, SessionUninitialized, session.State())
	assert.Nil(t, session.Identity())
}

func TestSessionInvalidate(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	creds := mocks.NewMockCredentialStore(t)

	api.EXPECT().Login(mock.Anything, "mara@example.com", "hunter2").Return(
		domain.Credential("tok-1"), domain.Identity{ID: 7}, nil,
	)
	creds.EXPECT().Store(mock.Anything, domain.Credential("tok-1")).Return(nil)
	api.EXPECT().GetUserRoles(mock.Anything, domain.UserID(7)).Return(nil, nil)
	creds.EXPECT().Clear(mock.Anything).Return(nil)

	session := NewSession(api, creds, testLogger())
	require.NoError(t, session.Login(context.Background(), "mara@example.com", "hunter2"))
	require.Equal(t, SessionAuthenticated, session.State())

	session.Invalidate(context.Background())

	assert.Equal(t, SessionAnonymous, session.State())
	assert.Nil(t, session.Identity())
}
