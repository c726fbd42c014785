package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports/mocks"
)

func TestChainPrefersPrimary(t *testing.T) {
	primary := mocks.NewMockCredentialStore(t)
	fallback := mocks.NewMockCredentialStore(t)
	primary.EXPECT().Load(mock.Anything).Return(domain.Credential("from-primary"), nil)

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	credential, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("from-primary"), credential)
}

func TestChainFallsBackOnPrimaryFailure(t *testing.T) {
	primary := mocks.NewMockCredentialStore(t)
	fallback := mocks.NewMockCredentialStore(t)
	primary.EXPECT().Load(mock.Anything).Return(domain.Credential(""), errors.New("pass command unavailable"))
	fallback.EXPECT().Load(mock.Anything).Return(domain.Credential("from-file"), nil)

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	credential, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("from-file"), credential)
}

func TestChainBothEmptyIsNoCredential(t *testing.T) {
	primary := mocks.NewMockCredentialStore(t)
	fallback := mocks.NewMockCredentialStore(t)
	primary.EXPECT().Load(mock.Anything).Return(domain.Credential(""), domain.ErrNoCredential)
	fallback.EXPECT().Load(mock.Anything).Return(domain.Credential(""), domain.ErrNoCredential)

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestChainSkipsFallbackOnCancelledContext(t *testing.T) {
	primary := mocks.NewMockCredentialStore(t)
	fallback := mocks.NewMockCredentialStore(t)
	primary.EXPECT().Load(mock.Anything).Return(domain.Credential(""), context.Canceled)

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	// No fallback expectation: a cancelled context must not trigger it.
}

func TestChainClearWipesBothBackends(t *testing.T) {
	primary := mocks.NewMockCredentialStore(t)
	fallback := mocks.NewMockCredentialStore(t)
	primary.EXPECT().Clear(mock.Anything).Return(nil)
	fallback.EXPECT().Clear(mock.Anything).Return(nil)

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Clear(context.Background()))
}

func TestChainClearReportsFallbackFailure(t *testing.T) {
	primary := mocks.NewMockCredentialStore(t)
	fallback := mocks.NewMockCredentialStore(t)
	primary.EXPECT().Clear(mock.Anything).Return(nil)
	fallback.EXPECT().Clear(mock.Anything).Return(errors.New("read-only filesystem"))

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	err = store.Clear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback backend clear failed")
}

func TestChainStoreFallsBack(t *testing.T) {
	primary := mocks.NewMockCredentialStore(t)
	fallback := mocks.NewMockCredentialStore(t)
	primary.EXPECT().Store(mock.Anything, domain.Credential("tok")).Return(errors.New("pass command unavailable"))
	fallback.EXPECT().Store(mock.Anything, domain.Credential("tok")).Return(nil)

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Store(context.Background(), "tok"))
}

func TestChainRejectsNilStores(t *testing.T) {
	fallback := mocks.NewMockCredentialStore(t)

	_, err := NewStore(nil, fallback)
	require.Error(t, err)

	_, err = NewStore(fallback, nil)
	require.Error(t, err)
}
