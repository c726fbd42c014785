package file

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfekete/roomctl/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "token")
	store := NewStore(path)
	ctx := context.Background()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, domain.ErrNoCredential)

	require.NoError(t, store.Store(ctx, "tok-123"))

	credential, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("tok-123"), credential)

	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	require.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestStoreOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "first"))
	require.NoError(t, store.Store(ctx, "second"))

	credential, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("second"), credential)
}

func TestStoreRejectsEmptyCredential(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))

	require.Error(t, store.Store(context.Background(), ""))
}

func TestStoreFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "token")
	store := NewStore(path)
	require.NoError(t, store.Store(context.Background(), "tok-123"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestStoreLoadTreatsBlankFileAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte(" \n"), 0o600))

	store := NewStore(path)
	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestStoreRespectsCancelledContext(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Store(ctx, "tok"), context.Canceled)
	require.ErrorIs(t, store.Clear(ctx), context.Canceled)
}
