package ports

import (
	"context"

	"github.com/mfekete/roomctl/internal/domain"
)

// CredentialStore persists the single bearer-token slot across process
// restarts. Load returns domain.ErrNoCredential when the slot is empty;
// Clear is idempotent.
type CredentialStore interface {
	Load(ctx context.Context) (domain.Credential, error)
	Store(ctx context.Context, credential domain.Credential) error
	Clear(ctx context.Context) error
}
