// Package chain layers two credential stores: a preferred primary and a
// fallback used when the primary cannot serve.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/mfekete/roomctl/internal/adapters/token/file"
	passstore "github.com/mfekete/roomctl/internal/adapters/token/pass"
	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports"
)

type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary ports.CredentialStore, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassFirstWithFileFallback prefers pass(1) and falls back to a plain
// token file when pass is missing or failing.
func NewPassFirstWithFileFallback(passEntry, filePath string) (*Store, error) {
	return NewStore(passstore.NewStore(passEntry), filestore.NewStore(filePath))
}

func (s *Store) Load(ctx context.Context) (domain.Credential, error) {
	credential, err := s.primary.Load(ctx)
	if err == nil {
		return credential, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackCredential, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackCredential, nil
	}
	if errors.Is(err, domain.ErrNoCredential) && errors.Is(fallbackErr, domain.ErrNoCredential) {
		return "", domain.ErrNoCredential
	}

	return "", fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

func (s *Store) Store(ctx context.Context, credential domain.Credential) error {
	err := s.primary.Store(ctx, credential)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Store(ctx, credential)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend store failed: %w; fallback backend store failed: %w", err, fallbackErr)
}

// Clear wipes both backends so a token left in the fallback cannot
// resurrect a session the primary already dropped.
func (s *Store) Clear(ctx context.Context) error {
	err := s.primary.Clear(ctx)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Clear(ctx)
	if err == nil && fallbackErr == nil {
		return nil
	}
	if err != nil && fallbackErr != nil {
		return fmt.Errorf("primary backend clear failed: %w; fallback backend clear failed: %w", err, fallbackErr)
	}
	if err != nil {
		return fmt.Errorf("primary backend clear failed: %w", err)
	}

	return fmt.Errorf("fallback backend clear failed: %w", fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
