package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports"
)

type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionHydrating     SessionState = "hydrating"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// Session owns the bearer credential and the authenticated identity. Legal
// transitions: uninitialized → hydrating → {authenticated, anonymous},
// authenticated → anonymous via logout or credential invalidation, and
// anonymous → authenticated via login. Any operation that invalidates the
// credential clears the identity in the same step.
type Session struct {
	api    ports.BookingAPI
	creds  ports.CredentialStore
	logger *slog.Logger

	mu       sync.Mutex
	state    SessionState
	identity *domain.Identity
	hydrated bool
}

func NewSession(api ports.BookingAPI, creds ports.CredentialStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		api:    api,
		creds:  creds,
		logger: logger,
		state:  SessionUninitialized,
	}
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns a copy of the authenticated identity, or nil when
// anonymous.
func (s *Session) Identity() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}

	identity := *s.identity
	return &identity
}

// Hydrate reconstructs the identity from a persisted credential. It runs at
// most once per process lifetime, never fails the caller's flow, and always
// lands in a ready state: authenticated when the whoami chain succeeds,
// anonymous otherwise. Any failure clears the credential so a later hydrate
// cannot resurrect it.
func (s *Session) Hydrate(ctx context.Context) {
	s.mu.Lock()
	if s.hydrated {
		s.mu.Unlock()
		return
	}
	s.hydrated = true
	s.state = SessionHydrating
	s.mu.Unlock()

	credential, err := s.creds.Load(ctx)
	if err != nil || credential.IsZero() {
		if err != nil && !errors.Is(err, domain.ErrNoCredential) {
			s.logger.Warn("load credential failed", "error", err)
		}
		s.settle(SessionAnonymous, nil)
		return
	}

	identity, err := s.whoami(ctx)
	if err != nil {
		s.logger.Debug("hydration failed, clearing credential", "error", err)
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			s.logger.Warn("clear credential failed", "error", clearErr)
		}
		s.settle(SessionAnonymous, nil)
		return
	}

	s.settle(SessionAuthenticated, &identity)
}

func (s *Session) whoami(ctx context.Context) (domain.Identity, error) {
	userID, err := s.api.CheckAuth(ctx)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("check session: %w", err)
	}

	identity, err := s.api.GetUser(ctx, userID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("get user %d: %w", userID, err)
	}

	roles, err := s.api.GetUserRoles(ctx, userID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("get user roles %d: %w", userID, err)
	}
	identity.Roles = roles

	return identity, nil
}

// Login exchanges credentials for a token and a base identity. The token is
// persisted before Login resolves. The follow-up role fetch is best-effort:
// its failure downgrades to a warning and the identity keeps an empty role
// set, so admin gating stays closed until a later hydrate succeeds.
func (s *Session) Login(ctx context.Context, email, password string) error {
	credential, identity, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.creds.Store(ctx, credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	roles, err := s.api.GetUserRoles(ctx, identity.ID)
	if err != nil {
		s.logger.Warn("role fetch after login failed", "user_id", identity.ID, "error", err)
	} else {
		identity.Roles = roles
	}

	s.settle(SessionAuthenticated, &identity)
	return nil
}

// Logout clears the credential and identity locally first, so the session
// reflects the logged-out state immediately and unconditionally, then
// notifies the server best-effort. It never returns an error.
func (s *Session) Logout(ctx context.Context) {
	hadCredential := true
	if _, err := s.creds.Load(ctx); errors.Is(err, domain.ErrNoCredential) {
		hadCredential = false
	}

	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Warn("clear credential failed", "error", err)
	}
	s.settle(SessionAnonymous, nil)

	if !hadCredential {
		return
	}
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Debug("server logout notification failed", "error", err)
	}
}

// Register creates the account server-side without logging the user in.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	if err := s.api.Register(ctx, name, email, password); err != nil {
		return err
	}

	return nil
}

// Invalidate drops the credential and identity after a 401/403 on an
// authenticated call, leaving the session anonymous.
func (s *Session) Invalidate(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Warn("clear credential failed", "error", err)
	}
	s.settle(SessionAnonymous, nil)
}

func (s *Session) settle(state SessionState, identity *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.identity = identity
}
