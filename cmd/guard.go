package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/application"
	"github.com/mfekete/roomctl/internal/domain"
)

var (
	errNotLoggedIn     = errors.New("not logged in: run `roomctl login` first")
	errAlreadyLoggedIn = errors.New("already logged in: run `roomctl logout` first")
	errSessionNotReady = errors.New("session is not ready")
	errAdminOnly       = errors.New("administrator role required")
)

// ensureScreen hydrates the session and gates the command the way a screen
// is gated: commands never run against an unsettled session.
func ensureScreen(cmd *cobra.Command, app *app, screen application.Screen) error {
	app.session.Hydrate(cmd.Context())

	switch application.DecideScreen(app.session.State(), screen) {
	case application.DecisionAllow:
		return nil
	case application.DecisionRedirectLogin:
		return errNotLoggedIn
	case application.DecisionRedirectHome:
		if screen == application.ScreenAnonymousOnly {
			return errAlreadyLoggedIn
		}
		return fmt.Errorf("%s is not available", cmd.CommandPath())
	default:
		return errSessionNotReady
	}
}

// requireIdentity gates on an authenticated session and returns its
// identity.
func requireIdentity(cmd *cobra.Command, app *app) (*domain.Identity, error) {
	if err := ensureScreen(cmd, app, application.ScreenProtected); err != nil {
		return nil, err
	}

	identity := app.session.Identity()
	if identity == nil {
		return nil, errNotLoggedIn
	}

	return identity, nil
}

// requireAdministrator additionally gates on the administrator role. Role
// derivation is fail-open on naming but the command list shown to
// non-admins simply errors here.
func requireAdministrator(cmd *cobra.Command, app *app) (*domain.Identity, error) {
	identity, err := requireIdentity(cmd, app)
	if err != nil {
		return nil, err
	}

	if !domain.IsAdministrator(identity) {
		return nil, errAdminOnly
	}

	return identity, nil
}
