package domain

import (
	"errors"
	"fmt"
)

// ErrNoCredential is returned by credential stores when no token is
// persisted.
var ErrNoCredential = errors.New("no credential stored")

// NetworkError normalizes transport and connection failures.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthenticationError reports rejected credentials at login. Message carries
// the server's text for display.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// AuthorizationError reports a 401/403 on an authenticated call, including
// token expiry. Consumers must clear the credential and treat the session as
// anonymous.
type AuthorizationError struct {
	Status  int
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized (status %d): %s", e.Status, e.Message)
}

// ConflictError reports a duplicate registration.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// ValidationError reports input the server rejected as malformed.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input (status %d): %s", e.Status, e.Message)
}

// RemoteError is any other server-reported failure, preserving the server's
// message text for display.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
}

// ServerMessage returns the server-provided message carried by a normalized
// error, or "" when the error carries none (e.g. transport failures).
func ServerMessage(err error) string {
	var authn *AuthenticationError
	if errors.As(err, &authn) {
		return authn.Message
	}

	var authz *AuthorizationError
	if errors.As(err, &authz) {
		return authz.Message
	}

	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Message
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}

	return ""
}

// IsAuthorizationError reports whether err is a normalized 401/403.
func IsAuthorizationError(err error) bool {
	var authz *AuthorizationError
	return errors.As(err, &authz)
}
