package domain

type UserID int64

type RoleID int64

// Credential is the opaque bearer token authorizing API calls. A single slot
// exists per process: presence means "possibly authenticated", absence means
// "definitely unauthenticated".
type Credential string

func (c Credential) IsZero() bool {
	return c == ""
}

type Role struct {
	ID          RoleID
	Name        string
	Description string
}

// Identity is the authenticated user's profile plus the resolved role set.
// Roles stays nil until an explicit role fetch completes; consumers must
// treat an unresolved set as empty.
type Identity struct {
	ID    UserID
	Name  string
	Email string
	Roles []Role
}
