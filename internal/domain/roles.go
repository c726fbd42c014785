package domain

import "strings"

const administratorMarker = "admin"

// IsAdministrator reports whether any of the identity's roles names an
// administrator. It is total: a nil identity or an unresolved role set
// answers false rather than erroring, so role-gated callers fail closed
// until roles are actually loaded.
func IsAdministrator(identity *Identity) bool {
	if identity == nil {
		return false
	}

	for _, role := range identity.Roles {
		if strings.Contains(strings.ToLower(role.Name), administratorMarker) {
			return true
		}
	}

	return false
}
