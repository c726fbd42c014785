package application

// Screen classifies what a requested screen demands from the session.
type Screen string

const (
	// ScreenProtected requires an authenticated identity.
	ScreenProtected Screen = "protected"
	// ScreenAnonymousOnly is login/register: pointless while authenticated.
	ScreenAnonymousOnly Screen = "anonymous-only"
	// ScreenPublic has no session requirement.
	ScreenPublic Screen = "public"
	// ScreenUnknown is any unrecognized destination.
	ScreenUnknown Screen = "unknown"
)

type Decision string

const (
	DecisionWait          Decision = "wait"
	DecisionAllow         Decision = "allow"
	DecisionRedirectLogin Decision = "redirect-login"
	DecisionRedirectHome  Decision = "redirect-home"
)

// DecideScreen gates a screen on session readiness and authentication state.
// While hydration is pending the only answer is to wait; no redirect happens
// on an unsettled session.
func DecideScreen(state SessionState, screen Screen) Decision {
	if state == SessionUninitialized || state == SessionHydrating {
		return DecisionWait
	}

	switch screen {
	case ScreenProtected:
		if state != SessionAuthenticated {
			return DecisionRedirectLogin
		}
		return DecisionAllow
	case ScreenAnonymousOnly:
		if state == SessionAuthenticated {
			return DecisionRedirectHome
		}
		return DecisionAllow
	case ScreenPublic:
		return DecisionAllow
	default:
		return DecisionRedirectHome
	}
}
