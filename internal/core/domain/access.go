package domain

// AccessLevel is the capability a route requires before its handler runs.
type AccessLevel int

const (
	LevelPublic AccessLevel = iota
	LevelAuthenticated
	LevelAdministrator
)

// Decision is the outcome of an access check.
type Decision int

const (
	Allow Decision = iota
	// RedirectToLogin is a navigational outcome, not an error.
	RedirectToLogin
	Unauthorized
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Authorize decides whether a caller holding claims (nil when no session
// resolved) may proceed at the given level.
//
// Authenticated routes send anonymous callers to the login page. Administrator
// routes answer Unauthorized without a session and Forbidden with a session of
// the wrong role, so callers can tell the two apart.
func Authorize(level AccessLevel, claims *Claims) Decision {
	switch level {
	case LevelPublic:
		return Allow
	case LevelAuthenticated:
		if claims == nil {
			return RedirectToLogin
		}
		return Allow
	case LevelAdministrator:
		if claims == nil {
			return Unauthorized
		}
		if !claims.IsAdmin() {
			return Forbidden
		}
		return Allow
	default:
		return Forbidden
	}
}
