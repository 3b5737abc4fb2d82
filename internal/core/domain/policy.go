package domain

// Decision is the outcome of an access check for a protected page.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToHome:
		return "redirect_to_home"
	}
	return "unknown"
}

// CanAccess decides whether the session may view a page with the given
// requirements. It is pure and total: exactly one decision is produced for
// every input, including a nil session. Both the route guard and the
// navigation capability flags consume this single function so the role check
// cannot drift between the two.
func CanAccess(s *Session, requiresAuth, requiresAdmin bool) Decision {
	if !s.Authenticated() {
		if requiresAuth || requiresAdmin {
			return RedirectToLogin
		}
		return Allow
	}
	if requiresAdmin && !s.Role().IsAdmin() {
		return RedirectToHome
	}
	return Allow
}
