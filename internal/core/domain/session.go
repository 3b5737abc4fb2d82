package domain

// Session holds a bearer token and the profile derived from it.
// Invariant: User is non-nil iff the most recent profile fetch with Token
// succeeded in this process lifetime. A failed fetch clears both together.
type Session struct {
	Token string   `json:"token"`
	User  *Profile `json:"user,omitempty"`
}

// Authenticated reports whether the session carries a validated profile.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// Role returns the session's role, or the empty role for anonymous sessions.
func (s *Session) Role() Role {
	if !s.Authenticated() {
		return ""
	}
	return s.User.Role
}
