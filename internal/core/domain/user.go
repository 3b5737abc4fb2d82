package domain

import "strings"

// Role controls access to administrative operations. Comparisons are
// case-insensitive everywhere; the backend has been observed to return
// mixed-case values.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleRoot  Role = "root"
)

// ParseRole normalises a raw role string. Unknown values are rejected so a
// typo can never grant access by accident.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleRoot:
		return RoleRoot, nil
	}
	return "", &ValidationError{Field: "role", Message: "role must be one of: user, admin, root"}
}

// IsAdmin reports whether the role grants administrative access.
// Root implies admin.
func (r Role) IsAdmin() bool {
	switch Role(strings.ToLower(string(r))) {
	case RoleAdmin, RoleRoot:
		return true
	}
	return false
}

// IsRoot reports whether the role is the root role.
func (r Role) IsRoot() bool {
	return strings.EqualFold(string(r), string(RoleRoot))
}

// Profile models the authenticated user as returned by the profile endpoint.
// It is replaced wholesale on every successful fetch, never partially mutated.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Disabled bool   `json:"disabled,omitempty"`
}

// allowedEmailSuffixes are the institution domains accepted at registration.
var allowedEmailSuffixes = []string{"@yorku.ca", "@my.yorku.ca"}

// ValidateInstitutionEmail checks that an address belongs to one of the
// accepted institution domains. The check runs locally, before any network
// call is made.
func ValidateInstitutionEmail(email string) error {
	lower := strings.ToLower(strings.TrimSpace(email))
	for _, suffix := range allowedEmailSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return nil
		}
	}
	return &ValidationError{
		Field:   "email",
		Message: "email must be a York University address (@yorku.ca or @my.yorku.ca)",
	}
}
