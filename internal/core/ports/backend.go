package ports

import (
	"context"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// AuthAPI is the slice of the external REST backend that issues tokens and
// serves profiles. Implemented by the HTTP adapter; stubbed in tests.
type AuthAPI interface {
	// Token exchanges credentials for a bearer token (form-encoded endpoint).
	Token(ctx context.Context, username, password string) (string, error)
	// Me fetches the profile behind a bearer token.
	Me(ctx context.Context, token string) (*domain.Profile, error)
	Register(ctx context.Context, email, username, password string) (*domain.Profile, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// SuggestInput carries the fields a member may set on a suggestion. Status is
// deliberately absent: suggested resources are always created pending.
type SuggestInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	OfferedBy   string `json:"offered_by" validate:"required"`
	Location    string `json:"location,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ResourceInput is the admin-side create/update payload; unlike a
// suggestion it may carry an explicit status.
type ResourceInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	OfferedBy   string `json:"offered_by" validate:"required"`
	Location    string `json:"location,omitempty"`
	Link        string `json:"link,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}

// ResourceAPI is the resource surface of the external backend. A token is
// attached to every call that has one; the public listing works without it.
type ResourceAPI interface {
	List(ctx context.Context, token string) ([]domain.Resource, error)
	ListAll(ctx context.Context, token string) ([]domain.Resource, error)
	ListByStatus(ctx context.Context, token string, status domain.ResourceStatus) ([]domain.Resource, error)
	Suggest(ctx context.Context, token string, in SuggestInput) (*domain.Resource, error)
	Create(ctx context.Context, token string, in ResourceInput) (*domain.Resource, error)
	Update(ctx context.Context, token, id string, in ResourceInput) (*domain.Resource, error)
	Delete(ctx context.Context, token, id string) error
	Review(ctx context.Context, token string, decision domain.ReviewDecision) (*domain.Resource, error)
}

// AdminAPI is the root-gated user administration surface.
type AdminAPI interface {
	ListUsers(ctx context.Context, token string) ([]domain.Profile, error)
	SetUserRole(ctx context.Context, token, userID string, role domain.Role) error
}
