package ports

import (
	"context"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// RegisterInput carries the registration form. The confirmation field is
// checked locally; it never reaches the backend.
type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// AuthService wraps login, registration, password reset, and profile
// retrieval against the external API.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Register(ctx context.Context, in RegisterInput) (*domain.Profile, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	// Restore performs the single profile refresh for a persisted token.
	// Any failure means the caller must clear the stored session.
	Restore(ctx context.Context, token string) (*domain.Session, error)
}

// ListFilter selects a slice of the directory. Category equality and the
// query substring match are both case-insensitive; CategoryAll (or empty)
// disables the category filter.
type ListFilter struct {
	Category string
	Query    string
}

// DirectoryService is the visitor-facing browse/search surface.
type DirectoryService interface {
	List(ctx context.Context, token string, filter ListFilter) ([]domain.Resource, error)
	Suggest(ctx context.Context, token string, in SuggestInput) (*domain.Resource, error)
}

// ReviewService drives the admin-side review workflow. Every successful
// mutation returns the re-fetched admin listing so callers never display
// optimistic state.
type ReviewService interface {
	ListAll(ctx context.Context, token string) ([]domain.Resource, error)
	ListByStatus(ctx context.Context, token string, status domain.ResourceStatus) ([]domain.Resource, error)
	Approve(ctx context.Context, token, resourceID string) ([]domain.Resource, error)
	Reject(ctx context.Context, token, resourceID, reason string) ([]domain.Resource, error)
	Create(ctx context.Context, token string, in ResourceInput) ([]domain.Resource, error)
	Update(ctx context.Context, token, id string, in ResourceInput) ([]domain.Resource, error)
	Delete(ctx context.Context, token, id string) ([]domain.Resource, error)
	ListUsers(ctx context.Context, token string) ([]domain.Profile, error)
	SetUserRole(ctx context.Context, token, userID string, role string) error
}
