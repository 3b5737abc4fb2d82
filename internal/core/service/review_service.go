package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

// ReviewService drives the admin review workflow. There is no optimistic
// local update: every successful mutation re-fetches the full admin listing
// so the displayed state always matches the server.
type ReviewService struct {
	resources ports.ResourceAPI
	admin     ports.AdminAPI
	logger    zerolog.Logger
}

func NewReviewService(resources ports.ResourceAPI, admin ports.AdminAPI, logger zerolog.Logger) *ReviewService {
	return &ReviewService{resources: resources, admin: admin, logger: logger}
}

func (s *ReviewService) ListAll(ctx context.Context, token string) ([]domain.Resource, error) {
	return s.resources.ListAll(ctx, token)
}

func (s *ReviewService) ListByStatus(ctx context.Context, token string, status domain.ResourceStatus) ([]domain.Resource, error) {
	if _, err := domain.ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return s.resources.ListByStatus(ctx, token, status)
}

// Approve transitions a pending resource to approved. No reason required.
func (s *ReviewService) Approve(ctx context.Context, token, resourceID string) ([]domain.Resource, error) {
	return s.review(ctx, token, domain.ReviewDecision{ResourceID: resourceID, Status: domain.StatusApproved})
}

// Reject transitions a resource to rejected. The reason is mandatory and is
// checked before any network call is issued.
func (s *ReviewService) Reject(ctx context.Context, token, resourceID, reason string) ([]domain.Resource, error) {
	return s.review(ctx, token, domain.ReviewDecision{ResourceID: resourceID, Status: domain.StatusRejected, Reason: reason})
}

func (s *ReviewService) review(ctx context.Context, token string, decision domain.ReviewDecision) ([]domain.Resource, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	reviewed, err := s.resources.Review(ctx, token, decision)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("resource_id", reviewed.ID).
		Str("status", string(decision.Status)).
		Msg("resource reviewed")

	return s.resources.ListAll(ctx, token)
}

func (s *ReviewService) Create(ctx context.Context, token string, in ports.ResourceInput) ([]domain.Resource, error) {
	if err := validateResourceInput(in); err != nil {
		return nil, err
	}

	created, err := s.resources.Create(ctx, token, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("resource_id", created.ID).Msg("resource created")

	return s.resources.ListAll(ctx, token)
}

func (s *ReviewService) Update(ctx context.Context, token, id string, in ports.ResourceInput) ([]domain.Resource, error) {
	if err := validateResourceInput(in); err != nil {
		return nil, err
	}
	if _, err := s.resources.Update(ctx, token, id, in); err != nil {
		return nil, err
	}
	s.logger.Info().Str("resource_id", id).Msg("resource updated")

	return s.resources.ListAll(ctx, token)
}

// validateResourceInput checks the admin create/update payload before any
// network call. Not every caller passes through the HTTP validator, so the
// category and the optional explicit status are re-checked here.
func validateResourceInput(in ports.ResourceInput) error {
	if !domain.ValidCategory(in.Category) {
		return &domain.ValidationError{Field: "category", Message: "unknown category"}
	}
	if in.Status != "" {
		if _, err := domain.ParseStatus(in.Status); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, token, id string) ([]domain.Resource, error) {
	if err := s.resources.Delete(ctx, token, id); err != nil {
		return nil, err
	}
	s.logger.Info().Str("resource_id", id).Msg("resource deleted")

	return s.resources.ListAll(ctx, token)
}

func (s *ReviewService) ListUsers(ctx context.Context, token string) ([]domain.Profile, error) {
	return s.admin.ListUsers(ctx, token)
}

// SetUserRole changes a user's role to user or admin. A root target is
// refused here, before any mutation is issued, rather than relying on the
// UI hiding the control.
func (s *ReviewService) SetUserRole(ctx context.Context, token, userID string, role string) error {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return err
	}
	if parsed.IsRoot() {
		return &domain.ValidationError{Field: "role", Message: "role elevation to root is not supported"}
	}

	users, err := s.admin.ListUsers(ctx, token)
	if err != nil {
		return err
	}

	var target *domain.Profile
	for i := range users {
		if users[i].ID == userID {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if target.Role.IsRoot() {
		return domain.ErrRootImmutable
	}

	if err := s.admin.SetUserRole(ctx, token, userID, parsed); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Str("role", string(parsed)).Msg("user role updated")
	return nil
}
