package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

type stubAdminAPI struct {
	users      []domain.Profile
	setRoleErr error

	setRoleCalls int
	lastUserID   string
	lastRole     domain.Role
}

func (s *stubAdminAPI) ListUsers(_ context.Context, _ string) ([]domain.Profile, error) {
	return s.users, nil
}

func (s *stubAdminAPI) SetUserRole(_ context.Context, _ string, userID string, role domain.Role) error {
	s.setRoleCalls++
	s.lastUserID = userID
	s.lastRole = role
	return s.setRoleErr
}

func reviewFixture(t *testing.T) (*ReviewService, *stubResourceAPI, *stubAdminAPI) {
	t.Helper()
	resources := &stubResourceAPI{
		listAll: func(_ context.Context, _ string) ([]domain.Resource, error) {
			return fixedListing(), nil
		},
		review: func(_ context.Context, _ string, d domain.ReviewDecision) (*domain.Resource, error) {
			return &domain.Resource{ID: d.ResourceID, Status: d.Status, RejectionReason: d.Reason}, nil
		},
	}
	admin := &stubAdminAPI{
		users: []domain.Profile{
			{ID: "u1", Username: "alice", Role: domain.RoleUser},
			{ID: "u2", Username: "bob", Role: domain.RoleAdmin},
			{ID: "u3", Username: "sysop", Role: domain.RoleRoot},
		},
	}
	return NewReviewService(resources, admin, zerolog.Nop()), resources, admin
}

func TestReviewService_Approve(t *testing.T) {
	svc, resources, _ := reviewFixture(t)

	listing, err := svc.Approve(context.Background(), "tok", "r1")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if resources.reviewCalls != 1 {
		t.Fatalf("expected exactly one review call, got %d", resources.reviewCalls)
	}
	if len(listing) != 2 {
		t.Fatalf("expected refreshed listing after mutation, got %d entries", len(listing))
	}
}

func TestReviewService_Reject_RequiresReason(t *testing.T) {
	svc, resources, _ := reviewFixture(t)

	_, err := svc.Reject(context.Background(), "tok", "r1", "   ")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "rejection_reason" {
		t.Fatalf("expected rejection_reason validation error, got %v", err)
	}
	if resources.reviewCalls != 0 {
		t.Fatalf("empty reason must never issue a network call, got %d", resources.reviewCalls)
	}
}

func TestReviewService_Reject_SendsReason(t *testing.T) {
	svc, resources, _ := reviewFixture(t)

	var got domain.ReviewDecision
	resources.review = func(_ context.Context, _ string, d domain.ReviewDecision) (*domain.Resource, error) {
		got = d
		return &domain.Resource{ID: d.ResourceID, Status: d.Status, RejectionReason: d.Reason}, nil
	}

	if _, err := svc.Reject(context.Background(), "tok", "r1", "duplicate of an existing entry"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if resources.reviewCalls != 1 {
		t.Fatalf("expected exactly one review call, got %d", resources.reviewCalls)
	}
	if got.Status != domain.StatusRejected || got.Reason != "duplicate of an existing entry" {
		t.Fatalf("unexpected decision sent: %+v", got)
	}
}

func TestReviewService_Create_RefetchesListing(t *testing.T) {
	svc, resources, _ := reviewFixture(t)

	fetches := 0
	resources.listAll = func(_ context.Context, _ string) ([]domain.Resource, error) {
		fetches++
		return fixedListing(), nil
	}
	resources.create = func(_ context.Context, _ string, in ports.ResourceInput) (*domain.Resource, error) {
		return &domain.Resource{ID: "new", Name: in.Name, Status: domain.StatusApproved}, nil
	}

	if _, err := svc.Create(context.Background(), "tok", ports.ResourceInput{
		Name: "Legal Aid", Category: "ADMINISTRATIVE", Description: "d", OfferedBy: "o",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if fetches != 1 {
		t.Fatalf("expected one listing refresh after create, got %d", fetches)
	}
}

func TestReviewService_ListByStatus_Validates(t *testing.T) {
	svc, resources, _ := reviewFixture(t)
	resources.byStatus = func(_ context.Context, _ string, status domain.ResourceStatus) ([]domain.Resource, error) {
		return []domain.Resource{{ID: "1", Status: status}}, nil
	}

	if _, err := svc.ListByStatus(context.Background(), "tok", domain.StatusPending); err != nil {
		t.Fatalf("pending listing failed: %v", err)
	}
	if _, err := svc.ListByStatus(context.Background(), "tok", domain.ResourceStatus("archived")); err == nil {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestReviewService_SetUserRole(t *testing.T) {
	svc, _, admin := reviewFixture(t)

	if err := svc.SetUserRole(context.Background(), "tok", "u1", "admin"); err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if admin.setRoleCalls != 1 || admin.lastUserID != "u1" || admin.lastRole != domain.RoleAdmin {
		t.Fatalf("unexpected role call: %+v", admin)
	}
}

func TestReviewService_SetUserRole_RootGuard(t *testing.T) {
	svc, _, admin := reviewFixture(t)

	// Demoting a root user is refused before any mutation is issued.
	if err := svc.SetUserRole(context.Background(), "tok", "u3", "user"); !errors.Is(err, domain.ErrRootImmutable) {
		t.Fatalf("expected ErrRootImmutable, got %v", err)
	}
	if admin.setRoleCalls != 0 {
		t.Fatalf("root demotion must not reach the backend, got %d calls", admin.setRoleCalls)
	}

	// Elevation to root is not exposed at all.
	var ve *domain.ValidationError
	if err := svc.SetUserRole(context.Background(), "tok", "u1", "root"); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for root elevation, got %v", err)
	}

	if err := svc.SetUserRole(context.Background(), "tok", "missing", "admin"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestReviewService_Create_RejectsUnknownStatus(t *testing.T) {
	svc, resources, _ := reviewFixture(t)

	resources.create = func(_ context.Context, _ string, _ ports.ResourceInput) (*domain.Resource, error) {
		t.Fatalf("unknown status must never reach the backend")
		return nil, nil
	}

	_, err := svc.Create(context.Background(), "tok", ports.ResourceInput{
		Name: "Legal Aid", Category: "ADMINISTRATIVE", Description: "d", OfferedBy: "o",
		Status: "archived",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "status" {
		t.Fatalf("expected status validation error, got %v", err)
	}
}

func TestReviewService_Update_RejectsUnknownStatus(t *testing.T) {
	svc, resources, _ := reviewFixture(t)

	resources.update = func(_ context.Context, _, _ string, _ ports.ResourceInput) (*domain.Resource, error) {
		t.Fatalf("unknown status must never reach the backend")
		return nil, nil
	}

	_, err := svc.Update(context.Background(), "tok", "r1", ports.ResourceInput{
		Name: "Legal Aid", Category: "ADMINISTRATIVE", Description: "d", OfferedBy: "o",
		Status: "bogus",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "status" {
		t.Fatalf("expected status validation error, got %v", err)
	}
}

func TestReviewService_Create_AllowsExplicitStatus(t *testing.T) {
	svc, resources, _ := reviewFixture(t)

	var got ports.ResourceInput
	resources.create = func(_ context.Context, _ string, in ports.ResourceInput) (*domain.Resource, error) {
		got = in
		return &domain.Resource{ID: "new", Name: in.Name, Status: domain.StatusPending}, nil
	}

	if _, err := svc.Create(context.Background(), "tok", ports.ResourceInput{
		Name: "Legal Aid", Category: "ADMINISTRATIVE", Description: "d", OfferedBy: "o",
		Status: "pending",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got.Status != "pending" {
		t.Fatalf("explicit status lost: %+v", got)
	}
}
