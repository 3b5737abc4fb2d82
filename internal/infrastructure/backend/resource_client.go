package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

// ResourceClient implements ports.ResourceAPI against the resource endpoints.
type ResourceClient struct {
	*Client
}

func NewResourceClient(c *Client) *ResourceClient {
	return &ResourceClient{Client: c}
}

// List fetches the public collection. The backend scopes the result by the
// caller's role when a token is attached (anonymous callers see approved
// entries only), so the token is forwarded whenever one exists.
func (c *ResourceClient) List(ctx context.Context, token string) ([]domain.Resource, error) {
	var resources []domain.Resource
	if err := c.doJSON(ctx, "list resources", http.MethodGet, "/resources", token, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *ResourceClient) ListAll(ctx context.Context, token string) ([]domain.Resource, error) {
	var resources []domain.Resource
	if err := c.doJSON(ctx, "list all resources", http.MethodGet, "/resources/admin/all", token, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *ResourceClient) ListByStatus(ctx context.Context, token string, status domain.ResourceStatus) ([]domain.Resource, error) {
	var resources []domain.Resource
	path := "/resources/by-status/" + url.PathEscape(string(status))
	if err := c.doJSON(ctx, "list resources by status", http.MethodGet, path, token, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// Suggest submits a member suggestion. The payload never carries a status;
// the backend forces pending regardless.
func (c *ResourceClient) Suggest(ctx context.Context, token string, in ports.SuggestInput) (*domain.Resource, error) {
	var created domain.Resource
	if err := c.doJSON(ctx, "suggest resource", http.MethodPost, "/resources/suggest", token, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ResourceClient) Create(ctx context.Context, token string, in ports.ResourceInput) (*domain.Resource, error) {
	var created domain.Resource
	if err := c.doJSON(ctx, "create resource", http.MethodPost, "/resources/admin/create", token, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ResourceClient) Update(ctx context.Context, token, id string, in ports.ResourceInput) (*domain.Resource, error) {
	var updated domain.Resource
	path := "/resources/admin/" + url.PathEscape(id)
	if err := c.doJSON(ctx, "update resource", http.MethodPut, path, token, in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *ResourceClient) Delete(ctx context.Context, token, id string) error {
	path := "/resources/admin/" + url.PathEscape(id)
	return c.doJSON(ctx, "delete resource", http.MethodDelete, path, token, nil, nil)
}

type reviewRequest struct {
	Status          domain.ResourceStatus `json:"status"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
}

func (c *ResourceClient) Review(ctx context.Context, token string, decision domain.ReviewDecision) (*domain.Resource, error) {
	var reviewed domain.Resource
	path := "/resources/" + url.PathEscape(decision.ResourceID) + "/review"
	req := reviewRequest{Status: decision.Status, RejectionReason: decision.Reason}
	if err := c.doJSON(ctx, "review resource", http.MethodPut, path, token, req, &reviewed); err != nil {
		return nil, err
	}
	return &reviewed, nil
}
