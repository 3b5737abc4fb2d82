package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// AdminClient implements ports.AdminAPI against the root-gated user
// administration endpoints.
type AdminClient struct {
	*Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{Client: c}
}

func (c *AdminClient) ListUsers(ctx context.Context, token string) ([]domain.Profile, error) {
	var users []domain.Profile
	if err := c.doJSON(ctx, "list users", http.MethodGet, "/admin/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *AdminClient) SetUserRole(ctx context.Context, token, userID string, role domain.Role) error {
	body := map[string]domain.Role{"role": role}
	path := "/admin/users/" + url.PathEscape(userID) + "/role"
	return c.doJSON(ctx, "update user role", http.MethodPut, path, token, body, nil)
}
