package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// AuthClient implements ports.AuthAPI against the external user endpoints.
type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token exchanges credentials at the form-encoded token endpoint.
func (c *AuthClient) Token(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp tokenResponse
	if err := c.doForm(ctx, "log in", "/users/token", form, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &domain.FetchError{Op: "log in", Message: "token missing from response"}
	}
	return resp.AccessToken, nil
}

// Me fetches the profile behind a bearer token.
func (c *AuthClient) Me(ctx context.Context, token string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.doJSON(ctx, "fetch profile", http.MethodGet, "/users/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *AuthClient) Register(ctx context.Context, email, username, password string) (*domain.Profile, error) {
	var profile domain.Profile
	req := registerRequest{Email: email, Username: username, Password: password}
	if err := c.doJSON(ctx, "register", http.MethodPost, "/users/register", "", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *AuthClient) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, "request password reset", http.MethodPost, "/users/request-password-reset", "", body, nil)
}

func (c *AuthClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return c.doJSON(ctx, "reset password", http.MethodPost, "/users/reset-password", "", body, nil)
}
