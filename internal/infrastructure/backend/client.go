// Package backend is the HTTP adapter for the external community-resources
// REST API. The authoritative copy of every user and resource lives behind
// this API; the adapter only attaches bearer tokens, decodes payloads, and
// translates failures into domain errors.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/api/metrics"
	"github.com/campushub/resource-gateway/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Client holds the shared transport for all backend surfaces.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a backend client with connection pooling. baseURL includes the
// API prefix (e.g. http://localhost:8000/api); deployments vary between
// relative and absolute bases, so it is always configuration.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// Ping checks backend reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, "ping backend", http.MethodGet, "/health", "", nil, nil)
}

// errorDetail is the backend's error envelope.
type errorDetail struct {
	Detail string `json:"detail"`
}

// doJSON issues a request with an optional JSON body and bearer token, and
// decodes a 2xx response into out (when non-nil). Non-2xx responses and
// transport failures become *domain.FetchError carrying the server's detail
// message when one is present.
func (c *Client) doJSON(ctx context.Context, op, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, op, token, out)
}

// doForm issues a form-encoded POST (the token endpoint is OAuth2
// password-flow shaped and rejects JSON).
func (c *Client) doForm(ctx context.Context, op, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, op, "", out)
}

func (c *Client) send(req *http.Request, op, token string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return &domain.FetchError{Op: op, Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(op, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.FetchError{Op: op, StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.FetchError{Op: op, StatusCode: resp.StatusCode, Message: detailMessage(payload, op)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		c.logger.Debug().Str("op", op).Str("body", string(payload)).Msg("undecodable backend response")
		return &domain.FetchError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}

// detailMessage extracts the server's detail string, falling back to a
// generic per-operation message so the caller always has something to show.
func detailMessage(payload []byte, op string) string {
	var envelope errorDetail
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	return "failed to " + op
}
