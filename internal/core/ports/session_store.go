package ports

import (
	"context"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// SessionStore persists sessions durably across process restarts. The token
// is the only cross-component shared state; it is written exclusively through
// the auth paths (login, restore, logout).
//
// Get returns (nil, nil) when no session exists for id.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, id string, s *domain.Session) error
	Clear(ctx context.Context, id string) error
}
