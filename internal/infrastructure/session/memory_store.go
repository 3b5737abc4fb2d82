package session

import (
	"context"
	"sync"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// MemoryStore is a map-backed session store for tests and single-node
// development. It ignores TTLs; Redis owns expiry in real deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := sess
	return &clone, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = *sess
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
