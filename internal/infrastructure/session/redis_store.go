// Package session provides the durable stores behind the gateway's login
// sessions. Sessions survive a gateway restart; what does not survive is the
// profile's validity, which is re-checked once per restored session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

const keyPrefix = "session:"

// persistedSession is the durable form of a session. Only the token is
// written to Redis: a cached profile must never outlive the process that
// validated it, or a revoked token or demoted account would keep its old
// role until the session TTL ran out.
type persistedSession struct {
	Token string `json:"token"`
}

func encodeSession(sess *domain.Session) ([]byte, error) {
	return json.Marshal(persistedSession{Token: sess.Token})
}

func decodeSession(data []byte) (*domain.Session, error) {
	var p persistedSession
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &domain.Session{Token: p.Token}, nil
}

// profileCache remembers the profiles validated in this process lifetime.
// It is deliberately not durable: a restart empties it, which is what forces
// the one-shot revalidation of every restored session.
type profileCache struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

func newProfileCache() *profileCache {
	return &profileCache{profiles: make(map[string]domain.Profile)}
}

// put records a validated profile, or forgets the entry when p is nil.
func (c *profileCache) put(id string, p *domain.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p == nil {
		delete(c.profiles, id)
		return
	}
	c.profiles[id] = *p
}

func (c *profileCache) get(id string) *domain.Profile {
	c.mu.RLock()
	p, ok := c.profiles[id]
	c.mu.RUnlock()
	if !ok {
		return nil
	}
	clone := p
	return &clone
}

func (c *profileCache) drop(id string) {
	c.mu.Lock()
	delete(c.profiles, id)
	c.mu.Unlock()
}

// RedisStore persists sessions in Redis. Key format: session:<id>. The token
// is the only durable state; profiles live in a process-local cache, so a
// session read after a restart comes back with no profile and the resolver
// revalidates the token against the backend exactly once.
type RedisStore struct {
	client    *redis.Client
	ttl       time.Duration
	validated *profileCache
}

// NewRedisStore creates a store whose entries expire after ttl, capped per
// session by the bearer token's own expiry when the token is a readable JWT.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl, validated: newProfileCache()}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	sess, err := decodeSession(data)
	if err != nil {
		// Broken entry: drop it rather than serve it forever.
		_ = s.client.Del(ctx, keyPrefix+id).Err()
		s.validated.drop(id)
		return nil, nil
	}
	sess.User = s.validated.get(id)
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, sess *domain.Session) error {
	data, err := encodeSession(sess)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, data, sessionTTL(sess.Token, s.ttl)).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	s.validated.put(id, sess.User)
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	s.validated.drop(id)
	return nil
}
