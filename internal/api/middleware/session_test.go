package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

type stubStore struct {
	sessions map[string]*domain.Session
	saves    int
	clears   int
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubStore) Get(_ context.Context, id string) (*domain.Session, error) {
	return s.sessions[id], nil
}

func (s *stubStore) Save(_ context.Context, id string, sess *domain.Session) error {
	s.saves++
	s.sessions[id] = sess
	return nil
}

func (s *stubStore) Clear(_ context.Context, id string) error {
	s.clears++
	delete(s.sessions, id)
	return nil
}

type stubAuth struct {
	restoreFn    func(ctx context.Context, token string) (*domain.Session, error)
	restoreCalls int
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.Session, error) { return nil, nil }
func (s *stubAuth) Register(context.Context, ports.RegisterInput) (*domain.Profile, error) {
	return nil, nil
}
func (s *stubAuth) RequestPasswordReset(context.Context, string) error  { return nil }
func (s *stubAuth) ResetPassword(context.Context, string, string) error { return nil }
func (s *stubAuth) Restore(ctx context.Context, token string) (*domain.Session, error) {
	s.restoreCalls++
	return s.restoreFn(ctx, token)
}

func resolveRequest(t *testing.T, resolver *SessionResolver, cookie string) (echo.Context, *domain.Session) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "resourcehub_session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved *domain.Session
	handler := resolver.Resolve()(func(c echo.Context) error {
		resolved = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("resolver error: %v", err)
	}
	return c, resolved
}

func TestSessionResolver_NoCookie(t *testing.T) {
	store := newStubStore()
	auth := &stubAuth{restoreFn: func(context.Context, string) (*domain.Session, error) {
		t.Fatalf("restore must not run without a cookie")
		return nil, nil
	}}
	resolver := NewSessionResolver(store, auth, "resourcehub_session", zerolog.Nop())

	if _, resolved := resolveRequest(t, resolver, ""); resolved != nil {
		t.Fatalf("expected anonymous request, got %+v", resolved)
	}
}

func TestSessionResolver_ValidatedSessionPassesThrough(t *testing.T) {
	store := newStubStore()
	store.sessions["s1"] = &domain.Session{Token: "tok", User: &domain.Profile{ID: "1", Username: "alice", Role: domain.RoleUser}}
	auth := &stubAuth{restoreFn: func(context.Context, string) (*domain.Session, error) {
		t.Fatalf("validated session must not be re-restored")
		return nil, nil
	}}
	resolver := NewSessionResolver(store, auth, "resourcehub_session", zerolog.Nop())

	_, resolved := resolveRequest(t, resolver, "s1")
	if !resolved.Authenticated() || resolved.User.Username != "alice" {
		t.Fatalf("unexpected session: %+v", resolved)
	}
}

func TestSessionResolver_RestoresPersistedToken(t *testing.T) {
	// A session that survived a restart has a token but no validated profile.
	store := newStubStore()
	store.sessions["s1"] = &domain.Session{Token: "tok"}
	auth := &stubAuth{restoreFn: func(_ context.Context, token string) (*domain.Session, error) {
		return &domain.Session{Token: token, User: &domain.Profile{ID: "1", Username: "alice", Role: domain.RoleAdmin}}, nil
	}}
	resolver := NewSessionResolver(store, auth, "resourcehub_session", zerolog.Nop())

	_, resolved := resolveRequest(t, resolver, "s1")
	if !resolved.Authenticated() {
		t.Fatalf("expected restored session, got %+v", resolved)
	}
	if auth.restoreCalls != 1 {
		t.Fatalf("expected exactly one restore, got %d", auth.restoreCalls)
	}
	if store.saves != 1 {
		t.Fatalf("restored session must be persisted, saves=%d", store.saves)
	}
}

func TestSessionResolver_InvalidTokenClearsSession(t *testing.T) {
	store := newStubStore()
	store.sessions["s1"] = &domain.Session{Token: "stale"}
	auth := &stubAuth{restoreFn: func(context.Context, string) (*domain.Session, error) {
		return nil, domain.ErrSessionInvalid
	}}
	resolver := NewSessionResolver(store, auth, "resourcehub_session", zerolog.Nop())

	_, resolved := resolveRequest(t, resolver, "s1")
	if resolved != nil {
		t.Fatalf("invalid token must yield anonymous request, got %+v", resolved)
	}
	if store.clears != 1 {
		t.Fatalf("invalid session must be cleared, clears=%d", store.clears)
	}
	if _, ok := store.sessions["s1"]; ok {
		t.Fatalf("token and profile must be cleared together")
	}
}
