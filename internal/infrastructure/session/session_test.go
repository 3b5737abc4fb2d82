package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if sess, err := store.Get(ctx, "missing"); err != nil || sess != nil {
		t.Fatalf("expected (nil, nil) for missing session, got (%v, %v)", sess, err)
	}

	want := &domain.Session{Token: "tok", User: &domain.Profile{ID: "1", Username: "alice", Role: domain.RoleUser}}
	if err := store.Save(ctx, "s1", want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Token != "tok" || got.User == nil || got.User.Username != "alice" {
		t.Fatalf("unexpected session: %+v", got)
	}

	// Mutating the returned copy must not affect the stored session.
	got.User.Username = "mallory"
	again, _ := store.Get(ctx, "s1")
	if again.User.Username != "alice" {
		t.Fatalf("store leaked internal state")
	}

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if sess, _ := store.Get(ctx, "s1"); sess != nil {
		t.Fatalf("expected cleared session, got %+v", sess)
	}
}

func TestSessionSerialization_ProfileNeverDurable(t *testing.T) {
	sess := &domain.Session{
		Token: "tok",
		User:  &domain.Profile{ID: "1", Username: "alice", Email: "alice@yorku.ca", Role: domain.RoleAdmin},
	}

	data, err := encodeSession(sess)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if strings.Contains(string(data), "alice") || strings.Contains(string(data), "admin") {
		t.Fatalf("profile leaked into the durable form: %s", data)
	}

	// A session read back from the durable form is what a fresh process sees
	// after a restart: token present, profile gone, forcing a revalidation.
	restored, err := decodeSession(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if restored.Token != "tok" {
		t.Fatalf("token lost in round-trip: %+v", restored)
	}
	if restored.User != nil {
		t.Fatalf("restored session must not carry a trusted profile, got %+v", restored.User)
	}
	if restored.Authenticated() {
		t.Fatalf("restored session must not count as authenticated before revalidation")
	}
}

func TestProfileCache(t *testing.T) {
	cache := newProfileCache()

	if p := cache.get("s1"); p != nil {
		t.Fatalf("expected empty cache, got %+v", p)
	}

	cache.put("s1", &domain.Profile{ID: "1", Username: "alice", Role: domain.RoleUser})
	got := cache.get("s1")
	if got == nil || got.Username != "alice" {
		t.Fatalf("unexpected cached profile: %+v", got)
	}

	// Mutating the returned copy must not affect the cached profile.
	got.Username = "mallory"
	if again := cache.get("s1"); again.Username != "alice" {
		t.Fatalf("cache leaked internal state")
	}

	// Saving a session without a profile forgets the stale entry.
	cache.put("s1", nil)
	if p := cache.get("s1"); p != nil {
		t.Fatalf("expected entry forgotten, got %+v", p)
	}

	cache.put("s2", &domain.Profile{ID: "2", Username: "bob", Role: domain.RoleUser})
	cache.drop("s2")
	if p := cache.get("s2"); p != nil {
		t.Fatalf("expected dropped entry, got %+v", p)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "alice", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionTTL_CappedByTokenExpiry(t *testing.T) {
	fallback := 24 * time.Hour

	// Token expiring in one hour caps the TTL.
	ttl := sessionTTL(signedToken(t, time.Now().Add(time.Hour)), fallback)
	if ttl > time.Hour || ttl < 55*time.Minute {
		t.Fatalf("expected TTL near one hour, got %v", ttl)
	}

	// Token expiring far in the future falls back to the configured TTL.
	if ttl := sessionTTL(signedToken(t, time.Now().Add(72*time.Hour)), fallback); ttl != fallback {
		t.Fatalf("expected fallback TTL, got %v", ttl)
	}

	// Expired token keeps only a minimal window.
	if ttl := sessionTTL(signedToken(t, time.Now().Add(-time.Hour)), fallback); ttl != time.Minute {
		t.Fatalf("expected minimal TTL for expired token, got %v", ttl)
	}

	// Opaque (non-JWT) tokens fall back.
	if ttl := sessionTTL("not-a-jwt", fallback); ttl != fallback {
		t.Fatalf("expected fallback TTL for opaque token, got %v", ttl)
	}
	if ttl := sessionTTL("", fallback); ttl != fallback {
		t.Fatalf("expected fallback TTL for empty token, got %v", ttl)
	}
}
