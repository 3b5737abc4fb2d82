package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

func guardContext(t *testing.T, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		SetSession(c, sess)
	}
	return c, rec
}

func TestGuard_AllowsPublic(t *testing.T) {
	c, rec := guardContext(t, nil)

	called := false
	handler := Guard(false, false)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, called=%v code=%d", called, rec.Code)
	}
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	c, rec := guardContext(t, nil)

	handler := Guard(true, false)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGuard_NonAdminRedirectsHome(t *testing.T) {
	sess := &domain.Session{Token: "tok", User: &domain.Profile{ID: "1", Username: "u", Role: domain.RoleUser}}
	c, rec := guardContext(t, sess)

	handler := Guard(true, true)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGuard_AdminRoleCaseInsensitive(t *testing.T) {
	sess := &domain.Session{Token: "tok", User: &domain.Profile{ID: "1", Username: "u", Role: domain.Role("Admin")}}
	c, rec := guardContext(t, sess)

	called := false
	handler := Guard(true, true)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected mixed-case admin to pass, called=%v code=%d", called, rec.Code)
	}
}
