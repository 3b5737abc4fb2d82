package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/api/metrics"
	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

const (
	sessionKey   = "session"
	sessionIDKey = "session_id"
)

// SessionResolver loads the session behind the request's cookie and performs
// the one-shot profile restore for sessions persisted across a restart.
// It runs before every route guard, so protected-route evaluation never sees
// a returning session in its unrestored state.
type SessionResolver struct {
	store      ports.SessionStore
	auth       ports.AuthService
	cookieName string
	logger     zerolog.Logger
}

func NewSessionResolver(store ports.SessionStore, auth ports.AuthService, cookieName string, logger zerolog.Logger) *SessionResolver {
	return &SessionResolver{store: store, auth: auth, cookieName: cookieName, logger: logger}
}

// Resolve attaches the current session (possibly nil) to the echo context.
func (r *SessionResolver) Resolve() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(r.cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			c.Set(sessionIDKey, cookie.Value)

			ctx := c.Request().Context()
			sess, err := r.store.Get(ctx, cookie.Value)
			if err != nil {
				// Store outage: treat as anonymous rather than failing the
				// whole request; public routes must keep working.
				r.logger.Error().Err(err).Msg("session store unavailable")
				return next(c)
			}
			if sess == nil || sess.Token == "" {
				return next(c)
			}

			if sess.User == nil {
				restored, err := r.auth.Restore(ctx, sess.Token)
				if err != nil {
					// Token no longer valid: token and profile go together.
					metrics.SessionRestoresTotal.WithLabelValues("invalid").Inc()
					if err := r.store.Clear(ctx, cookie.Value); err != nil {
						r.logger.Error().Err(err).Msg("failed to clear invalid session")
					}
					return next(c)
				}
				metrics.SessionRestoresTotal.WithLabelValues("valid").Inc()
				if err := r.store.Save(ctx, cookie.Value, restored); err != nil {
					r.logger.Error().Err(err).Msg("failed to persist restored session")
				}
				sess = restored
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the session resolved for this request, or nil for
// anonymous requests.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionKey).(*domain.Session)
	return sess
}

// SessionID returns the session cookie value, or empty when absent.
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}

// SetSession is used by tests and the login handler to inject a resolved
// session into the request context.
func SetSession(c echo.Context, sess *domain.Session) {
	c.Set(sessionKey, sess)
}

// SetSessionID injects the cookie value the same way Resolve does.
func SetSessionID(c echo.Context, id string) {
	c.Set(sessionIDKey, id)
}

// RequireToken extracts the bearer token from the resolved session or fails
// with 401. Handlers behind the auth guard use it to call the backend.
func RequireToken(c echo.Context) (string, error) {
	sess := CurrentSession(c)
	if !sess.Authenticated() {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return sess.Token, nil
}
