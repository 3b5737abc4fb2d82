package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionTTL caps the configured TTL at the bearer token's exp claim. The
// token is opaque by contract, but the backend issues HS256 JWTs in practice;
// when that holds there is no point keeping a session alive past its token.
// The parse is unverified: the signature belongs to the backend, and a
// misread here only shortens or keeps the default TTL, never extends it.
func sessionTTL(token string, fallback time.Duration) time.Duration {
	if token == "" {
		return fallback
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}

	remaining := time.Until(exp.Time)
	if remaining <= 0 {
		// Already expired: keep the entry just long enough for the next
		// request to attempt a restore and clear it.
		return time.Minute
	}
	if remaining >= fallback {
		return fallback
	}
	return remaining
}
