package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes backend fetch errors through with the server's status and
//     message so failures show up inline, never silently swallowed.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Client-side validation failures carry the offending field for inline
	// display next to the form input.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		msg := "invalid username or password"
		var fe *domain.FetchError
		if errors.As(err, &fe) && fe.Message != "" {
			msg = fe.Message
		}
		return http.StatusUnauthorized, errorResponse{Error: msg}
	case errors.Is(err, domain.ErrSessionInvalid):
		return http.StatusUnauthorized, errorResponse{Error: "session expired, please log in again"}
	case errors.Is(err, domain.ErrResetTokenInvalid):
		return http.StatusBadRequest, errorResponse{Error: "password reset link is invalid or expired"}
	case errors.Is(err, domain.ErrRootImmutable):
		return http.StatusForbidden, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrResourceNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error()}
	}

	// Backend failures pass the server's status and message through.
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		code := fe.StatusCode
		if code == 0 {
			code = http.StatusBadGateway
		}
		return code, errorResponse{Error: fe.Message}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
