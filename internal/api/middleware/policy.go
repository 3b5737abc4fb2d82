package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

// redirectResponse tells the browser app where to send the user. The guard
// and the navigation capability flags share domain.CanAccess, so the two can
// never disagree about who sees what.
type redirectResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Guard produces a route guard for the given page requirements.
func Guard(requiresAuth, requiresAdmin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch domain.CanAccess(CurrentSession(c), requiresAuth, requiresAdmin) {
			case domain.RedirectToLogin:
				return c.JSON(http.StatusUnauthorized, redirectResponse{
					Error:    "authentication required",
					Redirect: "/login",
				})
			case domain.RedirectToHome:
				return c.JSON(http.StatusForbidden, redirectResponse{
					Error:    "admin access required",
					Redirect: "/",
				})
			}
			return next(c)
		}
	}
}
