package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campushub/resource-gateway/internal/api/metrics"
	"github.com/campushub/resource-gateway/internal/api/middleware"
	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

// CookieOptions configures the session cookie the gateway hands the browser.
type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	auth   ports.AuthService
	store  ports.SessionStore
	cookie CookieOptions
}

func NewAuthHandler(auth ports.AuthService, store ports.SessionStore, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{auth: auth, store: store, cookie: cookie}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// meResponse is shared by login and /auth/me: the profile plus the
// capability flags the navigation menu renders from. Both derive from
// domain.CanAccess so page guards and menu visibility cannot drift.
type meResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          *domain.Profile `json:"user,omitempty"`
	CanSuggest    bool            `json:"can_suggest"`
	CanReview     bool            `json:"can_review"`
	CanManageUsers bool           `json:"can_manage_users"`
}

func sessionCapabilities(sess *domain.Session) meResponse {
	resp := meResponse{
		Authenticated: sess.Authenticated(),
		CanSuggest:    domain.CanAccess(sess, true, false) == domain.Allow,
		CanReview:     domain.CanAccess(sess, true, true) == domain.Allow,
	}
	if sess.Authenticated() {
		resp.User = sess.User
		resp.CanManageUsers = sess.User.Role.IsRoot()
	}
	return resp
}

// Login exchanges credentials for a gateway session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  meResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	id := uuid.NewString()
	if err := h.store.Save(c.Request().Context(), id, sess); err != nil {
		return err
	}
	h.setCookie(c, id, false)

	return c.JSON(http.StatusOK, sessionCapabilities(sess))
}

// Logout clears the session. No backend call is involved.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if id := middleware.SessionID(c); id != "" {
		if err := h.store.Clear(c.Request().Context(), id); err != nil {
			return err
		}
	}
	h.setCookie(c, "", true)
	return c.NoContent(http.StatusNoContent)
}

// Me reports the current session state and capability flags.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionCapabilities(middleware.CurrentSession(c)))
}

type registerResponse struct {
	User    *domain.Profile `json:"user"`
	Message string          `json:"message"`
}

// Register submits a new account. Success does not create a session; email
// verification is still pending.
//
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterInput  true  "Registration form"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		User:    profile,
		Message: "account created, check your email to verify your address",
	})
}

type resetRequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestPasswordReset always answers with the same message so the response
// cannot be used to probe which addresses have accounts.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequestBody  true  "Account email"
// @Success      200   {object}  map[string]string
// @Router       /auth/request-password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req resetRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_ = h.auth.RequestPasswordReset(c.Request().Context(), req.Email)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "if that address has an account, a reset link is on its way",
	})
}

type resetPasswordBody struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPassword completes a reset with the emailed token.
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordBody  true  "Reset token and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "password updated, you can log in now"})
}

func (h *AuthHandler) setCookie(c echo.Context, value string, expire bool) {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if expire {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}
