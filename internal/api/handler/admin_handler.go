package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/resource-gateway/internal/api/metrics"
	"github.com/campushub/resource-gateway/internal/api/middleware"
	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

// AdminHandler serves the review workflow and user administration. Routes
// sit behind the admin guard; the user endpoints additionally require root.
type AdminHandler struct {
	review ports.ReviewService
}

func NewAdminHandler(review ports.ReviewService) *AdminHandler {
	return &AdminHandler{review: review}
}

// ListResources returns every resource regardless of status.
//
// @Summary      List all resources
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.Resource
// @Router       /admin/resources [get]
func (h *AdminHandler) ListResources(c echo.Context) error {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return err
	}

	resources, err := h.review.ListAll(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// ListByStatus returns resources in one review state.
//
// @Summary      List resources by status
// @Tags         admin
// @Produce      json
// @Param        status  path  string  true  "pending, approved, or rejected"
// @Success      200  {array}  domain.Resource
// @Router       /admin/resources/status/{status} [get]
func (h *AdminHandler) ListByStatus(c echo.Context) error {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return err
	}

	status, err := domain.ParseStatus(c.Param("status"))
	if err != nil {
		return err
	}

	resources, err := h.review.ListByStatus(c.Request().Context(), token, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

type reviewRequest struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// Review applies an approve/reject decision and returns the refreshed
// listing so the admin panel never shows optimistic state.
//
// @Summary      Review a resource
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Resource ID"
// @Param        body  body      reviewRequest  true  "Decision"
// @Success      200   {array}   domain.Resource
// @Failure      400   {object}  map[string]string
// @Router       /admin/resources/{id}/review [put]
func (h *AdminHandler) Review(c echo.Context) error {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	var listing []domain.Resource
	switch domain.ResourceStatus(req.Status) {
	case domain.StatusApproved:
		listing, err = h.review.Approve(c.Request().Context(), token, id)
	case domain.StatusRejected:
		listing, err = h.review.Reject(c.Request().Context(), token, id, req.RejectionReason)
	}
	if err != nil {
		return err
	}
	metrics.ReviewsTotal.WithLabelValues(req.Status).Inc()

	return c.JSON(http.StatusOK, listing)
}

// CreateResource creates an entry directly, with an explicit status.
//
// @Summary      Create a resource
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      ports.ResourceInput  true  "Resource"
// @Success      201   {array}   domain.Resource
// @Router       /admin/resources [post]
func (h *AdminHandler) CreateResource(c echo.Context) error {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return err
	}

	var req ports.ResourceInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.review.Create(c.Request().Context(), token, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, listing)
}

// UpdateResource edits an entry in place.
//
// @Summary      Update a resource
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Resource ID"
// @Param        body  body      ports.ResourceInput  true  "Resource"
// @Success      200   {array}   domain.Resource
// @Router       /admin/resources/{id} [put]
func (h *AdminHandler) UpdateResource(c echo.Context) error {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return err
	}

	var req ports.ResourceInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.review.Update(c.Request().Context(), token, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// DeleteResource removes an entry.
//
// @Summary      Delete a resource
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Resource ID"
// @Success      200  {array}  domain.Resource
// @Router       /admin/resources/{id} [delete]
func (h *AdminHandler) DeleteResource(c echo.Context) error {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return err
	}

	listing, err := h.review.Delete(c.Request().Context(), token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// ListUsers returns every account. Root only; the backend enforces it too,
// but failing fast here keeps the error local and cheap.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.Profile
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	token, err := requireRoot(c)
	if err != nil {
		return err
	}

	users, err := h.review.ListUsers(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// SetUserRole promotes or demotes a user. Root targets are refused before
// any backend call.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "User ID"
// @Param        body  body      roleRequest  true  "New role"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	token, err := requireRoot(c)
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.review.SetUserRole(c.Request().Context(), token, c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "role updated to " + req.Role})
}

// requireRoot narrows the admin guard to the root role for the user
// administration endpoints.
func requireRoot(c echo.Context) (string, error) {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return "", err
	}
	if !middleware.CurrentSession(c).Role().IsRoot() {
		return "", echo.NewHTTPError(http.StatusForbidden, "root access required")
	}
	return token, nil
}
