package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/resource-gateway/internal/api/metrics"
	"github.com/campushub/resource-gateway/internal/api/middleware"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

// ResourceHandler serves the visitor-facing directory: browse, search, and
// member suggestions.
type ResourceHandler struct {
	directory ports.DirectoryService
}

func NewResourceHandler(directory ports.DirectoryService) *ResourceHandler {
	return &ResourceHandler{directory: directory}
}

// List returns the filtered directory. Anonymous callers see approved
// entries only (the backend scopes by role); filtering happens locally.
//
// @Summary      Browse the directory
// @Tags         resources
// @Produce      json
// @Param        category  query  string  false  "Category filter (ALL disables it)"
// @Param        q         query  string  false  "Free-text search"
// @Success      200  {array}  domain.Resource
// @Router       /resources [get]
func (h *ResourceHandler) List(c echo.Context) error {
	filter := ports.ListFilter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	}

	var token string
	if sess := middleware.CurrentSession(c); sess.Authenticated() {
		token = sess.Token
	}

	resources, err := h.directory.List(c.Request().Context(), token, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// Suggest submits a member suggestion; the created resource is always
// pending review.
//
// @Summary      Suggest a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body      ports.SuggestInput  true  "Suggestion"
// @Success      201   {object}  domain.Resource
// @Failure      400   {object}  map[string]string
// @Router       /resources/suggest [post]
func (h *ResourceHandler) Suggest(c echo.Context) error {
	token, err := middleware.RequireToken(c)
	if err != nil {
		return err
	}

	var req ports.SuggestInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.directory.Suggest(c.Request().Context(), token, req)
	if err != nil {
		return err
	}
	metrics.SuggestionsTotal.Inc()

	return c.JSON(http.StatusCreated, created)
}
