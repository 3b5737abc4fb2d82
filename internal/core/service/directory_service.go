package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

// DirectoryService fetches the resource collection and filters it locally.
// Server-side filtering is not assumed to exist in every deployment.
type DirectoryService struct {
	api    ports.ResourceAPI
	logger zerolog.Logger
}

func NewDirectoryService(api ports.ResourceAPI, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{api: api, logger: logger}
}

// List fetches the full collection and applies the filter. The result is
// finite and restartable: calling List again re-fetches from the backend.
func (s *DirectoryService) List(ctx context.Context, token string, filter ports.ListFilter) ([]domain.Resource, error) {
	resources, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return applyFilter(resources, filter), nil
}

// Suggest submits a member suggestion. The input carries no status field;
// pending is forced regardless of what a client might attempt to send.
func (s *DirectoryService) Suggest(ctx context.Context, token string, in ports.SuggestInput) (*domain.Resource, error) {
	if !domain.ValidCategory(in.Category) {
		return nil, &domain.ValidationError{Field: "category", Message: "category must be one of: " + strings.Join(domain.Categories, ", ")}
	}

	created, err := s.api.Suggest(ctx, token, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("resource_id", created.ID).Str("name", created.Name).Msg("resource suggested")
	return created, nil
}

// applyFilter narrows the listing: case-insensitive substring match over
// name, description, and offered_by when a query is set; case-insensitive
// category equality unless the sentinel ALL (or nothing) is selected.
func applyFilter(resources []domain.Resource, filter ports.ListFilter) []domain.Resource {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)
	filterCategory := category != "" && !strings.EqualFold(category, domain.CategoryAll)

	out := make([]domain.Resource, 0, len(resources))
	for _, r := range resources {
		if filterCategory && !strings.EqualFold(r.Category, category) {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r domain.Resource, query string) bool {
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Description), query) ||
		strings.Contains(strings.ToLower(r.OfferedBy), query)
}
