package services

import (
	"context"
	"fmt"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const inspireResultLimit = 6

type DestinationServiceInterface interface {
	ListFeatured(ctx context.Context, limit int) ([]response_models.DestinationSuggestion, error)
	Inspire(ctx context.Context, prompt string) ([]response_models.DestinationSuggestion, error)
}

type destinationService struct {
	repo     repositories.DestinationRepository
	embedder utils.EmbeddingClientInterface
}

func NewDestinationService(repo repositories.DestinationRepository, embedder utils.EmbeddingClientInterface) DestinationServiceInterface {
	return &destinationService{
		repo:     repo,
		embedder: embedder,
	}
}

func (d *destinationService) ListFeatured(ctx context.Context, limit int) ([]response_models.DestinationSuggestion, error) {
	if limit <= 0 {
		limit = inspireResultLimit
	}

	destinations, err := d.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return toSuggestions(destinations), nil
}

// Inspire embeds the free-text prompt and returns the nearest destinations
// by vector distance.
func (d *destinationService) Inspire(ctx context.Context, prompt string) ([]response_models.DestinationSuggestion, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt must not be empty", utils.ErrInvalidInput)
	}

	embedding, err := d.embedder.GetEmbedding(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	destinations, err := d.repo.SearchByVector(ctx, embedding, inspireResultLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return toSuggestions(destinations), nil
}

func toSuggestions(destinations []db_models.Destination) []response_models.DestinationSuggestion {
	suggestions := make([]response_models.DestinationSuggestion, 0, len(destinations))
	for _, dest := range destinations {
		suggestions = append(suggestions, response_models.DestinationSuggestion{
			Name:        dest.Name,
			Country:     dest.Country,
			Description: dest.Description,
			ImageURL:    utils.BuildImageURL(dest.ImageQuery),
			Tags:        dest.Tags,
		})
	}
	return suggestions
}
