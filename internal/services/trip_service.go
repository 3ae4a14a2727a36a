package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// Bounds on fan-out width and prompt size. Requests beyond either are
// rejected before any model call.
const (
	maxTripDays        = 30
	maxTripDestination = 5
)

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, userID string, req request_models.TripRequest) (*response_models.GeneratedTrip, error)
}

type TripService struct {
	gate      AccessGateInterface
	generator utils.TripGeneratorInterface
	enricher  EnrichmentServiceInterface
}

func NewTripService(
	gate AccessGateInterface,
	generator utils.TripGeneratorInterface,
	enricher EnrichmentServiceInterface,
) TripServiceInterface {
	return &TripService{
		gate:      gate,
		generator: generator,
		enricher:  enricher,
	}
}

// GenerateTrip runs the pipeline: gate, prompt, model call, normalize,
// enrich. The first failing stage terminates the invocation with no partial
// result; only enrichment tolerates per-item failure.
func (s *TripService) GenerateTrip(ctx context.Context, userID string, req request_models.TripRequest) (*response_models.GeneratedTrip, error) {
	if err := s.gate.Authorize(ctx, userID); err != nil {
		return nil, err
	}

	destinations := req.Destinations()
	days := req.DayCount()
	if len(destinations) == 0 || len(destinations) > maxTripDestination {
		return nil, fmt.Errorf("%w: between 1 and %d destinations required", utils.ErrInvalidInput, maxTripDestination)
	}
	if days < 1 || days > maxTripDays {
		return nil, fmt.Errorf("%w: duration must be 1-%d days", utils.ErrInvalidInput, maxTripDays)
	}

	prompt := BuildTripPrompt(req)

	start := time.Now()
	raw, err := s.generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		if errors.Is(err, utils.ErrMissingAPIKey) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	log.Printf("model call for user %s took %s", userID, time.Since(start))

	trip, err := NormalizeItineraryResponse(raw)
	if err != nil {
		return nil, err
	}

	// Hinted geocode retries use the first destination city. For multi-city
	// trips later cities get a possibly wrong hint, but the hint only fires
	// after a bare-query miss and a second miss just leaves the item as-is.
	s.enricher.EnrichTrip(ctx, trip, destinations[0])

	return trip, nil
}
