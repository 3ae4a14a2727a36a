package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

func allowAllGate() *mockGate {
	return &mockGate{
		authorizeFn: func(ctx context.Context, userID string) error { return nil },
	}
}

func TestGenerateTripHappyPath(t *testing.T) {
	generator := &mockGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Mumbai")
			assert.Contains(t, prompt, "Goa")
			return "```json\n" + validItineraryJSON + "\n```", nil
		},
	}
	geocoder := &mockGeocoder{
		lookupFn: func(ctx context.Context, query string) (*response_models.GeoCoordinates, error) {
			return &response_models.GeoCoordinates{Lat: 15.5, Lng: 73.8}, nil
		},
	}
	svc := NewTripService(allowAllGate(), generator, NewPlaceEnrichmentService(geocoder))

	trip, err := svc.GenerateTrip(context.Background(), "user-1", singleCityRequest())
	require.NoError(t, err)

	require.NotNil(t, trip.TripDetails)
	assert.Equal(t, "Goa", trip.TripDetails.Destination)
	require.Len(t, trip.Hotels, 1)
	assert.NotEmpty(t, trip.Hotels[0].ImageURL)
	require.NotNil(t, trip.Hotels[0].GeoCoordinates)
	require.Len(t, trip.Itinerary, 1)
	assert.NotEmpty(t, trip.Itinerary[0].Activities[0].ImageURL)
	assert.Equal(t, 1, generator.calls)
}

func TestGenerateTripRateLimitedSkipsGenerator(t *testing.T) {
	gate := &mockGate{
		authorizeFn: func(ctx context.Context, userID string) error {
			return utils.ErrRateLimited
		},
	}
	generator := &mockGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return validItineraryJSON, nil
		},
	}
	svc := NewTripService(gate, generator, &mockEnricher{})

	_, err := svc.GenerateTrip(context.Background(), "user-1", singleCityRequest())

	assert.ErrorIs(t, err, utils.ErrRateLimited)
	assert.Zero(t, generator.calls, "rate-limited requests must not reach the model")
}

func TestGenerateTripRejectsInvalidBounds(t *testing.T) {
	generator := &mockGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return validItineraryJSON, nil
		},
	}
	svc := NewTripService(allowAllGate(), generator, &mockEnricher{})

	cases := map[string]request_models.TripRequest{
		"no destination": func() request_models.TripRequest {
			r := singleCityRequest()
			r.Destination = " | "
			return r
		}(),
		"too many destinations": func() request_models.TripRequest {
			r := singleCityRequest()
			r.Destination = "A|B|C|D|E|F"
			return r
		}(),
		"zero days": func() request_models.TripRequest {
			r := singleCityRequest()
			r.Days = "0"
			return r
		}(),
		"days not numeric": func() request_models.TripRequest {
			r := singleCityRequest()
			r.Days = "three"
			return r
		}(),
		"too many days": func() request_models.TripRequest {
			r := singleCityRequest()
			r.Days = "45"
			return r
		}(),
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.GenerateTrip(context.Background(), "user-1", req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
	assert.Zero(t, generator.calls)
}

func TestGenerateTripWrapsGeneratorFailure(t *testing.T) {
	generator := &mockGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("upstream 500")
		},
	}
	svc := NewTripService(allowAllGate(), generator, &mockEnricher{})

	_, err := svc.GenerateTrip(context.Background(), "user-1", singleCityRequest())

	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateTripPropagatesMissingAPIKey(t *testing.T) {
	generator := &mockGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", utils.ErrMissingAPIKey
		},
	}
	svc := NewTripService(allowAllGate(), generator, &mockEnricher{})

	_, err := svc.GenerateTrip(context.Background(), "user-1", singleCityRequest())

	assert.ErrorIs(t, err, utils.ErrMissingAPIKey)
	assert.NotErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateTripRejectsProseResponse(t *testing.T) {
	generator := &mockGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "Sorry, I can't help with that.", nil
		},
	}
	svc := NewTripService(allowAllGate(), generator, &mockEnricher{})

	_, err := svc.GenerateTrip(context.Background(), "user-1", singleCityRequest())

	assert.ErrorIs(t, err, utils.ErrMalformedItinerary)
}

func TestGenerateTripPassesFirstDestinationAsHint(t *testing.T) {
	generator := &mockGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return validItineraryJSON, nil
		},
	}
	var gotHint string
	enricher := &mockEnricher{
		enrichFn: func(ctx context.Context, trip *response_models.GeneratedTrip, destinationHint string) {
			gotHint = destinationHint
		},
	}
	svc := NewTripService(allowAllGate(), generator, enricher)

	req := singleCityRequest()
	req.Destination = "Goa | Hampi"

	_, err := svc.GenerateTrip(context.Background(), "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, "Goa", gotHint)
}
