package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// NormalizeItineraryResponse turns the model's raw text into a GeneratedTrip.
// The prompt forbids markdown fencing, but models emit it anyway, so fence
// markers are stripped wherever they appear (leading, trailing, or both)
// before the strict parse. Two distinct failures: unparseable JSON, and
// parseable JSON missing any of the three required top-level keys.
func NormalizeItineraryResponse(raw string) (*response_models.GeneratedTrip, error) {
	text := strings.TrimSpace(raw)

	if strings.Contains(text, "```") {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
		text = strings.TrimSpace(text)
	}

	var trip response_models.GeneratedTrip
	if err := json.Unmarshal([]byte(text), &trip); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", utils.ErrMalformedItinerary, err)
	}

	if trip.TripDetails == nil || trip.Hotels == nil || trip.Itinerary == nil {
		return nil, fmt.Errorf("%w: missing required top-level fields", utils.ErrMalformedItinerary)
	}

	return &trip, nil
}
