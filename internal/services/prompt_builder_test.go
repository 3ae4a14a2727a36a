package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/internal/models/request_models"
)

func singleCityRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Origin:      "Mumbai",
		Destination: "Goa",
		Days:        "3",
		Budget:      "15000",
		Travelers:   "2 People (Couple)",
		Vibe:        "Relaxing",
		StartDate:   "2026-10-12",
		TravelMode:  "Train",
	}
}

func TestBuildTripPromptIsDeterministic(t *testing.T) {
	req := singleCityRequest()

	first := BuildTripPrompt(req)
	second := BuildTripPrompt(req)

	assert.Equal(t, first, second)
}

func TestBuildTripPromptContainsTripParameters(t *testing.T) {
	prompt := BuildTripPrompt(singleCityRequest())

	assert.Contains(t, prompt, "- Origin: Mumbai (START HERE)")
	assert.Contains(t, prompt, "- Destinations: Goa")
	assert.Contains(t, prompt, "- Duration: 3 days (Total)")
	assert.Contains(t, prompt, "- Vibe: Relaxing")
	assert.Contains(t, prompt, "budget PER PERSON")
	assert.Contains(t, prompt, "Indian Rupees (₹)")
	assert.Contains(t, prompt, "ACCURATE TRAIN NAMES AND NUMBERS")
}

func TestBuildTripPromptEndsWithJSONOnlyInstruction(t *testing.T) {
	prompt := BuildTripPrompt(singleCityRequest())

	assert.True(t, strings.HasSuffix(prompt, "Return ONLY the JSON object."))
}

func TestBuildTripPromptEmbedsResponseShape(t *testing.T) {
	prompt := BuildTripPrompt(singleCityRequest())

	assert.Contains(t, prompt, `"trip_details"`)
	assert.Contains(t, prompt, `"transportation_plan"`)
	assert.Contains(t, prompt, `"hotels"`)
	assert.Contains(t, prompt, `"itinerary"`)
	assert.Contains(t, prompt, `"geo_coordinates"`)
}

func TestBuildTripPromptMultiCityRouting(t *testing.T) {
	req := singleCityRequest()
	req.Destination = "Goa | Hampi | Mysore"

	prompt := BuildTripPrompt(req)

	assert.Contains(t, prompt, "Goa -> Hampi -> Mysore")
	assert.Contains(t, prompt, "(Multi-City Trip)")
	assert.Contains(t, prompt, "Mumbai -> Goa -> Hampi -> Mysore -> Return")
	assert.Contains(t, prompt, "at least one hotel option FOR EACH destination city")
}

func TestBuildTripPromptDefaultsOptionalFields(t *testing.T) {
	req := request_models.TripRequest{
		Origin:      "Delhi",
		Destination: "Jaipur",
		Days:        "2",
		Budget:      "8000",
		Vibe:        "Culture",
	}

	prompt := BuildTripPrompt(req)

	assert.Contains(t, prompt, "- Start Date: Not specified")
	assert.Contains(t, prompt, "- Travelers: 2 People (Couple)")
	assert.Contains(t, prompt, "- Preferred Travel Mode: Any")
}
