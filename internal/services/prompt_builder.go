package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
)

// BuildTripPrompt turns the trip parameters into the instruction sent to the
// model. Pure and deterministic: same request, same prompt, no I/O. The
// embedded JSON example pins the exact response shape so the normalizer has
// a predictable structure to validate.
func BuildTripPrompt(req request_models.TripRequest) string {
	destinations := req.Destinations()
	isMultiCity := len(destinations) > 1

	destinationString := req.Destination
	if isMultiCity {
		destinationString = strings.Join(destinations, " -> ")
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = "Not specified"
	}
	travelers := req.Travelers
	if travelers == "" {
		travelers = "2 People (Couple)"
	}
	travelMode := req.TravelMode
	if travelMode == "" {
		travelMode = "Any"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "You are a professional travel planner AI. Plan a detailed trip from %s to %s.\n\n", req.Origin, destinationString)

	b.WriteString("Trip Parameters:\n")
	fmt.Fprintf(&b, "- Origin: %s (START HERE)\n", req.Origin)
	if isMultiCity {
		fmt.Fprintf(&b, "- Destinations: %s (Multi-City Trip)\n", destinationString)
	} else {
		fmt.Fprintf(&b, "- Destinations: %s\n", destinationString)
	}
	fmt.Fprintf(&b, "- Duration: %s days (Total)\n", req.Days)
	fmt.Fprintf(&b, "- Start Date: %s (Use this for seasonal context and day-of-week logic)\n", startDate)
	fmt.Fprintf(&b, "- Budget: %s (Note: If this is a numeric value, treat it as the budget PER PERSON. Multiply by the number of travelers to estimate the total trip budget constraint).\n", req.Budget)
	fmt.Fprintf(&b, "- Travelers: %s\n", travelers)
	fmt.Fprintf(&b, "- Vibe: %s\n", req.Vibe)
	fmt.Fprintf(&b, "- Preferred Travel Mode: %s (Prioritize this mode if feasible)\n\n", travelMode)

	b.WriteString("CRITICAL INSTRUCTIONS:\n")
	if isMultiCity {
		fmt.Fprintf(&b, "1. **Route:** Start from %s. Plan the route sequentially: %s -> %s -> Return.\n", req.Origin, req.Origin, strings.Join(destinations, " -> "))
	} else {
		fmt.Fprintf(&b, "1. **Route:** Start from %s.\n", req.Origin)
	}
	b.WriteString("2. **Currency:** ALL prices must be in Indian Rupees (₹).\n")
	b.WriteString("3. **Budget:** The total cost must be close to or under the total budget (Per Person * Travelers).\n")
	b.WriteString("4. **Logistics:** Provide a step-by-step guide on how to reach the first destination, AND how to travel between each destination if multi-city.\n")
	mode := req.TravelMode
	if mode == "" {
		mode = "convenience"
	}
	fmt.Fprintf(&b, "   - **Prioritize %s** for all travel legs.\n", mode)
	b.WriteString("   - If \"Train\" is preferred or selected, YOU MUST PROVIDE ACCURATE TRAIN NAMES AND NUMBERS (e.g., \"12951 Rajdhani Express\").\n")
	b.WriteString("   - If \"Flight\" is preferred, suggest specific airports and typical flight durations.\n")
	b.WriteString("   - If \"Bus\" is preferred, mention bus types (Volvo/Sleeper) and major operators.\n")
	b.WriteString("5. **Hotels:** Provide at least one hotel option FOR EACH destination city.\n")
	fmt.Fprintf(&b, "6. **Itinerary:** Distribute the %s days across the destinations intelligently.\n", req.Days)
	fmt.Fprintf(&b, "7. **Dates:** If Start Date is provided (%s), ensure the itinerary days match the actual dates (e.g., \"Day 1 (Mon, 12 Oct)\").\n", req.StartDate)
	b.WriteString("8. **Activities:** Every activity must include a logistics note on how to reach it and absolute geo coordinates.\n\n")

	b.WriteString("Generate a JSON response with this EXACT structure:\n")
	fmt.Fprintf(&b, `{
  "trip_details": {
    "destination": "%s",
    "duration": "%s Days",
    "budget": "%s",
    "vibe": "%s",
    "total_estimated_cost": "₹XXXXX (Total for all travelers)"
  },
  "transportation_plan": [
    {
      "mode": "Train/Bus/Flight/Taxi",
      "details": "Detailed instruction (e.g., Train Name & Number). For multi-city, include travel between cities.",
      "estimated_cost": "₹XXX",
      "duration": "X hours",
      "distance": "X km"
    }
  ],
  "hotels": [
    {
      "name": "Hotel Name",
      "address": "Full Address (City Name)",
      "price": "₹XXX/night",
      "image_query": "Hotel Name City Name",
      "rating": 4.5,
      "description": "Brief description"
    }
  ],
  "itinerary": [
    {
      "day": 1,
      "theme": "Day theme (City Name)",
      "activities": [
        {
          "place_name": "Place Name",
          "details": "What to do there",
          "image_query": "Place Name City Name",
          "ticket_price": "₹XX or Free",
          "time": "HH:MM AM/PM",
          "logistics": "How to reach here",
          "geo_coordinates": { "lat": 0.0, "lng": 0.0 }
        }
      ]
    }
  ]
}`, destinationString, req.Days, req.Budget, req.Vibe)

	b.WriteString("\n\nReturn ONLY the JSON object.")

	return b.String()
}
