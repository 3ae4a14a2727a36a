package response_models

// GeoCoordinates is a WGS 84 point. The model is asked to emit rounded
// coordinates; enrichment replaces them with geocoded ones when available.
type GeoCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TripDetails struct {
	Destination        string `json:"destination"`
	Duration           string `json:"duration"`
	Budget             string `json:"budget"`
	Vibe               string `json:"vibe"`
	TotalEstimatedCost string `json:"total_estimated_cost"`
}

// TransportationStep costs and durations are opaque display strings produced
// by the model, never computed here.
type TransportationStep struct {
	Mode          string `json:"mode"`
	Details       string `json:"details"`
	EstimatedCost string `json:"estimated_cost"`
	Duration      string `json:"duration"`
	Distance      string `json:"distance,omitempty"`
}

type Hotel struct {
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Price          string          `json:"price"`
	ImageQuery     string          `json:"image_query"`
	ImageURL       string          `json:"image_url,omitempty"`
	GeoCoordinates *GeoCoordinates `json:"geo_coordinates,omitempty"`
	Rating         float64         `json:"rating"`
	Description    string          `json:"description,omitempty"`
}

type Activity struct {
	PlaceName      string         `json:"place_name"`
	Details        string         `json:"details"`
	ImageQuery     string         `json:"image_query"`
	ImageURL       string         `json:"image_url,omitempty"`
	TicketPrice    string         `json:"ticket_price"`
	Time           string         `json:"time"`
	Logistics      string         `json:"logistics"`
	GeoCoordinates GeoCoordinates `json:"geo_coordinates"`
}

type DayItinerary struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// GeneratedTrip is the assembled pipeline result. TripDetails is a pointer so
// the normalizer can tell a missing/null key apart from an empty object.
type GeneratedTrip struct {
	TripDetails        *TripDetails         `json:"trip_details"`
	TransportationPlan []TransportationStep `json:"transportation_plan"`
	Hotels             []Hotel              `json:"hotels"`
	Itinerary          []DayItinerary       `json:"itinerary"`
}
