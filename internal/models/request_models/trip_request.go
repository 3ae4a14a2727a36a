package request_models

import (
	"strconv"
	"strings"
)

// TripRequest carries the trip parameters the caller submits. Destination may
// hold several cities joined by "|"; Days and Budget arrive as text because
// the UI sends either a named tier or a raw per-person amount.
type TripRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Days        string `json:"days" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Travelers   string `json:"travelers"`
	Vibe        string `json:"vibe" binding:"required"`
	StartDate   string `json:"start_date"`
	TravelMode  string `json:"travel_mode"`
}

// Destinations splits the delimiter-joined destination string, trimming
// whitespace and dropping empty segments.
func (r TripRequest) Destinations() []string {
	var out []string
	for _, d := range strings.Split(r.Destination, "|") {
		d = strings.TrimSpace(d)
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}

// DayCount returns the requested duration in days, or 0 when Days is not a
// positive integer.
func (r TripRequest) DayCount() int {
	n, err := strconv.Atoi(strings.TrimSpace(r.Days))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
