package response_models

type UserStatus struct {
	IsAuthenticated     bool `json:"is_authenticated"`
	IsAdmin             bool `json:"is_admin"`
	IsPro               bool `json:"is_pro"`
	TripsRemainingToday int  `json:"trips_remaining_today"`
}
