package dto

// StopInput - one waypoint in a save-trip request. Location is [lat, lon].
type StopInput struct {
	Location []float64 `json:"location" validate:"required,len=2"`
	Type     string    `json:"type"`
	Time     int       `json:"time" validate:"gte=0"` // dwell time, minutes
	Cost     float64   `json:"cost" validate:"gte=0"`
}

// SaveTripRequest - request to persist a trip with its ordered stops
type SaveTripRequest struct {
	UserID      string      `json:"user_id" validate:"required"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	Stops       []StopInput `json:"stops" validate:"dive"`
}

// UpdateTripRequest - partial metadata update; nil fields are left unchanged
type UpdateTripRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// BudgetStopInput - one stop of a budget calculation. Location is [lat, lon].
type BudgetStopInput struct {
	Location []float64 `json:"location" validate:"required,len=2"`
	Type     string    `json:"type"`
}

// BudgetRequest - request to estimate the full trip budget.
// Distances is optional: cumulative meters traveled to reach each stop.
type BudgetRequest struct {
	Stops     []BudgetStopInput `json:"stops" validate:"dive"`
	Distances []float64         `json:"distances,omitempty"`
}

// StopPriceRequest - request to estimate the price of a single stop
type StopPriceRequest struct {
	Latitude   float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64 `json:"longitude" validate:"min=-180,max=180"`
	Type       string  `json:"type"`
	DistanceKm float64 `json:"distance_km" validate:"gte=0"`
}

// GeocodeRequest - request to resolve an address to coordinates
type GeocodeRequest struct {
	Address string `json:"address" validate:"required"`
}

// ReverseGeocodeRequest - request to resolve coordinates to an address
type ReverseGeocodeRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// DirectionsRequest - request for one aggregated multi-leg route.
// Origin, Destination and Waypoints are [lat, lon] pairs; waypoint order is preserved.
type DirectionsRequest struct {
	Origin        []float64   `json:"origin" validate:"required,len=2"`
	Destination   []float64   `json:"destination" validate:"required,len=2"`
	Waypoints     [][]float64 `json:"waypoints,omitempty" validate:"omitempty,dive,len=2"`
	Mode          string      `json:"mode" validate:"omitempty,oneof=driving walking bicycling transit"`
	DepartureTime *int64      `json:"departure_time,omitempty"` // unix seconds hint
}
