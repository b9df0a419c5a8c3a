package domain

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TravelMode selects the routing profile at the provider.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// ParseTravelMode normalizes a mode string, defaulting to driving.
func ParseTravelMode(s string) TravelMode {
	switch TravelMode(s) {
	case TravelModeWalking:
		return TravelModeWalking
	case TravelModeBicycling:
		return TravelModeBicycling
	case TravelModeTransit:
		return TravelModeTransit
	default:
		return TravelModeDriving
	}
}

// RouteLeg is one origin->destination hop within a multi-waypoint route.
type RouteLeg struct {
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	StartAddress    string `json:"start_address,omitempty"`
	EndAddress      string `json:"end_address,omitempty"`
}

// ProviderRoute is the raw multi-leg route as returned by the geo provider
// for a single combined request.
type ProviderRoute struct {
	Summary  string     `json:"summary,omitempty"`
	Polyline string     `json:"polyline"` // provider's overview path for the whole route
	Legs     []RouteLeg `json:"legs"`
}

// Route is the aggregated result of one routing request: per-leg hops plus
// folded totals. It is derived, never persisted, and owned by its caller.
type Route struct {
	Legs                 []RouteLeg `json:"legs"`
	Polyline             string     `json:"polyline"`
	TotalDistanceMeters  int        `json:"total_distance_meters"`
	TotalDurationSeconds int        `json:"total_duration_seconds"`
}

// Place is a point of interest returned by a nearby search.
type Place struct {
	PlaceID string  `json:"place_id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// PlaceDetails carries the attribute subset fetched for a single place.
// PriceLevel is the 0-4 cost-tier ordinal; nil when the place has none.
type PlaceDetails struct {
	Name       string   `json:"name"`
	PriceLevel *int     `json:"price_level,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
}
