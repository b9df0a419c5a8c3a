package repository

import (
	"context"
	"time"

	"github.com/roadtrip-service/internal/domain"
)

// GeoRepository defines the geo provider contract: geocoding, places and directions.
// "No result" is a nil value with a nil error; only transport/provider failures
// return errors. Distances are meters and durations seconds at this boundary.
type GeoRepository interface {
	// Geocode resolves an address to the provider's first-result coordinate, nil when none.
	Geocode(ctx context.Context, address string) (*domain.Coordinate, error)

	// ReverseGeocode resolves coordinates to the first formatted address, nil when none.
	ReverseGeocode(ctx context.Context, lat, lon float64) (*string, error)

	// PlacesNearby searches points of interest around a location within radiusMeters.
	PlacesNearby(ctx context.Context, lat, lon float64, radiusMeters int, categoryTerm string) ([]domain.Place, error)

	// PlaceDetails fetches the requested attribute fields for one place.
	PlaceDetails(ctx context.Context, placeID string, fields []string) (*domain.PlaceDetails, error)

	// Route issues one combined routing request with ordered via-points, preserving
	// the given waypoint order. Returns nil when the provider finds no route.
	Route(
		ctx context.Context,
		origin, destination domain.Coordinate,
		waypoints []domain.Coordinate,
		mode domain.TravelMode,
		departureTime *time.Time,
	) (*domain.ProviderRoute, error)
}
