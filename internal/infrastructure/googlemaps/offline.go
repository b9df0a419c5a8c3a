package googlemaps

import (
	"context"
	"time"

	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/domain/repository"
	apperrors "github.com/roadtrip-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// offlineClient is the null geo provider selected when no API key is configured.
// Every call fails with ErrGeoProviderUnavailable, so pricing degrades to the
// default table and maps endpoints answer 503 without special-casing anywhere.
type offlineClient struct {
	logger *zap.Logger
}

// NewOfflineClient creates the no-op geo provider.
func NewOfflineClient(logger *zap.Logger) repository.GeoRepository {
	logger.Warn("Google Maps API key not configured, using offline geo provider")
	return &offlineClient{logger: logger}
}

func (c *offlineClient) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	return nil, apperrors.ErrGeoProviderUnavailable
}

func (c *offlineClient) ReverseGeocode(ctx context.Context, lat, lon float64) (*string, error) {
	return nil, apperrors.ErrGeoProviderUnavailable
}

func (c *offlineClient) PlacesNearby(
	ctx context.Context,
	lat, lon float64,
	radiusMeters int,
	categoryTerm string,
) ([]domain.Place, error) {
	return nil, apperrors.ErrGeoProviderUnavailable
}

func (c *offlineClient) PlaceDetails(
	ctx context.Context,
	placeID string,
	fields []string,
) (*domain.PlaceDetails, error) {
	return nil, apperrors.ErrGeoProviderUnavailable
}

func (c *offlineClient) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	waypoints []domain.Coordinate,
	mode domain.TravelMode,
	departureTime *time.Time,
) (*domain.ProviderRoute, error) {
	return nil, apperrors.ErrGeoProviderUnavailable
}
