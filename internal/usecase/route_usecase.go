package usecase

import (
	"context"
	"time"

	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/domain/repository"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// RouteUseCase folds a single multi-leg provider response into one aggregated
// route. "No route exists" is the ErrRouteNotFound sentinel, a normal outcome;
// provider transport failures surface as ErrGeoProvider instead.
type RouteUseCase struct {
	geoRepo repository.GeoRepository
	logger  *zap.Logger
}

func NewRouteUseCase(geoRepo repository.GeoRepository, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		geoRepo: geoRepo,
		logger:  logger,
	}
}

// AggregateRoute issues exactly one routing request: first waypoint as origin,
// last as destination, interior waypoints as ordered via-points. Requires at
// least two waypoints; fewer is rejected before any provider call.
func (uc *RouteUseCase) AggregateRoute(
	ctx context.Context,
	waypoints []domain.Coordinate,
	mode domain.TravelMode,
	departureTime *time.Time,
) (*domain.Route, error) {
	if len(waypoints) < 2 {
		return nil, errors.ErrNotEnoughWaypoints
	}

	for i, wp := range waypoints {
		if !utils.ValidateCoordinates(wp.Lat, wp.Lon) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"waypoint_index": i,
			})
		}
	}

	origin := waypoints[0]
	destination := waypoints[len(waypoints)-1]
	via := waypoints[1 : len(waypoints)-1]

	providerRoute, err := uc.geoRepo.Route(ctx, origin, destination, via, mode, departureTime)
	if err != nil {
		uc.logger.Error("Routing request failed",
			zap.Int("waypoints", len(waypoints)),
			zap.String("mode", string(mode)),
			zap.Error(err))
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.ErrGeoProvider
	}

	// Unroutable - e.g. waypoints over open ocean. Expected, not a fault.
	if providerRoute == nil {
		return nil, errors.ErrRouteNotFound
	}

	route := &domain.Route{
		Legs:     providerRoute.Legs,
		Polyline: providerRoute.Polyline,
	}
	for _, leg := range providerRoute.Legs {
		route.TotalDistanceMeters += leg.DistanceMeters
		route.TotalDurationSeconds += leg.DurationSeconds
	}

	return route, nil
}
