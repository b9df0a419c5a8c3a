package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/domain/repository"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"github.com/roadtrip-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// TripUseCase covers trip persistence plus the derived directions view.
type TripUseCase struct {
	tripRepo repository.TripRepository
	routeUC  *RouteUseCase
	logger   *zap.Logger
}

func NewTripUseCase(
	tripRepo repository.TripRepository,
	routeUC *RouteUseCase,
	logger *zap.Logger,
) *TripUseCase {
	return &TripUseCase{
		tripRepo: tripRepo,
		routeUC:  routeUC,
		logger:   logger,
	}
}

// SaveTrip builds a trip from the request and persists it with its stops.
func (uc *TripUseCase) SaveTrip(ctx context.Context, req dto.SaveTripRequest) (*domain.Trip, error) {
	trip := &domain.Trip{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if trip.Name == "" {
		trip.Name = "Unnamed Trip"
	}

	for i, input := range req.Stops {
		if len(input.Location) != 2 || !utils.ValidateCoordinates(input.Location[0], input.Location[1]) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"stop_index": i,
			})
		}

		trip.AddStop(domain.Stop{
			Latitude:    input.Location[0],
			Longitude:   input.Location[1],
			Category:    domain.ParseStopCategory(input.Type),
			TimeMinutes: input.Time,
			Cost:        input.Cost,
		})
	}

	if _, err := uc.tripRepo.Save(ctx, trip); err != nil {
		uc.logger.Error("Failed to save trip", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	return trip, nil
}

// GetTrip loads a trip with its stops in persisted order.
func (uc *TripUseCase) GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	return uc.tripRepo.GetByID(ctx, id)
}

// GetUserTrips returns all trips of a user, newest first.
func (uc *TripUseCase) GetUserTrips(ctx context.Context, userID string) ([]*domain.Trip, error) {
	return uc.tripRepo.GetByUserID(ctx, userID)
}

// UpdateTrip patches trip metadata.
func (uc *TripUseCase) UpdateTrip(ctx context.Context, id uuid.UUID, req dto.UpdateTripRequest) error {
	return uc.tripRepo.UpdateMetadata(ctx, id, domain.TripMetadata{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
}

// DeleteTrip removes a trip and all its stops.
func (uc *TripUseCase) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return uc.tripRepo.Delete(ctx, id)
}

// DeleteStop removes one stop and keeps the remaining order dense.
func (uc *TripUseCase) DeleteStop(ctx context.Context, tripID uuid.UUID, index int) error {
	if index < 0 {
		return errors.ErrInvalidRequest
	}
	return uc.tripRepo.DeleteStop(ctx, tripID, index)
}

// GetTripDirections aggregates the route over the trip's stops in order.
func (uc *TripUseCase) GetTripDirections(
	ctx context.Context,
	id uuid.UUID,
	mode domain.TravelMode,
	departureTime *time.Time,
) (*domain.Route, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.routeUC.AggregateRoute(ctx, trip.Waypoints(), mode, departureTime)
}

// ListAllTrips groups every persisted trip by owner for the admin listing.
func (uc *TripUseCase) ListAllTrips(ctx context.Context) (*dto.AdminTripsResponse, error) {
	trips, err := uc.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdminTripsResponse{Users: []dto.UserTrips{}}
	byUser := make(map[string]int) // user_id -> index in resp.Users

	for _, trip := range trips {
		idx, ok := byUser[trip.UserID]
		if !ok {
			idx = len(resp.Users)
			byUser[trip.UserID] = idx
			resp.Users = append(resp.Users, dto.UserTrips{UserID: trip.UserID})
		}

		resp.Users[idx].Trips = append(resp.Users[idx].Trips, dto.ConvertTrip(trip))
		resp.Users[idx].TripCount++
		resp.Total++
	}

	return resp, nil
}
