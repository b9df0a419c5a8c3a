package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roadtrip-service/internal/domain"
	apperrors "github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/usecase"
	"github.com/roadtrip-service/internal/usecase/dto"
)

func newTripUC(tripRepo *MockTripRepository, geoRepo *MockGeoRepository) *usecase.TripUseCase {
	logger := zap.NewNop()
	routeUC := usecase.NewRouteUseCase(geoRepo, logger)
	return usecase.NewTripUseCase(tripRepo, routeUC, logger)
}

func TestTripUseCase_SaveTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("persists stops in request order with parsed categories", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		mockRepo.On("Save", ctx, mock.AnythingOfType("*domain.Trip")).
			Return(uuid.New(), nil)

		req := dto.SaveTripRequest{
			UserID: "user-1",
			Name:   "East Coast",
			Stops: []dto.StopInput{
				{Location: []float64{40.7128, -74.0060}, Type: "food", Time: 60, Cost: 25},
				{Location: []float64{39.9526, -75.1652}, Type: "FUEL", Time: 10, Cost: 40},
				{Location: []float64{38.9072, -77.0369}, Type: "sightseeing", Time: 120},
			},
		}

		trip, err := uc.SaveTrip(ctx, req)
		require.NoError(t, err)
		require.Equal(t, 3, trip.TotalStops())

		assert.Equal(t, domain.StopCategoryFood, trip.Stops[0].Category)
		assert.Equal(t, domain.StopCategoryFuel, trip.Stops[1].Category)
		assert.Equal(t, domain.StopCategoryMisc, trip.Stops[2].Category)
		assert.Equal(t, 40.7128, trip.Stops[0].Latitude)
		mockRepo.AssertExpectations(t)
	})

	t.Run("defaults the trip name when blank", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		mockRepo.On("Save", ctx, mock.AnythingOfType("*domain.Trip")).
			Return(uuid.New(), nil)

		trip, err := uc.SaveTrip(ctx, dto.SaveTripRequest{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, "Unnamed Trip", trip.Name)
	})

	t.Run("rejects a malformed stop location with its index", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		req := dto.SaveTripRequest{
			UserID: "user-1",
			Stops: []dto.StopInput{
				{Location: []float64{40.0, -74.0}},
				{Location: []float64{200.0, -74.0}},
			},
		}

		trip, err := uc.SaveTrip(ctx, req)
		assert.Nil(t, trip)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrInvalidCoordinates.Code, appErr.Code)
		assert.Equal(t, 1, appErr.Details["stop_index"])

		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestTripUseCase_DeleteStop(t *testing.T) {
	ctx := context.Background()

	t.Run("negative index rejected without touching the repository", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		err := uc.DeleteStop(ctx, uuid.New(), -1)
		assert.Equal(t, apperrors.ErrInvalidRequest, err)
		mockRepo.AssertNotCalled(t, "DeleteStop", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		tripID := uuid.New()
		mockRepo.On("DeleteStop", ctx, tripID, 2).Return(nil)

		err := uc.DeleteStop(ctx, tripID, 2)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing stop surfaces the repository sentinel", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		tripID := uuid.New()
		mockRepo.On("DeleteStop", ctx, tripID, 9).Return(apperrors.ErrStopNotFound)

		err := uc.DeleteStop(ctx, tripID, 9)
		assert.Equal(t, apperrors.ErrStopNotFound, err)
	})
}

func TestTripUseCase_GetTripDirections(t *testing.T) {
	ctx := context.Background()

	t.Run("routes over the trip's stops in stored order", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		mockGeo := &MockGeoRepository{}
		uc := newTripUC(mockRepo, mockGeo)

		tripID := uuid.New()
		trip := &domain.Trip{
			ID:     tripID,
			UserID: "user-1",
			Stops: []domain.Stop{
				{Latitude: 40.7128, Longitude: -74.0060},
				{Latitude: 39.9526, Longitude: -75.1652},
				{Latitude: 38.9072, Longitude: -77.0369},
			},
		}

		mockRepo.On("GetByID", ctx, tripID).Return(trip, nil)
		mockGeo.On("Route", ctx,
			domain.Coordinate{Lat: 40.7128, Lon: -74.0060},
			domain.Coordinate{Lat: 38.9072, Lon: -77.0369},
			[]domain.Coordinate{{Lat: 39.9526, Lon: -75.1652}},
			domain.TravelModeDriving,
			(*time.Time)(nil),
		).Return(&domain.ProviderRoute{
			Polyline: "poly",
			Legs: []domain.RouteLeg{
				{DistanceMeters: 150000, DurationSeconds: 5400},
				{DistanceMeters: 220000, DurationSeconds: 7800},
			},
		}, nil)

		route, err := uc.GetTripDirections(ctx, tripID, domain.TravelModeDriving, nil)
		require.NoError(t, err)
		assert.Equal(t, 370000, route.TotalDistanceMeters)
		assert.Equal(t, 13200, route.TotalDurationSeconds)
		mockGeo.AssertExpectations(t)
	})

	t.Run("a trip with one stop cannot be routed", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		mockGeo := &MockGeoRepository{}
		uc := newTripUC(mockRepo, mockGeo)

		tripID := uuid.New()
		mockRepo.On("GetByID", ctx, tripID).Return(&domain.Trip{
			ID:    tripID,
			Stops: []domain.Stop{{Latitude: 40.0, Longitude: -74.0}},
		}, nil)

		route, err := uc.GetTripDirections(ctx, tripID, domain.TravelModeDriving, nil)
		assert.Nil(t, route)
		assert.Equal(t, apperrors.ErrNotEnoughWaypoints, err)
	})

	t.Run("missing trip surfaces not found", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		tripID := uuid.New()
		mockRepo.On("GetByID", ctx, tripID).Return(nil, apperrors.ErrTripNotFound)

		route, err := uc.GetTripDirections(ctx, tripID, domain.TravelModeDriving, nil)
		assert.Nil(t, route)
		assert.Equal(t, apperrors.ErrTripNotFound, err)
	})
}

func TestTripUseCase_ListAllTrips(t *testing.T) {
	ctx := context.Background()

	t.Run("groups trips by owner preserving first-seen order", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		trips := []*domain.Trip{
			{ID: uuid.New(), UserID: "alice", Name: "Coast"},
			{ID: uuid.New(), UserID: "alice", Name: "Desert"},
			{ID: uuid.New(), UserID: "bob", Name: "Mountains"},
		}
		mockRepo.On("ListAll", ctx).Return(trips, nil)

		resp, err := uc.ListAllTrips(ctx)
		require.NoError(t, err)
		require.Len(t, resp.Users, 2)

		assert.Equal(t, "alice", resp.Users[0].UserID)
		assert.Equal(t, 2, resp.Users[0].TripCount)
		assert.Equal(t, "bob", resp.Users[1].UserID)
		assert.Equal(t, 1, resp.Users[1].TripCount)
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("empty store yields an empty listing", func(t *testing.T) {
		mockRepo := &MockTripRepository{}
		uc := newTripUC(mockRepo, &MockGeoRepository{})

		mockRepo.On("ListAll", ctx).Return([]*domain.Trip{}, nil)

		resp, err := uc.ListAllTrips(ctx)
		require.NoError(t, err)
		assert.Empty(t, resp.Users)
		assert.Equal(t, 0, resp.Total)
	})
}
