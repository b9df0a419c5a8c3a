package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/roadtrip-service/internal/domain"
)

// MockGeoRepository is a mock of GeoRepository
type MockGeoRepository struct {
	mock.Mock
}

func (m *MockGeoRepository) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

func (m *MockGeoRepository) ReverseGeocode(ctx context.Context, lat, lon float64) (*string, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockGeoRepository) PlacesNearby(ctx context.Context, lat, lon float64, radiusMeters int, categoryTerm string) ([]domain.Place, error) {
	args := m.Called(ctx, lat, lon, radiusMeters, categoryTerm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockGeoRepository) PlaceDetails(ctx context.Context, placeID string, fields []string) (*domain.PlaceDetails, error) {
	args := m.Called(ctx, placeID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceDetails), args.Error(1)
}

func (m *MockGeoRepository) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	waypoints []domain.Coordinate,
	mode domain.TravelMode,
	departureTime *time.Time,
) (*domain.ProviderRoute, error) {
	args := m.Called(ctx, origin, destination, waypoints, mode, departureTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderRoute), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockTripRepository is a mock of TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Save(ctx context.Context, trip *domain.Trip) (uuid.UUID, error) {
	args := m.Called(ctx, trip)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTripRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) UpdateMetadata(ctx context.Context, id uuid.UUID, meta domain.TripMetadata) error {
	args := m.Called(ctx, id, meta)
	return args.Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripRepository) DeleteStop(ctx context.Context, tripID uuid.UUID, index int) error {
	args := m.Called(ctx, tripID, index)
	return args.Error(0)
}

func (m *MockTripRepository) ListAll(ctx context.Context) ([]*domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Trip), args.Error(1)
}
