package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/roadtrip-service/internal/domain"
	apperrors "github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/usecase"
)

func intPtr(v int) *int {
	return &v
}

func TestPricingUseCase_EstimateStopPrice(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("uses price level from nearby place", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, 40.7128, -74.006, 1000, "restaurant").
			Return([]domain.Place{{PlaceID: "place-1", Name: "Diner"}}, nil)
		mockGeo.On("PlaceDetails", ctx, "place-1", mock.Anything).
			Return(&domain.PlaceDetails{Name: "Diner", PriceLevel: intPtr(2)}, nil)

		price, err := uc.EstimateStopPrice(ctx, 40.7128, -74.006, domain.StopCategoryFood, 0)
		assert.NoError(t, err)
		assert.Equal(t, 25.0, price)
		mockGeo.AssertExpectations(t)
	})

	t.Run("price level table covers all five ordinals", func(t *testing.T) {
		expected := map[int]float64{0: 0, 1: 15, 2: 25, 3: 50, 4: 100}

		for level, want := range expected {
			mockGeo := &MockGeoRepository{}
			uc := usecase.NewPricingUseCase(mockGeo, logger)

			mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, 1000, "hotel").
				Return([]domain.Place{{PlaceID: "p"}}, nil)
			mockGeo.On("PlaceDetails", ctx, "p", mock.Anything).
				Return(&domain.PlaceDetails{PriceLevel: intPtr(level)}, nil)

			price, err := uc.EstimateStopPrice(ctx, 48.8566, 2.3522, domain.StopCategoryRest, 0)
			assert.NoError(t, err)
			assert.Equal(t, want, price, "price level %d", level)
		}
	})

	t.Run("falls back to default when places lookup fails", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryFood, 0)
		assert.NoError(t, err)
		assert.Equal(t, 20.0, price)
	})

	t.Run("falls back to default when no places found", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, "gas_station").
			Return([]domain.Place{}, nil)

		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryFuel, 0)
		assert.NoError(t, err)
		assert.Equal(t, 60.0, price)
	})

	t.Run("falls back to default when place has no price level", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, "amusement_park").
			Return([]domain.Place{{PlaceID: "p"}}, nil)
		mockGeo.On("PlaceDetails", ctx, "p", mock.Anything).
			Return(&domain.PlaceDetails{Name: "Park", PriceLevel: nil}, nil)

		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryEntertainment, 0)
		assert.NoError(t, err)
		assert.Equal(t, 35.0, price)
	})

	t.Run("falls back to default on unknown price level ordinal", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{{PlaceID: "p"}}, nil)
		mockGeo.On("PlaceDetails", ctx, "p", mock.Anything).
			Return(&domain.PlaceDetails{PriceLevel: intPtr(7)}, nil)

		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryFood, 0)
		assert.NoError(t, err)
		assert.Equal(t, 20.0, price)
	})

	t.Run("no surcharge at or below the distance threshold", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryFood, 100)
		assert.NoError(t, err)
		assert.Equal(t, 20.0, price)
	})

	t.Run("surcharge applied beyond the distance threshold", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		// 300 km: 200 km past the threshold at 0.05/km adds 10.00.
		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryFood, 300)
		assert.NoError(t, err)
		assert.Equal(t, 30.0, price)
	})

	t.Run("negative distance clamps to no surcharge", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryFood, -50)
		assert.NoError(t, err)
		assert.Equal(t, 20.0, price)
	})

	t.Run("rounds to cents", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		mockGeo.On("PlacesNearby", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.Place{}, nil)

		// 100.333 km past the threshold: 20 + 5.01665 rounds to 25.02.
		price, err := uc.EstimateStopPrice(ctx, 40.0, -74.0, domain.StopCategoryFood, 200.333)
		assert.NoError(t, err)
		assert.Equal(t, 25.02, price)
	})

	t.Run("malformed coordinates are a hard error", func(t *testing.T) {
		mockGeo := &MockGeoRepository{}
		uc := usecase.NewPricingUseCase(mockGeo, logger)

		_, err := uc.EstimateStopPrice(ctx, 91.0, 0.0, domain.StopCategoryFood, 0)
		assert.Equal(t, apperrors.ErrInvalidCoordinates, err)

		_, err = uc.EstimateStopPrice(ctx, 0.0, 181.0, domain.StopCategoryFood, 0)
		assert.Equal(t, apperrors.ErrInvalidCoordinates, err)

		mockGeo.AssertNotCalled(t, "PlacesNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPricingUseCase_DefaultPrice(t *testing.T) {
	logger := zap.NewNop()
	uc := usecase.NewPricingUseCase(&MockGeoRepository{}, logger)

	assert.Equal(t, 20.0, uc.DefaultPrice(domain.StopCategoryFood))
	assert.Equal(t, 100.0, uc.DefaultPrice(domain.StopCategoryRest))
	assert.Equal(t, 60.0, uc.DefaultPrice(domain.StopCategoryFuel))
	assert.Equal(t, 35.0, uc.DefaultPrice(domain.StopCategoryEntertainment))
	assert.Equal(t, 15.0, uc.DefaultPrice(domain.StopCategoryMisc))
}
