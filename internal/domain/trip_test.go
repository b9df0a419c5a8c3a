package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtrip-service/internal/domain"
)

func TestTrip_RemoveStop(t *testing.T) {
	newTrip := func() *domain.Trip {
		return &domain.Trip{
			Stops: []domain.Stop{
				{Latitude: 40.0, Longitude: -74.0, Category: domain.StopCategoryFood},
				{Latitude: 41.0, Longitude: -75.0, Category: domain.StopCategoryFuel},
				{Latitude: 42.0, Longitude: -76.0, Category: domain.StopCategoryRest},
				{Latitude: 43.0, Longitude: -77.0, Category: domain.StopCategoryMisc},
			},
		}
	}

	t.Run("removing a middle stop shifts later stops down", func(t *testing.T) {
		trip := newTrip()

		ok := trip.RemoveStop(1)
		require.True(t, ok)
		require.Equal(t, 3, trip.TotalStops())

		// Former indices 0, 2, 3 now occupy 0, 1, 2.
		assert.Equal(t, domain.StopCategoryFood, trip.Stops[0].Category)
		assert.Equal(t, domain.StopCategoryRest, trip.Stops[1].Category)
		assert.Equal(t, domain.StopCategoryMisc, trip.Stops[2].Category)
	})

	t.Run("removing the first stop", func(t *testing.T) {
		trip := newTrip()

		require.True(t, trip.RemoveStop(0))
		assert.Equal(t, domain.StopCategoryFuel, trip.Stops[0].Category)
	})

	t.Run("removing the last stop", func(t *testing.T) {
		trip := newTrip()

		require.True(t, trip.RemoveStop(3))
		assert.Equal(t, 3, trip.TotalStops())
		assert.Equal(t, domain.StopCategoryRest, trip.Stops[2].Category)
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		trip := newTrip()

		assert.False(t, trip.RemoveStop(-1))
		assert.False(t, trip.RemoveStop(4))
		assert.Equal(t, 4, trip.TotalStops())
	})
}

func TestTrip_Totals(t *testing.T) {
	trip := &domain.Trip{
		Stops: []domain.Stop{
			{TimeMinutes: 60, Cost: 25.50},
			{TimeMinutes: 15, Cost: 40.00},
			{TimeMinutes: 120, Cost: 12.25},
		},
	}

	assert.Equal(t, 3, trip.TotalStops())
	assert.Equal(t, 195, trip.TotalTime())
	assert.InDelta(t, 77.75, trip.TotalCost(), 1e-9)
}

func TestTrip_Waypoints(t *testing.T) {
	trip := &domain.Trip{
		Stops: []domain.Stop{
			{Latitude: 40.7128, Longitude: -74.0060},
			{Latitude: 39.9526, Longitude: -75.1652},
		},
	}

	points := trip.Waypoints()
	require.Len(t, points, 2)
	assert.Equal(t, domain.Coordinate{Lat: 40.7128, Lon: -74.0060}, points[0])
	assert.Equal(t, domain.Coordinate{Lat: 39.9526, Lon: -75.1652}, points[1])
}

func TestTrip_Stop(t *testing.T) {
	trip := &domain.Trip{
		Stops: []domain.Stop{
			{Category: domain.StopCategoryFood},
		},
	}

	require.NotNil(t, trip.Stop(0))
	assert.Equal(t, domain.StopCategoryFood, trip.Stop(0).Category)
	assert.Nil(t, trip.Stop(1))
	assert.Nil(t, trip.Stop(-1))
}
