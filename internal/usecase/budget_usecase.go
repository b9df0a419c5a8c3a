package usecase

import (
	"context"

	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"github.com/roadtrip-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// BudgetUseCase orchestrates the pricing engine across all stops of an
// itinerary. Pure over its inputs: no itinerary mutation, no re-fetching.
type BudgetUseCase struct {
	pricing *PricingUseCase
	logger  *zap.Logger
}

func NewBudgetUseCase(pricing *PricingUseCase, logger *zap.Logger) *BudgetUseCase {
	return &BudgetUseCase{
		pricing: pricing,
		logger:  logger,
	}
}

// CalculateBudget estimates a price per stop and the trip total.
// distancesMeters optionally carries the cumulative distance traveled to
// reach each stop; a missing or short list means no distance surcharge.
func (uc *BudgetUseCase) CalculateBudget(
	ctx context.Context,
	stops []dto.BudgetStopInput,
	distancesMeters []float64,
) (*dto.BudgetResponse, error) {
	if len(stops) == 0 {
		return nil, errors.ErrEmptyStops
	}

	breakdown := make([]dto.StopPriceBreakdown, 0, len(stops))
	totalCost := 0.0

	for i, stop := range stops {
		if len(stop.Location) != 2 {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"stop_index": i,
			})
		}

		lat, lon := stop.Location[0], stop.Location[1]
		category := domain.ParseStopCategory(stop.Type)

		distanceKm := 0.0
		if i < len(distancesMeters) {
			distanceKm = distancesMeters[i] / 1000 // meters -> km
		}

		price, err := uc.pricing.EstimateStopPrice(ctx, lat, lon, category, distanceKm)
		if err != nil {
			if appErr, ok := err.(*errors.AppError); ok {
				return nil, appErr.WithDetails(map[string]interface{}{
					"stop_index": i,
				})
			}
			return nil, err
		}

		totalCost += price
		breakdown = append(breakdown, dto.StopPriceBreakdown{
			Index:          i,
			Location:       []float64{lat, lon},
			Type:           category.String(),
			EstimatedPrice: price,
		})
	}

	return &dto.BudgetResponse{
		TotalCost: utils.RoundCents(totalCost),
		Stops:     breakdown,
		Currency:  "USD",
	}, nil
}
