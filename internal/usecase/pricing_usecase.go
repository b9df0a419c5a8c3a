package usecase

import (
	"context"

	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/domain/repository"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// Places search radius for the price-level lookup.
const priceLookupRadiusMeters = 1000

// Distance surcharge: every kilometer beyond the threshold adds a flat fee.
// Product constants, copied verbatim - do not tune.
const (
	surchargeThresholdKm = 100.0
	surchargePerKm       = 0.05
)

// priceLevelTable maps the provider's 0-4 price-level ordinal to dollars.
var priceLevelTable = map[int]float64{
	0: 0,   // Free
	1: 15,  // Inexpensive
	2: 25,  // Moderate
	3: 50,  // Expensive
	4: 100, // Very Expensive
}

// defaultPrices is the fallback table used whenever the provider gives no signal.
var defaultPrices = map[domain.StopCategory]float64{
	domain.StopCategoryFood:          20,  // Average meal
	domain.StopCategoryRest:          100, // Average hotel night
	domain.StopCategoryFuel:          60,  // Average gas fill-up
	domain.StopCategoryEntertainment: 35,  // Average activity
	domain.StopCategoryMisc:          15,
}

// categorySearchTerms maps each category to its places search term.
var categorySearchTerms = map[domain.StopCategory]string{
	domain.StopCategoryFood:          "restaurant",
	domain.StopCategoryRest:          "hotel",
	domain.StopCategoryFuel:          "gas_station",
	domain.StopCategoryEntertainment: "amusement_park",
	domain.StopCategoryMisc:          "point_of_interest",
}

// PricingUseCase estimates stop prices from a geo provider price signal,
// degrading to the default table whenever the provider cannot answer.
type PricingUseCase struct {
	geoRepo repository.GeoRepository
	logger  *zap.Logger
}

func NewPricingUseCase(geoRepo repository.GeoRepository, logger *zap.Logger) *PricingUseCase {
	return &PricingUseCase{
		geoRepo: geoRepo,
		logger:  logger,
	}
}

// EstimateStopPrice returns the estimated price for one stop in dollars,
// rounded to cents. Provider failures never propagate - the default table
// answers instead. Only malformed coordinates are a hard error.
func (uc *PricingUseCase) EstimateStopPrice(
	ctx context.Context,
	lat, lon float64,
	category domain.StopCategory,
	cumulativeDistanceKm float64,
) (float64, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return 0, errors.ErrInvalidCoordinates
	}

	basePrice := uc.basePrice(ctx, lat, lon, category)

	// Remote stops cost more: linear per-km fee beyond the threshold.
	surcharge := (cumulativeDistanceKm - surchargeThresholdKm) * surchargePerKm
	if surcharge < 0 {
		surcharge = 0
	}

	return utils.RoundCents(basePrice + surcharge), nil
}

// DefaultPrice returns the fallback price for a category.
func (uc *PricingUseCase) DefaultPrice(category domain.StopCategory) float64 {
	if price, ok := defaultPrices[category]; ok {
		return price
	}
	return defaultPrices[domain.StopCategoryMisc]
}

// basePrice looks up a price-level signal near the stop: first nearby place
// matching the category term, then its price_level attribute. Any gap in the
// chain (provider down, no results, no price level) falls back to the default.
func (uc *PricingUseCase) basePrice(
	ctx context.Context,
	lat, lon float64,
	category domain.StopCategory,
) float64 {
	term, ok := categorySearchTerms[category]
	if !ok {
		term = categorySearchTerms[domain.StopCategoryMisc]
	}

	places, err := uc.geoRepo.PlacesNearby(ctx, lat, lon, priceLookupRadiusMeters, term)
	if err != nil {
		uc.logger.Warn("Places lookup failed, using default price",
			zap.String("category", category.String()),
			zap.Error(err))
		return uc.DefaultPrice(category)
	}
	if len(places) == 0 {
		return uc.DefaultPrice(category)
	}

	details, err := uc.geoRepo.PlaceDetails(ctx, places[0].PlaceID, []string{"price_level", "name", "rating"})
	if err != nil {
		uc.logger.Warn("Place details lookup failed, using default price",
			zap.String("place_id", places[0].PlaceID),
			zap.Error(err))
		return uc.DefaultPrice(category)
	}
	if details == nil || details.PriceLevel == nil {
		return uc.DefaultPrice(category)
	}

	price, ok := priceLevelTable[*details.PriceLevel]
	if !ok {
		return uc.DefaultPrice(category)
	}

	return price
}
