package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/domain/repository"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// GeoUseCase is the single-shot geocoding pass-through. Results are cached in
// Redis; since only the provider's first result is ever stored, a cache hit is
// indistinguishable from a fresh call. "No match" is a nil result, not an error.
type GeoUseCase struct {
	geoRepo   repository.GeoRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewGeoUseCase(
	geoRepo repository.GeoRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GeoUseCase {
	return &GeoUseCase{
		geoRepo:   geoRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Geocode resolves an address to the first-result coordinate, nil when none.
func (uc *GeoUseCase) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.ErrInvalidRequest
	}

	key := "geocode:" + strings.ToLower(address)
	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		var coord domain.Coordinate
		if err := json.Unmarshal(cached, &coord); err == nil {
			return &coord, nil
		}
	}

	coord, err := uc.geoRepo.Geocode(ctx, address)
	if err != nil {
		uc.logger.Error("Geocoding failed", zap.Error(err))
		return nil, uc.providerError(err)
	}
	if coord == nil {
		return nil, nil
	}

	if data, err := json.Marshal(coord); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache geocode result", zap.Error(err))
		}
	}

	return coord, nil
}

// ReverseGeocode resolves coordinates to the first formatted address, nil when none.
func (uc *GeoUseCase) ReverseGeocode(ctx context.Context, lat, lon float64) (*string, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	key := fmt.Sprintf("revgeo:%.6f:%.6f", lat, lon)
	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		addr := string(cached)
		return &addr, nil
	}

	addr, err := uc.geoRepo.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		uc.logger.Error("Reverse geocoding failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return nil, uc.providerError(err)
	}
	if addr == nil {
		return nil, nil
	}

	if err := uc.cacheRepo.Set(ctx, key, []byte(*addr), uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache reverse geocode result", zap.Error(err))
	}

	return addr, nil
}

// providerError keeps AppError sentinels intact and wraps everything else
// as a provider failure.
func (uc *GeoUseCase) providerError(err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	return errors.ErrGeoProvider
}
