package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"github.com/roadtrip-service/internal/pkg/validator"
	"github.com/roadtrip-service/internal/usecase"
	"github.com/roadtrip-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeoHandler - geocoding and directions endpoints
type GeoHandler struct {
	geoUC   *usecase.GeoUseCase
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewGeoHandler(
	geoUC *usecase.GeoUseCase,
	routeUC *usecase.RouteUseCase,
	logger *zap.Logger,
) *GeoHandler {
	return &GeoHandler{
		geoUC:   geoUC,
		routeUC: routeUC,
		logger:  logger,
	}
}

// Geocode - resolve an address to coordinates
// @Summary Geocode an address
// @Description Returns the coordinates of the first geocoding match for the address.
// @Tags Maps
// @Accept json
// @Produce json
// @Param request body dto.GeocodeRequest true "Address to resolve"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/maps/geocode [post]
func (h *GeoHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	coord, err := h.geoUC.Geocode(c.Context(), req.Address)
	if err != nil {
		return utils.SendError(c, err)
	}
	if coord == nil {
		return utils.SendError(c, errors.ErrAddressNotFound)
	}

	return utils.SendSuccess(c, dto.GeocodeResponse{
		Latitude:  coord.Lat,
		Longitude: coord.Lon,
	}, nil)
}

// ReverseGeocode - resolve coordinates to an address
// @Summary Reverse geocode coordinates
// @Tags Maps
// @Accept json
// @Produce json
// @Param request body dto.ReverseGeocodeRequest true "Coordinates to resolve"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReverseGeocodeResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/maps/reverse-geocode [post]
func (h *GeoHandler) ReverseGeocode(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	addr, err := h.geoUC.ReverseGeocode(c.Context(), req.Latitude, req.Longitude)
	if err != nil {
		return utils.SendError(c, err)
	}
	if addr == nil {
		return utils.SendError(c, errors.ErrAddressNotFound)
	}

	return utils.SendSuccess(c, dto.ReverseGeocodeResponse{Address: *addr}, nil)
}

// GetDirections - one aggregated route over ordered waypoints
// @Summary Directions
// @Description Returns a single route visiting origin, the via waypoints in the given order, and destination.
// @Tags Maps
// @Accept json
// @Produce json
// @Param request body dto.DirectionsRequest true "Origin, destination and ordered via waypoints"
// @Success 200 {object} utils.SuccessResponse{data=dto.DirectionsResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/maps/directions [post]
func (h *GeoHandler) GetDirections(c *fiber.Ctx) error {
	var req dto.DirectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	// Origin first, vias in request order, destination last.
	waypoints := make([]domain.Coordinate, 0, len(req.Waypoints)+2)
	waypoints = append(waypoints, domain.Coordinate{Lat: req.Origin[0], Lon: req.Origin[1]})
	for _, wp := range req.Waypoints {
		waypoints = append(waypoints, domain.Coordinate{Lat: wp[0], Lon: wp[1]})
	}
	waypoints = append(waypoints, domain.Coordinate{Lat: req.Destination[0], Lon: req.Destination[1]})

	mode := domain.ParseTravelMode(req.Mode)

	var departureTime *time.Time
	if req.DepartureTime != nil {
		t := time.Unix(*req.DepartureTime, 0)
		departureTime = &t
	}

	route, err := h.routeUC.AggregateRoute(c.Context(), waypoints, mode, departureTime)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DirectionsResponse{Route: *route}, nil)
}
