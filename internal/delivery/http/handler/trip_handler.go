package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"github.com/roadtrip-service/internal/pkg/validator"
	"github.com/roadtrip-service/internal/usecase"
	"github.com/roadtrip-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// TripHandler - trip persistence and trip-level directions endpoints
type TripHandler struct {
	tripUC *usecase.TripUseCase
	logger *zap.Logger
}

func NewTripHandler(tripUC *usecase.TripUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		logger: logger,
	}
}

// SaveTrip - persist a new trip with its ordered stops
// @Summary Save a trip
// @Description Persists a trip with its ordered stops and returns the stored representation.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.SaveTripRequest true "Trip with stops"
// @Success 201 {object} utils.SuccessResponse{data=dto.TripResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trips [post]
func (h *TripHandler) SaveTrip(c *fiber.Ctx) error {
	var req dto.SaveTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	trip, err := h.tripUC.SaveTrip(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp := dto.ConvertTrip(trip)
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: resp})
}

// GetTrip - fetch one trip by id
// @Summary Get a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.TripResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	trip, err := h.tripUC.GetTrip(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertTrip(trip), nil)
}

// GetUserTrips - list all trips of a user, newest first
func (h *TripHandler) GetUserTrips(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	trips, err := h.tripUC.GetUserTrips(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	result := make([]dto.TripResponse, 0, len(trips))
	for _, trip := range trips {
		result = append(result, dto.ConvertTrip(trip))
	}

	return utils.SendSuccess(c, fiber.Map{"trips": result}, &utils.Meta{
		Total: len(result),
	})
}

// UpdateTrip - patch trip metadata (name, description, image)
func (h *TripHandler) UpdateTrip(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.tripUC.UpdateTrip(c.Context(), id, req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Trip updated successfully"}, nil)
}

// DeleteTrip - delete a trip and all its stops
func (h *TripHandler) DeleteTrip(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.tripUC.DeleteTrip(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Trip deleted successfully"}, nil)
}

// DeleteStop - delete one stop by index; later stops shift down by one
// @Summary Delete a stop
// @Description Removes the stop at the given index and renumbers the remaining stops densely.
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param index path int true "Zero-based stop index"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/stops/{index} [delete]
func (h *TripHandler) DeleteStop(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.tripUC.DeleteStop(c.Context(), id, index); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Stop deleted successfully"}, nil)
}

// GetTripDirections - aggregated route over the trip's stops in order
// @Summary Trip directions
// @Description Returns one aggregated route connecting the trip's stops in their stored order.
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param mode query string false "Travel mode (driving, walking, bicycling, transit)" default(driving)
// @Param departure_time query int false "Departure time hint, unix seconds"
// @Success 200 {object} utils.SuccessResponse{data=dto.DirectionsResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/directions [get]
func (h *TripHandler) GetTripDirections(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	mode := domain.ParseTravelMode(c.Query("mode", "driving"))

	var departureTime *time.Time
	if ts := c.QueryInt("departure_time", 0); ts > 0 {
		t := time.Unix(int64(ts), 0)
		departureTime = &t
	}

	route, err := h.tripUC.GetTripDirections(c.Context(), id, mode, departureTime)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DirectionsResponse{Route: *route}, nil)
}

// ListAllTrips - admin listing of every trip grouped by user
func (h *TripHandler) ListAllTrips(c *fiber.Ctx) error {
	resp, err := h.tripUC.ListAllTrips(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total: resp.Total,
	})
}
