package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/pkg/errors"
	"github.com/roadtrip-service/internal/pkg/utils"
	"github.com/roadtrip-service/internal/pkg/validator"
	"github.com/roadtrip-service/internal/usecase"
	"github.com/roadtrip-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// BudgetHandler - budget and stop-price estimation endpoints
type BudgetHandler struct {
	budgetUC  *usecase.BudgetUseCase
	pricingUC *usecase.PricingUseCase
	logger    *zap.Logger
}

func NewBudgetHandler(
	budgetUC *usecase.BudgetUseCase,
	pricingUC *usecase.PricingUseCase,
	logger *zap.Logger,
) *BudgetHandler {
	return &BudgetHandler{
		budgetUC:  budgetUC,
		pricingUC: pricingUC,
		logger:    logger,
	}
}

// CalculateBudget - full cost breakdown for an ordered stop list
// @Summary Calculate trip budget
// @Description Estimates a price per stop and the trip total. Distances (cumulative meters per stop) are optional.
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body dto.BudgetRequest true "Stops and optional distances"
// @Success 200 {object} utils.SuccessResponse{data=dto.BudgetResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/budget/calculate [post]
func (h *BudgetHandler) CalculateBudget(c *fiber.Ctx) error {
	var req dto.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.budgetUC.CalculateBudget(c.Context(), req.Stops, req.Distances)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Stops),
	})
}

// GetStopPrice - estimated price for a single stop
// @Summary Estimate one stop price
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body dto.StopPriceRequest true "Stop location, category and distance"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopPriceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/budget/stop-price [post]
func (h *BudgetHandler) GetStopPrice(c *fiber.Ctx) error {
	var req dto.StopPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	category := domain.ParseStopCategory(req.Type)
	price, err := h.pricingUC.EstimateStopPrice(c.Context(), req.Latitude, req.Longitude, category, req.DistanceKm)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.StopPriceResponse{
		EstimatedPrice: price,
		Type:           category.String(),
		Location:       []float64{req.Latitude, req.Longitude},
		Currency:       "USD",
	}, nil)
}

// GetDefaultPrices - fallback price table for all categories
func (h *BudgetHandler) GetDefaultPrices(c *fiber.Ctx) error {
	prices := make(map[string]float64)
	for _, category := range domain.ValidStopCategories() {
		prices[category.String()] = h.pricingUC.DefaultPrice(category)
	}

	return utils.SendSuccess(c, dto.DefaultPricesResponse{
		DefaultPrices: prices,
		Currency:      "USD",
	}, nil)
}
