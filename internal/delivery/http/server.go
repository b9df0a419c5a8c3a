package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/roadtrip-service/internal/config"
	"github.com/roadtrip-service/internal/delivery/http/handler"
	"github.com/roadtrip-service/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - Fiber-based HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	tripHandler   *handler.TripHandler
	budgetHandler *handler.BudgetHandler
	geoHandler    *handler.GeoHandler
}

// NewServer - creates the HTTP server with all middlewares and routes set up
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tripHandler *handler.TripHandler,
	budgetHandler *handler.BudgetHandler,
	geoHandler *handler.GeoHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Road Trip Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		tripHandler:   tripHandler,
		budgetHandler: budgetHandler,
		geoHandler:    geoHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - middleware chain
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - route registration
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Trip routes
	trips := api.Group("/trips")
	trips.Post("/", s.tripHandler.SaveTrip)
	trips.Get("/user/:user_id", s.tripHandler.GetUserTrips)
	trips.Get("/:id", s.tripHandler.GetTrip)
	trips.Put("/:id", s.tripHandler.UpdateTrip)
	trips.Delete("/:id", s.tripHandler.DeleteTrip)
	trips.Delete("/:id/stops/:index", s.tripHandler.DeleteStop)
	trips.Get("/:id/directions", s.tripHandler.GetTripDirections)

	// Budget routes
	budget := api.Group("/budget")
	budget.Post("/calculate", s.budgetHandler.CalculateBudget)
	budget.Post("/stop-price", s.budgetHandler.GetStopPrice)
	budget.Get("/default-prices", s.budgetHandler.GetDefaultPrices)

	// Maps routes
	maps := api.Group("/maps")
	maps.Post("/geocode", s.geoHandler.Geocode)
	maps.Post("/reverse-geocode", s.geoHandler.ReverseGeocode)
	maps.Post("/directions", s.geoHandler.GetDirections)

	// Admin
	admin := api.Group("/admin")
	admin.Get("/trips", s.tripHandler.ListAllTrips)
}

// Start - start listening
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - fallback for errors that escape the handlers
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
