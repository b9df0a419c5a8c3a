package main

// @title Road Trip Service API
// @version 1.0.0
// @description Road-trip itinerary costing and route aggregation service. Persists trips with ordered stops, estimates stop prices from nearby place data, calculates trip budgets and aggregates multi-leg driving routes.
// @description
// @description Main features:
// @description - Trip persistence with ordered, densely numbered stops
// @description - Per-stop price estimation with graceful fallback to category defaults
// @description - Trip budget calculation with distance surcharges
// @description - Single-request multi-waypoint route aggregation
// @description - Geocoding and reverse geocoding with Redis caching

// @contact.name API Support
// @contact.email support@roadtrip-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/roadtrip-service/docs/swagger"
	"github.com/roadtrip-service/internal/config"
	httpDelivery "github.com/roadtrip-service/internal/delivery/http"
	"github.com/roadtrip-service/internal/delivery/http/handler"
	"github.com/roadtrip-service/internal/domain/repository"
	"github.com/roadtrip-service/internal/infrastructure/googlemaps"
	"github.com/roadtrip-service/internal/pkg/logger"
	"github.com/roadtrip-service/internal/repository/cache"
	"github.com/roadtrip-service/internal/repository/postgres"
	"github.com/roadtrip-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Road Trip Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	tripRepo := postgres.NewTripRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	// The provider is picked once at startup. Without an API key every
	// provider-dependent operation reports itself unavailable.
	var geoRepo repository.GeoRepository
	if cfg.Google.APIKey != "" {
		geoRepo = googlemaps.NewClient(&cfg.Google, log)
	} else {
		geoRepo = googlemaps.NewOfflineClient(log)
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	pricingUC := usecase.NewPricingUseCase(geoRepo, log)
	budgetUC := usecase.NewBudgetUseCase(pricingUC, log)
	routeUC := usecase.NewRouteUseCase(geoRepo, log)
	geoUC := usecase.NewGeoUseCase(geoRepo, cacheRepo, log, cfg.Cache.GeocodeCacheTTL)
	tripUC := usecase.NewTripUseCase(tripRepo, routeUC, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	tripHandler := handler.NewTripHandler(tripUC, log)
	budgetHandler := handler.NewBudgetHandler(budgetUC, pricingUC, log)
	geoHandler := handler.NewGeoHandler(geoUC, routeUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tripHandler,
		budgetHandler,
		geoHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
