package main

// @title Korea Weather Service API
// @version 1.0.0
// @description Weather service for Korean locations. Accepts place names in Korean or romanized form, resolves them to coordinates through a built-in gazetteer and the OpenWeather geocoding API, and returns normalized current conditions and 3-hourly forecasts in the location's own timezone.
// @description
// @description Main features:
// @description - Korean place-name resolution with Korea-first candidate selection
// @description - Current weather and five day forecast by place name or coordinates
// @description - Location suggestions merging the gazetteer with live geocoder hits
// @description - Fixed quick-pick list of popular Korean locations

// @contact.name API Support

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

	"go.uber.org/zap"

	_ "github.com/korea-weather-service/docs/swagger"
	"github.com/korea-weather-service/internal/config"
	httpDelivery "github.com/korea-weather-service/internal/delivery/http"
	"github.com/korea-weather-service/internal/delivery/http/handler"
	"github.com/korea-weather-service/internal/infrastructure/openweather"
	"github.com/korea-weather-service/internal/pkg/logger"
	"github.com/korea-weather-service/internal/repository/gazetteer"
	"github.com/korea-weather-service/internal/usecase"
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

	log.Info("Starting Korea Weather Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Initialize Repositories
	gazetteerRepo := gazetteer.New()
	owClient := openweather.NewClient(&cfg.OpenWeather, log)

	log.Info("Repositories initialized",
		zap.String("weather_base_url", cfg.OpenWeather.BaseURL),
		zap.String("geocoding_url", cfg.OpenWeather.GeocodingURL),
	)

	// 4. Initialize Use Cases
	locationUC := usecase.NewLocationUseCase(
		gazetteerRepo,
		owClient,
		cfg.OpenWeather.GeocodeLimit,
		log,
	)

	weatherUC := usecase.NewWeatherUseCase(
		owClient,
		log,
	)

	weatherSvc := usecase.NewWeatherServiceUseCase(locationUC, weatherUC, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	weatherHandler := handler.NewWeatherHandler(weatherSvc, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		weatherHandler,
		locationHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
