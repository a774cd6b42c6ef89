package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/config"
	"github.com/korea-weather-service/internal/delivery/http/handler"
	"github.com/korea-weather-service/internal/delivery/http/middleware"
	"github.com/korea-weather-service/internal/pkg/errors"
	"github.com/korea-weather-service/internal/pkg/utils"
)

// Server is the Fiber-based HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	weatherHandler  *handler.WeatherHandler
	locationHandler *handler.LocationHandler
}

// NewServer creates the HTTP server and wires all routes.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	weatherHandler *handler.WeatherHandler,
	locationHandler *handler.LocationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Korea Weather Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		weatherHandler:  weatherHandler,
		locationHandler: locationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

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

	// Weather routes
	api.Get("/weather/current", s.weatherHandler.GetCurrent)
	api.Get("/weather/forecast", s.weatherHandler.GetForecast)

	// Location routes
	api.Get("/locations/resolve", s.locationHandler.Resolve)
	api.Get("/locations/search", s.locationHandler.Search)
	api.Get("/locations/popular", s.locationHandler.Popular)
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escape the handlers, keeping
// the same envelope the handlers use.
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

		if _, ok := err.(*errors.AppError); ok {
			return utils.SendError(c, err)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.ErrInternalServer.WithDetails(map[string]interface{}{
				"cause": err.Error(),
			}),
		})
	}
}
