package repository

import (
	"context"

	"github.com/korea-weather-service/internal/domain"
)

// WeatherRepository defines access to the upstream weather provider.
// Both calls fix units to metric and language to the configured display
// language; failures carry the transport/provider/parse taxonomy from
// pkg/errors.
type WeatherRepository interface {
	// Current fetches the current-weather payload for the coordinates.
	Current(ctx context.Context, lat, lon float64) (*domain.CurrentWeatherResponse, error)

	// Forecast fetches the 5-day/3-hour forecast payload for the
	// coordinates.
	Forecast(ctx context.Context, lat, lon float64) (*domain.ForecastResponse, error)
}
