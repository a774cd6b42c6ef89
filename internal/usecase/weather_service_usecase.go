package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/domain"
	apperrors "github.com/korea-weather-service/internal/pkg/errors"
)

// WeatherServiceUseCase is the single entry point the delivery layer
// consumes: it orchestrates resolution and normalization. Name-based
// calls resolve first and short-circuit on failure; coordinate-direct
// calls skip resolution entirely and echo the coordinates back on the
// result.
type WeatherServiceUseCase struct {
	locationUC *LocationUseCase
	weatherUC  *WeatherUseCase
	logger     *zap.Logger
}

func NewWeatherServiceUseCase(
	locationUC *LocationUseCase,
	weatherUC *WeatherUseCase,
	logger *zap.Logger,
) *WeatherServiceUseCase {
	return &WeatherServiceUseCase{
		locationUC: locationUC,
		weatherUC:  weatherUC,
		logger:     logger,
	}
}

// GetCurrentWeather resolves a place name and fetches its current
// observation.
func (uc *WeatherServiceUseCase) GetCurrentWeather(ctx context.Context, place string) (*domain.WeatherObservation, error) {
	loc, err := uc.locationUC.ResolveCoordinates(ctx, place)
	if err != nil {
		return nil, err
	}

	obs, err := uc.weatherUC.FetchCurrent(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return nil, uc.collapse("current", place, err)
	}
	return obs, nil
}

// GetForecast resolves a place name and fetches its forecast.
func (uc *WeatherServiceUseCase) GetForecast(ctx context.Context, place string) ([]domain.ForecastPoint, error) {
	loc, err := uc.locationUC.ResolveCoordinates(ctx, place)
	if err != nil {
		return nil, err
	}

	points, err := uc.weatherUC.FetchForecast(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return nil, uc.collapse("forecast", place, err)
	}
	return points, nil
}

// GetCurrentWeatherAt serves callers that already hold device-reported
// coordinates. The observation's coordinates field is populated on this
// path only.
func (uc *WeatherServiceUseCase) GetCurrentWeatherAt(ctx context.Context, lat, lon float64) (*domain.WeatherObservation, error) {
	obs, err := uc.weatherUC.FetchCurrent(ctx, lat, lon)
	if err != nil {
		return nil, uc.collapse("current", "", err)
	}
	obs.Coordinates = &domain.Coordinate{Lat: lat, Lon: lon}
	return obs, nil
}

// GetForecastAt is the coordinate-direct forecast variant.
func (uc *WeatherServiceUseCase) GetForecastAt(ctx context.Context, lat, lon float64) ([]domain.ForecastPoint, error) {
	points, err := uc.weatherUC.FetchForecast(ctx, lat, lon)
	if err != nil {
		return nil, uc.collapse("forecast", "", err)
	}
	coord := domain.Coordinate{Lat: lat, Lon: lon}
	for i := range points {
		points[i].Coordinates = &coord
	}
	return points, nil
}

// collapse folds any normalizer failure into the single user-visible
// "could not retrieve weather" error while keeping the taxonomy kind for
// logging, metrics and status mapping. Validation errors pass through
// untouched.
func (uc *WeatherServiceUseCase) collapse(op, place string, err error) error {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInvalid {
		return err
	}

	uc.logger.Warn("Weather request failed",
		zap.String("op", op),
		zap.String("place", place),
		zap.String("kind", string(kind)),
		zap.Error(err))

	collapsed := *apperrors.ErrWeatherUnavailable
	collapsed.Kind = kind
	collapsed.Err = err
	return &collapsed
}
