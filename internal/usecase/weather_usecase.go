package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/domain"
	"github.com/korea-weather-service/internal/domain/repository"
	apperrors "github.com/korea-weather-service/internal/pkg/errors"
	"github.com/korea-weather-service/internal/pkg/utils"
)

// WeatherUseCase fetches provider payloads for coordinates and
// normalizes them into the internal schema: metric units, integer
// temperatures, percentages for precipitation probability, and every
// timestamp in the queried location's own local time.
type WeatherUseCase struct {
	weatherRepo repository.WeatherRepository
	logger      *zap.Logger
}

func NewWeatherUseCase(weatherRepo repository.WeatherRepository, logger *zap.Logger) *WeatherUseCase {
	return &WeatherUseCase{
		weatherRepo: weatherRepo,
		logger:      logger,
	}
}

// FetchCurrent returns the normalized current observation for the
// coordinates.
func (uc *WeatherUseCase) FetchCurrent(ctx context.Context, lat, lon float64) (*domain.WeatherObservation, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	payload, err := uc.weatherRepo.Current(ctx, lat, lon)
	if err != nil {
		uc.logger.Error("Current weather fetch failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err))
		return nil, err
	}

	obs := NormalizeCurrent(payload)
	return &obs, nil
}

// FetchForecast returns the normalized 5-day/3-hour forecast for the
// coordinates, chronologically ordered.
func (uc *WeatherUseCase) FetchForecast(ctx context.Context, lat, lon float64) ([]domain.ForecastPoint, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	payload, err := uc.weatherRepo.Forecast(ctx, lat, lon)
	if err != nil {
		uc.logger.Error("Forecast fetch failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err))
		return nil, err
	}

	return NormalizeForecast(payload), nil
}
