package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/domain"
	apperrors "github.com/korea-weather-service/internal/pkg/errors"
	"github.com/korea-weather-service/internal/repository/gazetteer"
	"github.com/korea-weather-service/internal/usecase"
)

// MockWeatherRepository is a mock of WeatherRepository
type MockWeatherRepository struct {
	mock.Mock
}

func (m *MockWeatherRepository) Current(ctx context.Context, lat, lon float64) (*domain.CurrentWeatherResponse, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrentWeatherResponse), args.Error(1)
}

func (m *MockWeatherRepository) Forecast(ctx context.Context, lat, lon float64) (*domain.ForecastResponse, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastResponse), args.Error(1)
}

func currentPayload() *domain.CurrentWeatherResponse {
	p := &domain.CurrentWeatherResponse{
		Name:           "Gangnam-gu",
		Main:           domain.ProviderMain{Temp: 12.5, FeelsLike: 11.4, Humidity: 55, Pressure: 1016},
		Weather:        []domain.ProviderCondition{{Main: "Clear", Description: "맑음", Icon: "01d"}},
		TimezoneOffset: 32400,
		Dt:             1700010000,
	}
	p.Sys.Country = "KR"
	return p
}

func forecastPayload() *domain.ForecastResponse {
	p := &domain.ForecastResponse{}
	p.City.Name = "Gangnam-gu"
	p.City.Country = "KR"
	p.City.TimezoneOffset = 32400
	p.List = []domain.ForecastItem{
		{Dt: 1700010000, Main: domain.ProviderMain{Temp: 10.0, TempMin: 8.0, TempMax: 11.0}},
		{Dt: 1700020800, Main: domain.ProviderMain{Temp: 9.0, TempMin: 7.0, TempMax: 9.5}},
	}
	return p
}

func newService(geocoder *MockGeocodingRepository, weather *MockWeatherRepository) *usecase.WeatherServiceUseCase {
	logger := zap.NewNop()
	locationUC := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)
	weatherUC := usecase.NewWeatherUseCase(weather, logger)
	return usecase.NewWeatherServiceUseCase(locationUC, weatherUC, logger)
}

func TestWeatherServiceUseCase_GetCurrentWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves then fetches", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		weather := &MockWeatherRepository{}
		svc := newService(geocoder, weather)

		geocoder.On("Search", ctx, "Gangnam-gu, Seoul", 5).Return([]domain.GeocodeResult{
			{Name: "Gangnam-gu", Lat: 37.5172, Lon: 127.0473, Country: "KR"},
		}, nil)
		weather.On("Current", ctx, 37.5172, 127.0473).Return(currentPayload(), nil)

		obs, err := svc.GetCurrentWeather(ctx, "강남구")
		require.NoError(t, err)
		assert.Equal(t, 13, obs.TemperatureC)
		// Name-resolved path does not echo coordinates back.
		assert.Nil(t, obs.Coordinates)
		geocoder.AssertExpectations(t)
		weather.AssertExpectations(t)
	})

	t.Run("resolution failure short-circuits the weather fetch", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		weather := &MockWeatherRepository{}
		svc := newService(geocoder, weather)

		geocoder.On("Search", ctx, mock.Anything, 5).Return([]domain.GeocodeResult{}, nil)

		_, err := svc.GetCurrentWeather(ctx, "doesnotexist123")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		weather.AssertNotCalled(t, "Current", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fetch failure collapses but keeps the kind", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		weather := &MockWeatherRepository{}
		svc := newService(geocoder, weather)

		geocoder.On("Search", ctx, mock.Anything, 5).Return([]domain.GeocodeResult{
			{Name: "Seoul", Lat: 37.5665, Lon: 126.978, Country: "KR"},
		}, nil)
		weather.On("Current", ctx, mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrUpstreamTransport)

		_, err := svc.GetCurrentWeather(ctx, "Seoul")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "WEATHER_UNAVAILABLE", appErr.Code)
		assert.Equal(t, apperrors.KindTransport, appErr.Kind)
	})
}

func TestWeatherServiceUseCase_CoordinateDirect(t *testing.T) {
	ctx := context.Background()

	t.Run("current at coordinates bypasses resolution", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		weather := &MockWeatherRepository{}
		svc := newService(geocoder, weather)

		weather.On("Current", ctx, 37.5172, 127.0473).Return(currentPayload(), nil)

		obs, err := svc.GetCurrentWeatherAt(ctx, 37.5172, 127.0473)
		require.NoError(t, err)
		require.NotNil(t, obs.Coordinates)
		assert.InDelta(t, 37.5172, obs.Coordinates.Lat, 1e-9)
		geocoder.AssertNotCalled(t, "Search")
	})

	t.Run("forecast at coordinates populates every point", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		weather := &MockWeatherRepository{}
		svc := newService(geocoder, weather)

		weather.On("Forecast", ctx, 37.5172, 127.0473).Return(forecastPayload(), nil)

		points, err := svc.GetForecastAt(ctx, 37.5172, 127.0473)
		require.NoError(t, err)
		require.Len(t, points, 2)
		for _, p := range points {
			require.NotNil(t, p.Coordinates)
			assert.InDelta(t, 127.0473, p.Coordinates.Lon, 1e-9)
		}
		assert.False(t, points[1].CapturedAtLocal.Before(points[0].CapturedAtLocal))
	})

	t.Run("invalid coordinates are rejected without an upstream call", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		weather := &MockWeatherRepository{}
		svc := newService(geocoder, weather)

		_, err := svc.GetCurrentWeatherAt(ctx, 123.0, 0.0)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
		weather.AssertNotCalled(t, "Current", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWeatherServiceUseCase_GetForecast(t *testing.T) {
	ctx := context.Background()

	geocoder := &MockGeocodingRepository{}
	weather := &MockWeatherRepository{}
	svc := newService(geocoder, weather)

	geocoder.On("Search", ctx, "Gangnam-gu, Seoul", 5).Return([]domain.GeocodeResult{
		{Name: "Gangnam-gu", Lat: 37.5172, Lon: 127.0473, Country: "KR"},
	}, nil)
	weather.On("Forecast", ctx, 37.5172, 127.0473).Return(forecastPayload(), nil)

	points, err := svc.GetForecast(ctx, "강남구")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Nil(t, points[0].Coordinates)
	assert.Equal(t, 8, points[0].TempMinC)
	assert.Equal(t, 11, points[0].TempMaxC)
}
