package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/pkg/errors"
	"github.com/korea-weather-service/internal/pkg/utils"
	"github.com/korea-weather-service/internal/pkg/validator"
	"github.com/korea-weather-service/internal/usecase"
	"github.com/korea-weather-service/internal/usecase/dto"
)

// WeatherHandler serves current conditions and forecasts.
type WeatherHandler struct {
	weatherSvc *usecase.WeatherServiceUseCase
	logger     *zap.Logger
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherSvc *usecase.WeatherServiceUseCase, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		weatherSvc: weatherSvc,
		logger:     logger,
	}
}

// GetCurrent godoc
// @Summary Current weather
// @Description Returns the current observation for a Korean place name or an explicit coordinate pair. Pass either place or both lat and lon; place wins when both are present.
// @Tags Weather
// @Accept json
// @Produce json
// @Param place query string false "Place name, Korean or romanized (e.g. 강남구, Seoul)"
// @Param lat query number false "Latitude in decimal degrees"
// @Param lon query number false "Longitude in decimal degrees"
// @Success 200 {object} utils.SuccessResponse{data=dto.CurrentWeatherResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/weather/current [get]
func (h *WeatherHandler) GetCurrent(c *fiber.Ctx) error {
	place := c.Query("place")
	if place != "" {
		req := dto.WeatherByPlaceRequest{Place: place}
		if err := validator.Validate(&req); err != nil {
			return utils.SendError(c, err)
		}

		obs, err := h.weatherSvc.GetCurrentWeather(c.Context(), req.Place)
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, dto.CurrentWeatherResponse{
			Observation: *obs,
			IconURL:     obs.IconURL(),
		}, nil)
	}

	req, err := parseCoords(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	obs, err := h.weatherSvc.GetCurrentWeatherAt(c.Context(), req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.CurrentWeatherResponse{
		Observation: *obs,
		IconURL:     obs.IconURL(),
	}, nil)
}

// GetForecast godoc
// @Summary Five day forecast
// @Description Returns 3-hourly forecast points in chronological order, addressed the same way as the current weather endpoint.
// @Tags Weather
// @Accept json
// @Produce json
// @Param place query string false "Place name, Korean or romanized"
// @Param lat query number false "Latitude in decimal degrees"
// @Param lon query number false "Longitude in decimal degrees"
// @Success 200 {object} utils.SuccessResponse{data=dto.ForecastResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/weather/forecast [get]
func (h *WeatherHandler) GetForecast(c *fiber.Ctx) error {
	place := c.Query("place")
	if place != "" {
		req := dto.WeatherByPlaceRequest{Place: place}
		if err := validator.Validate(&req); err != nil {
			return utils.SendError(c, err)
		}

		result, err := h.weatherSvc.GetForecast(c.Context(), req.Place)
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, dto.ForecastResponse{
			Points: result,
			Total:  len(result),
		}, &utils.Meta{Total: len(result)})
	}

	req, err := parseCoords(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.weatherSvc.GetForecastAt(c.Context(), req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.ForecastResponse{
		Points: result,
		Total:  len(result),
	}, &utils.Meta{Total: len(result)})
}

// parseCoords reads lat/lon query parameters. Both must be present and
// numeric when no place name is given.
func parseCoords(c *fiber.Ctx) (dto.WeatherByCoordsRequest, error) {
	var req dto.WeatherByCoordsRequest

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"hint": "pass either place or both lat and lon",
		})
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return req, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": "must be a number",
		})
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return req, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lon": "must be a number",
		})
	}

	req.Lat = lat
	req.Lon = lon
	if err := validator.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}
