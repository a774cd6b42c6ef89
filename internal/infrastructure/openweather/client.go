package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/config"
	"github.com/korea-weather-service/internal/domain"
	"github.com/korea-weather-service/internal/domain/repository"
	apperrors "github.com/korea-weather-service/internal/pkg/errors"
)

// Client bundles the two provider roles this API serves: geocoding and
// weather payload fetching.
type Client interface {
	repository.GeocodingRepository
	repository.WeatherRepository
}

// client talks to the OpenWeather geocoding and weather endpoints. It is
// the only place that knows the provider's URLs and query parameters;
// everything above sees domain payloads and the error taxonomy.
type client struct {
	httpClient   *http.Client
	baseURL      string
	geocodingURL string
	apiKey       string
	lang         string
	maxRetries   int
	retryBackoff time.Duration
	breaker      *gobreaker.CircuitBreaker
	logger       *zap.Logger
}

// NewClient creates a new client for the OpenWeather API.
func NewClient(cfg *config.OpenWeatherConfig, logger *zap.Logger) Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		geocodingURL: cfg.GeocodingURL,
		apiKey:       cfg.APIKey,
		lang:         cfg.Language,
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
		breaker:      breaker,
		logger:       logger,
	}
}

// Search resolves a Latin-script query to candidate coordinates via the
// geocoding endpoint. An empty result with a nil error means the
// provider knows no such place.
func (c *client) Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error) {
	if query == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("appid", c.apiKey)

	c.logger.Debug("Calling OpenWeather geocoding API",
		zap.String("query", query),
		zap.Int("limit", limit))

	var results []domain.GeocodeResult
	if err := c.getJSON(ctx, fmt.Sprintf("%s/direct?%s", c.geocodingURL, params.Encode()), &results); err != nil {
		return nil, err
	}

	c.logger.Debug("OpenWeather geocoding call successful",
		zap.String("query", query),
		zap.Int("results", len(results)))

	return results, nil
}

// Current fetches the current-weather payload for the coordinates,
// metric units, configured display language.
func (c *client) Current(ctx context.Context, lat, lon float64) (*domain.CurrentWeatherResponse, error) {
	c.logger.Debug("Calling OpenWeather current weather API",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	var payload domain.CurrentWeatherResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/weather?%s", c.baseURL, c.coordParams(lat, lon).Encode()), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Forecast fetches the 5-day/3-hour forecast payload for the coordinates.
func (c *client) Forecast(ctx context.Context, lat, lon float64) (*domain.ForecastResponse, error) {
	c.logger.Debug("Calling OpenWeather forecast API",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	var payload domain.ForecastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/forecast?%s", c.baseURL, c.coordParams(lat, lon).Encode()), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *client) coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", c.lang)
	return params
}

// getJSON performs the GET with bounded retry on transport faults only.
// Provider rejections (bad key, rate limit) and malformed payloads are
// never retried.
func (c *client) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	var lastErr error

	for attempt := 0; ; attempt++ {
		body, err := c.fetch(ctx, requestURL)
		if err == nil {
			if uerr := json.Unmarshal(body, out); uerr != nil {
				// Parse faults are defects; keep the raw payload for
				// diagnosis.
				c.logger.Error("Failed to decode OpenWeather payload",
					zap.Error(uerr),
					zap.ByteString("payload", truncate(body, 2048)))
				return apperrors.ErrUpstreamParse.Wrap(uerr)
			}
			return nil
		}

		lastErr = err
		if !apperrors.IsRetryable(err) || attempt >= c.maxRetries {
			return lastErr
		}

		delay := c.retryBackoff << attempt
		c.logger.Warn("OpenWeather request failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return apperrors.ErrUpstreamTransport.Wrap(ctx.Err())
		case <-timer.C:
		}
	}
}

// fetch runs a single attempt through the circuit breaker and classifies
// the outcome into the transport/provider taxonomy.
func (c *client) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, apperrors.ErrInternalServer.Wrap(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, apperrors.ErrUpstreamTransport.Wrap(err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, apperrors.ErrUpstreamTransport.Wrap(err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.logger.Error("OpenWeather API returned error",
				zap.Int("status_code", resp.StatusCode),
				zap.ByteString("body", truncate(body, 512)))
			return nil, apperrors.ErrUpstreamProvider.Wrap(
				fmt.Errorf("status %d: %s", resp.StatusCode, truncate(body, 256)))
		}

		return body, nil
	})
	if err != nil {
		// An open circuit means the provider was never reached.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, apperrors.ErrUpstreamTransport.Wrap(err)
		}
		return nil, err
	}

	return result.([]byte), nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
