package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	OpenWeather OpenWeatherConfig
	Log         LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// OpenWeatherConfig covers both the geocoding and the weather endpoints
// of the provider.
type OpenWeatherConfig struct {
	APIKey         string
	BaseURL        string
	GeocodingURL   string
	Language       string
	GeocodeLimit   int
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine when everything comes from the
		// environment; any other read failure is fatal. With an explicit
		// config file viper reports absence as fs.ErrNotExist, not as
		// ConfigFileNotFoundError.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		OpenWeather: OpenWeatherConfig{
			APIKey:         viper.GetString("OPENWEATHER_API_KEY"),
			BaseURL:        viper.GetString("OPENWEATHER_BASE_URL"),
			GeocodingURL:   viper.GetString("OPENWEATHER_GEOCODING_URL"),
			Language:       viper.GetString("WEATHER_LANG"),
			GeocodeLimit:   viper.GetInt("GEOCODE_LIMIT"),
			RequestTimeout: time.Duration(viper.GetInt("OPENWEATHER_TIMEOUT")) * time.Second,
			MaxRetries:     viper.GetInt("OPENWEATHER_MAX_RETRIES"),
			RetryBackoff:   time.Duration(viper.GetInt("OPENWEATHER_RETRY_BACKOFF_MS")) * time.Millisecond,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.OpenWeather.BaseURL == "" {
		cfg.OpenWeather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.OpenWeather.GeocodingURL == "" {
		cfg.OpenWeather.GeocodingURL = "https://api.openweathermap.org/geo/1.0"
	}
	if cfg.OpenWeather.Language == "" {
		cfg.OpenWeather.Language = "kr"
	}
	// At least 5 candidates are requested so the resolver can
	// disambiguate by country even though it returns only one.
	if cfg.OpenWeather.GeocodeLimit < 5 {
		cfg.OpenWeather.GeocodeLimit = 5
	}
	if cfg.OpenWeather.RequestTimeout == 0 {
		cfg.OpenWeather.RequestTimeout = 10 * time.Second
	}
	if cfg.OpenWeather.MaxRetries == 0 {
		cfg.OpenWeather.MaxRetries = 2
	}
	if cfg.OpenWeather.RetryBackoff == 0 {
		cfg.OpenWeather.RetryBackoff = 500 * time.Millisecond
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.OpenWeather.APIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required")
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
