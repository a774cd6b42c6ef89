package domain

import (
	"fmt"
	"time"
)

// iconURLTemplate is the provider's fixed icon image pattern. No network
// validation is performed, the code is substituted as-is.
const iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// IconURL maps a provider icon code to its image URL.
func IconURL(iconCode string) string {
	return fmt.Sprintf(iconURLTemplate, iconCode)
}

// WeatherObservation is the normalized shape of a current-weather reading.
// Every timestamp is civil time in the queried location's own zone,
// carried as a fixed offset taken from the provider response, never the
// host machine's zone.
type WeatherObservation struct {
	City             string      `json:"city"`
	CountryCode      string      `json:"country_code"`
	CapturedAtLocal  time.Time   `json:"captured_at_local"`
	UTCOffsetSeconds int         `json:"utc_offset_seconds"`
	TemperatureC     int         `json:"temperature_c"`
	FeelsLikeC       int         `json:"feels_like_c"`
	HumidityPct      int         `json:"humidity_pct"`
	PressureHpa      int         `json:"pressure_hpa"`
	VisibilityKm     float64     `json:"visibility_km"`
	WindSpeedMs      float64     `json:"wind_speed_ms"`
	WindDirectionDeg int         `json:"wind_direction_deg"`
	ConditionMain    string      `json:"condition_main"`
	ConditionDesc    string      `json:"condition_description"`
	ConditionIcon    string      `json:"condition_icon"`
	CloudsPct        int         `json:"clouds_pct"`
	SunriseLocal     *time.Time  `json:"sunrise_local,omitempty"`
	SunsetLocal      *time.Time  `json:"sunset_local,omitempty"`
	Coordinates      *Coordinate `json:"coordinates,omitempty"`
}

// IconURL returns the image URL for the observation's condition icon.
func (o WeatherObservation) IconURL() string {
	return IconURL(o.ConditionIcon)
}

// ForecastPoint is one 3-hour forecast slot. Points are ordered
// chronologically and immutable once constructed.
type ForecastPoint struct {
	WeatherObservation

	TempMinC int `json:"temp_min_c"`
	TempMaxC int `json:"temp_max_c"`
	// 0-100 scale. Missing upstream probability is stored as 0, never
	// absent, so aggregation never special-cases it.
	PrecipProbabilityPct float64 `json:"precip_probability_pct"`
}
