package dto

import "github.com/korea-weather-service/internal/domain"

// ResolveLocationResponse carries the single resolved location.
type ResolveLocationResponse struct {
	Location domain.ResolvedLocation `json:"location"`
}

// SearchLocationsResponse carries ranked suggestions: gazetteer entries
// first, then live geocoder hits.
type SearchLocationsResponse struct {
	Results []domain.LocationCandidate `json:"results"`
	Total   int                        `json:"total"`
}

// PopularLocationsResponse carries the fixed quick-pick list.
type PopularLocationsResponse struct {
	Locations []string `json:"locations"`
}

// CurrentWeatherResponse wraps a normalized observation together with
// the resolved icon image URL.
type CurrentWeatherResponse struct {
	Observation domain.WeatherObservation `json:"observation"`
	IconURL     string                    `json:"icon_url"`
}

// ForecastResponse carries chronologically ordered forecast points.
type ForecastResponse struct {
	Points []domain.ForecastPoint `json:"points"`
	Total  int                    `json:"total"`
}
