package dto

// ResolveLocationRequest asks for exactly one set of coordinates for a
// free-form place name.
type ResolveLocationRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// SearchLocationsRequest asks for ranked location suggestions.
type SearchLocationsRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

// WeatherByPlaceRequest fetches weather for a place name.
type WeatherByPlaceRequest struct {
	Place string `json:"place" validate:"required,min=1"`
}

// WeatherByCoordsRequest fetches weather for device-reported
// coordinates, bypassing resolution.
type WeatherByCoordsRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}
