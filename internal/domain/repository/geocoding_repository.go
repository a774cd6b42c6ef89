package repository

import (
	"context"

	"github.com/korea-weather-service/internal/domain"
)

// GeocodingRepository defines access to the upstream geocoding provider.
type GeocodingRepository interface {
	// Search resolves a Latin-script place query to candidate
	// coordinates, in provider-returned order. An empty slice with a nil
	// error means the provider knows no such place.
	Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error)
}
