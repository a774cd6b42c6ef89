package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/domain"
	"github.com/korea-weather-service/internal/domain/repository"
	apperrors "github.com/korea-weather-service/internal/pkg/errors"
)

// LocationUseCase resolves free-form place names (Korean or Latin
// script) to coordinates, combining the local gazetteer with the live
// geocoding provider.
type LocationUseCase struct {
	gazetteer    repository.GazetteerRepository
	geocoder     repository.GeocodingRepository
	geocodeLimit int
	logger       *zap.Logger
}

func NewLocationUseCase(
	gazetteer repository.GazetteerRepository,
	geocoder repository.GeocodingRepository,
	geocodeLimit int,
	logger *zap.Logger,
) *LocationUseCase {
	return &LocationUseCase{
		gazetteer:    gazetteer,
		geocoder:     geocoder,
		geocodeLimit: geocodeLimit,
		logger:       logger,
	}
}

// ResolveCoordinates turns a raw query into exactly one location.
// Korean input is translated through the gazetteer first; input the
// gazetteer does not know is assumed to be Latin-script already and
// passed to the geocoder verbatim. Among the returned candidates the
// first Korean one wins when present, since romanized Korean names
// collide with places abroad.
//
// Both "unknown place" and a failing geocoder surface as the same
// not-found result; the distinction is logged here for observability.
func (uc *LocationUseCase) ResolveCoordinates(ctx context.Context, rawQuery string) (*domain.ResolvedLocation, error) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	searchTerm := query
	if canonical, ok := uc.gazetteer.Lookup(query); ok {
		searchTerm = canonical
		uc.logger.Debug("Gazetteer translated query",
			zap.String("query", query),
			zap.String("search_term", canonical))
	}

	results, err := uc.geocoder.Search(ctx, searchTerm, uc.geocodeLimit)
	if err != nil {
		uc.logger.Error("Geocoding failed",
			zap.String("search_term", searchTerm),
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err))
		return nil, apperrors.ErrLocationNotFound.Wrap(err)
	}
	if len(results) == 0 {
		uc.logger.Info("No geocoding candidates",
			zap.String("search_term", searchTerm))
		return nil, apperrors.ErrLocationNotFound
	}

	chosen := results[0]
	for _, r := range results {
		if r.Country == domain.CountryKR {
			chosen = r
			break
		}
	}

	return &domain.ResolvedLocation{
		Lat:         chosen.Lat,
		Lon:         chosen.Lon,
		CountryCode: chosen.Country,
	}, nil
}

// SearchLocations merges gazetteer suggestions with live geocoder hits
// for the same query. A failing geocoder degrades to local-only results
// rather than failing the call. Local entries come first (ascending name
// length), then remote hits in provider order, deduplicated by
// case-insensitive display name.
func (uc *LocationUseCase) SearchLocations(ctx context.Context, query string, limit int) []domain.LocationCandidate {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = 10
	}

	var candidates []domain.LocationCandidate
	for _, entry := range uc.gazetteer.Suggest(query, limit) {
		candidates = append(candidates, domain.LocationCandidate{
			DisplayName: entry.DisplayName(),
			SearchQuery: entry.Canonical,
			Source:      domain.SourceLocalGazetteer,
		})
	}

	remote, err := uc.geocoder.Search(ctx, query, limit)
	if err != nil {
		uc.logger.Warn("Geocoder unavailable, returning local suggestions only",
			zap.String("query", query),
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err))
	}
	for _, r := range remote {
		coord := domain.Coordinate{Lat: r.Lat, Lon: r.Lon}
		candidates = append(candidates, domain.LocationCandidate{
			DisplayName: remoteDisplayName(r),
			SearchQuery: r.Name,
			Source:      domain.SourceRemoteGeocoder,
			Coordinates: &coord,
			CountryCode: r.Country,
		})
	}

	seen := make(map[string]struct{}, len(candidates))
	deduped := candidates[:0]
	for _, c := range candidates {
		key := strings.ToLower(c.DisplayName)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, c)
	}

	if len(deduped) > limit {
		deduped = deduped[:limit]
	}
	return deduped
}

// PopularLocations returns the fixed quick-pick list of well known
// Korean place names.
func (uc *LocationUseCase) PopularLocations() []string {
	return uc.gazetteer.Popular()
}

func remoteDisplayName(r domain.GeocodeResult) string {
	parts := []string{r.Name}
	if r.State != "" {
		parts = append(parts, r.State)
	}
	if r.Country != "" {
		parts = append(parts, r.Country)
	}
	return strings.Join(parts, ", ")
}
