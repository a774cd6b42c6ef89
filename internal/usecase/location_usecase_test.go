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

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeocodeResult), args.Error(1)
}

func TestLocationUseCase_ResolveCoordinates(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("korean query is translated through the gazetteer", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, "Gangnam-gu, Seoul", 5).Return([]domain.GeocodeResult{
			{Name: "Gangnam-gu", Lat: 37.5172, Lon: 127.0473, Country: "KR"},
		}, nil)

		loc, err := uc.ResolveCoordinates(ctx, "강남구")
		require.NoError(t, err)
		assert.InDelta(t, 37.5172, loc.Lat, 1e-9)
		assert.InDelta(t, 127.0473, loc.Lon, 1e-9)
		assert.Equal(t, "KR", loc.CountryCode)
		geocoder.AssertExpectations(t)
	})

	t.Run("latin query bypasses the gazetteer verbatim", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, "Seoul", 5).Return([]domain.GeocodeResult{
			{Name: "Seoul", Lat: 37.5665, Lon: 126.978, Country: "KR"},
		}, nil)

		_, err := uc.ResolveCoordinates(ctx, "Seoul")
		require.NoError(t, err)
		geocoder.AssertExpectations(t)
	})

	t.Run("prefers the first korean candidate over earlier foreign ones", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, mock.Anything, 5).Return([]domain.GeocodeResult{
			{Name: "Suncheon", Lat: 35.0, Lon: 110.0, Country: "CN"},
			{Name: "Suncheon", Lat: 34.9506, Lon: 127.4872, Country: "KR"},
			{Name: "Suncheon", Lat: 39.4, Lon: 125.9, Country: "KP"},
		}, nil)

		loc, err := uc.ResolveCoordinates(ctx, "Suncheon")
		require.NoError(t, err)
		assert.Equal(t, "KR", loc.CountryCode)
		assert.InDelta(t, 34.9506, loc.Lat, 1e-9)
	})

	t.Run("falls back to the first candidate when no korean one exists", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, mock.Anything, 5).Return([]domain.GeocodeResult{
			{Name: "London", Lat: 51.5074, Lon: -0.1278, Country: "GB"},
			{Name: "London", Lat: 42.9834, Lon: -81.233, Country: "CA"},
		}, nil)

		loc, err := uc.ResolveCoordinates(ctx, "London")
		require.NoError(t, err)
		assert.Equal(t, "GB", loc.CountryCode)
	})

	t.Run("zero candidates is a not-found, never a panic", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, mock.Anything, 5).Return([]domain.GeocodeResult{}, nil)

		loc, err := uc.ResolveCoordinates(ctx, "doesnotexist123")
		assert.Nil(t, loc)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("geocoder failure is reported like not-found", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, mock.Anything, 5).
			Return(nil, apperrors.ErrUpstreamTransport)

		loc, err := uc.ResolveCoordinates(ctx, "Seoul")
		assert.Nil(t, loc)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("blank input is invalid", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		_, err := uc.ResolveCoordinates(ctx, "   ")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
	})
}

func TestLocationUseCase_SearchLocations(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("local entries come before remote hits", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, "홍대", 10).Return([]domain.GeocodeResult{
			{Name: "Hongdae", Lat: 37.556, Lon: 126.923, Country: "KR", State: "Seoul"},
		}, nil)

		results := uc.SearchLocations(ctx, "홍대", 10)
		require.Len(t, results, 2)
		assert.Equal(t, domain.SourceLocalGazetteer, results[0].Source)
		assert.Equal(t, "Hongdae, Mapo-gu, Seoul", results[0].SearchQuery)
		assert.Nil(t, results[0].Coordinates)
		assert.Equal(t, domain.SourceRemoteGeocoder, results[1].Source)
		require.NotNil(t, results[1].Coordinates)
		assert.Equal(t, "KR", results[1].CountryCode)
	})

	t.Run("geocoder failure degrades to local-only results", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, "강남", 10).
			Return(nil, apperrors.ErrUpstreamTransport)

		results := uc.SearchLocations(ctx, "강남", 10)
		require.NotEmpty(t, results)
		for _, c := range results {
			assert.Equal(t, domain.SourceLocalGazetteer, c.Source)
		}
	})

	t.Run("deduplicates by case-insensitive display name", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, "Busan", 10).Return([]domain.GeocodeResult{
			{Name: "Busan", Country: "KR", Lat: 35.1796, Lon: 129.0756},
			{Name: "BUSAN", Country: "KR", Lat: 35.1796, Lon: 129.0756},
		}, nil)

		results := uc.SearchLocations(ctx, "Busan", 10)
		names := make(map[string]int)
		for _, c := range results {
			names[c.DisplayName]++
		}
		for name, count := range names {
			assert.Equal(t, 1, count, "duplicate display name %q", name)
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		geocoder.On("Search", ctx, "구", 3).Return([]domain.GeocodeResult{}, nil)

		results := uc.SearchLocations(ctx, "구", 3)
		assert.Len(t, results, 3)
	})

	t.Run("blank query yields nothing without a geocoder call", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewLocationUseCase(gazetteer.New(), geocoder, 5, logger)

		assert.Empty(t, uc.SearchLocations(ctx, "", 10))
		geocoder.AssertNotCalled(t, "Search")
	})
}
