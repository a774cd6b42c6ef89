package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/korea-weather-service/internal/pkg/utils"
	"github.com/korea-weather-service/internal/pkg/validator"
	"github.com/korea-weather-service/internal/usecase"
	"github.com/korea-weather-service/internal/usecase/dto"
)

// LocationHandler serves place-name resolution and suggestions.
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Resolve godoc
// @Summary Resolve a place name to coordinates
// @Description Translates a Korean place name through the built-in gazetteer and geocodes it to a single coordinate pair. Korean candidates are preferred when the geocoder returns several countries.
// @Tags Locations
// @Accept json
// @Produce json
// @Param q query string true "Place name, Korean or romanized"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolveLocationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/resolve [get]
func (h *LocationHandler) Resolve(c *fiber.Ctx) error {
	req := dto.ResolveLocationRequest{Query: c.Query("q")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	loc, err := h.locationUC.ResolveCoordinates(c.Context(), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ResolveLocationResponse{Location: *loc}, nil)
}

// Search godoc
// @Summary Location suggestions
// @Description Returns ranked suggestions for a partial place name: gazetteer matches first, then live geocoder hits. Geocoder outages degrade to local-only results instead of failing.
// @Tags Locations
// @Accept json
// @Produce json
// @Param q query string true "Partial place name"
// @Param limit query int false "Maximum number of suggestions" default(10)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchLocationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/search [get]
func (h *LocationHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchLocationsRequest{
		Query: c.Query("q"),
		Limit: c.QueryInt("limit", 10),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	results := h.locationUC.SearchLocations(c.Context(), req.Query, req.Limit)

	return utils.SendSuccess(c, dto.SearchLocationsResponse{
		Results: results,
		Total:   len(results),
	}, &utils.Meta{
		Total: len(results),
		Limit: req.Limit,
	})
}

// Popular godoc
// @Summary Popular Korean locations
// @Description Returns the fixed quick-pick list of well known Korean place names.
// @Tags Locations
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PopularLocationsResponse}
// @Router /api/v1/locations/popular [get]
func (h *LocationHandler) Popular(c *fiber.Ctx) error {
	locations := h.locationUC.PopularLocations()

	return utils.SendSuccess(c, dto.PopularLocationsResponse{
		Locations: locations,
	}, &utils.Meta{Total: len(locations)})
}
