package errors

import "net/http"

var (
	// ErrLocationNotFound covers both an empty geocoder result and a raw
	// query nothing matches. It is a normal outcome, not a fault.
	ErrLocationNotFound = New(
		KindNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrWeatherUnavailable = New(
		KindInternal,
		"WEATHER_UNAVAILABLE",
		"Could not retrieve weather for this location",
		http.StatusBadGateway,
	)

	ErrUpstreamTransport = New(
		KindTransport,
		"UPSTREAM_TRANSPORT",
		"Upstream request failed",
		http.StatusBadGateway,
	)

	ErrUpstreamProvider = New(
		KindProvider,
		"UPSTREAM_PROVIDER",
		"Upstream provider rejected the request",
		http.StatusBadGateway,
	)

	ErrUpstreamParse = New(
		KindParse,
		"UPSTREAM_PARSE",
		"Unexpected upstream payload",
		http.StatusBadGateway,
	)

	ErrInvalidCoordinates = New(
		KindInvalid,
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		KindInvalid,
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		KindInternal,
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
