// Package docs Korea Weather Service API.
//
// Weather service for Korean locations. Accepts place names in Korean
// or romanized form, resolves them to coordinates through a built-in
// gazetteer and the OpenWeather geocoding API, and returns normalized
// current conditions and 3-hourly forecasts in the location's own
// timezone.
//
// Main features:
// - Korean place-name resolution with Korea-first candidate selection
// - Current weather and five day forecast by place name or coordinates
// - Location suggestions merging the gazetteer with live geocoder hits
// - Fixed quick-pick list of popular Korean locations
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
