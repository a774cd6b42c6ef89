package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/korea-weather-service/internal/domain"
)

// Pure reshaping of provider payloads into the stable internal schema.
// Every timestamp is converted with the offset carried by the response
// itself; the host machine's zone never participates.

// LocalTime converts a provider epoch into civil time at the given UTC
// offset: localTime = utcEpoch + offsetSeconds.
func LocalTime(epoch int64, offsetSeconds int) time.Time {
	return time.Unix(epoch, 0).In(time.FixedZone(offsetName(offsetSeconds), offsetSeconds))
}

func offsetName(offsetSeconds int) string {
	sign := "+"
	sec := offsetSeconds
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, sec/3600, (sec%3600)/60)
}

// RoundC rounds a provider temperature to the displayed integer Celsius,
// half away from zero (23.5 -> 24, 23.4 -> 23). Rounding happens exactly
// once, at this boundary, so identical upstream floats can never jitter
// the displayed value.
func RoundC(v float64) int {
	return int(math.Round(v))
}

// NormalizeCurrent reshapes a current-weather payload.
func NormalizeCurrent(p *domain.CurrentWeatherResponse) domain.WeatherObservation {
	obs := domain.WeatherObservation{
		City:             p.Name,
		CountryCode:      p.Sys.Country,
		CapturedAtLocal:  LocalTime(p.Dt, p.TimezoneOffset),
		UTCOffsetSeconds: p.TimezoneOffset,
		TemperatureC:     RoundC(p.Main.Temp),
		FeelsLikeC:       RoundC(p.Main.FeelsLike),
		HumidityPct:      p.Main.Humidity,
		PressureHpa:      p.Main.Pressure,
		VisibilityKm:     float64(p.VisibilityM) / 1000,
		WindSpeedMs:      p.Wind.Speed,
		WindDirectionDeg: p.Wind.Deg,
		CloudsPct:        p.Clouds.All,
	}

	if len(p.Weather) > 0 {
		obs.ConditionMain = p.Weather[0].Main
		obs.ConditionDesc = p.Weather[0].Description
		obs.ConditionIcon = p.Weather[0].Icon
	}

	if p.Sys.Sunrise > 0 {
		sunrise := LocalTime(p.Sys.Sunrise, p.TimezoneOffset)
		obs.SunriseLocal = &sunrise
	}
	if p.Sys.Sunset > 0 {
		sunset := LocalTime(p.Sys.Sunset, p.TimezoneOffset)
		obs.SunsetLocal = &sunset
	}

	return obs
}

// NormalizeForecast reshapes a forecast payload into chronologically
// ordered points. The city-level offset applies to every slot.
func NormalizeForecast(p *domain.ForecastResponse) []domain.ForecastPoint {
	offset := p.City.TimezoneOffset

	points := make([]domain.ForecastPoint, 0, len(p.List))
	for _, item := range p.List {
		point := domain.ForecastPoint{
			WeatherObservation: domain.WeatherObservation{
				City:             p.City.Name,
				CountryCode:      p.City.Country,
				CapturedAtLocal:  LocalTime(item.Dt, offset),
				UTCOffsetSeconds: offset,
				TemperatureC:     RoundC(item.Main.Temp),
				FeelsLikeC:       RoundC(item.Main.FeelsLike),
				HumidityPct:      item.Main.Humidity,
				PressureHpa:      item.Main.Pressure,
				VisibilityKm:     float64(item.VisibilityM) / 1000,
				WindSpeedMs:      item.Wind.Speed,
				WindDirectionDeg: item.Wind.Deg,
				CloudsPct:        item.Clouds.All,
			},
			TempMinC: RoundC(item.Main.TempMin),
			TempMaxC: RoundC(item.Main.TempMax),
		}

		if len(item.Weather) > 0 {
			point.ConditionMain = item.Weather[0].Main
			point.ConditionDesc = item.Weather[0].Description
			point.ConditionIcon = item.Weather[0].Icon
		}

		// Provider fraction becomes a 0-100 percentage; a missing value
		// is stored as 0, never absent.
		if item.Pop != nil {
			point.PrecipProbabilityPct = *item.Pop * 100
		}

		points = append(points, point)
	}

	// Points must always be in non-decreasing local-time order.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].CapturedAtLocal.Before(points[j].CapturedAtLocal)
	})

	return points
}
