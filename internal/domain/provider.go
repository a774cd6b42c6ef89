package domain

// Wire shapes of the weather provider, decoded as-is. The normalization
// layer reshapes these into WeatherObservation / ForecastPoint; nothing
// above the usecase layer should touch them.

type ProviderCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ProviderMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type ProviderWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type ProviderClouds struct {
	All int `json:"all"`
}

// CurrentWeatherResponse is the /weather endpoint payload.
// TimezoneOffset is the UTC offset in seconds for the queried location;
// all epoch fields are converted with it, never with the host zone.
type CurrentWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main           ProviderMain        `json:"main"`
	Weather        []ProviderCondition `json:"weather"`
	Wind           ProviderWind        `json:"wind"`
	Clouds         ProviderClouds      `json:"clouds"`
	VisibilityM    int                 `json:"visibility"`
	TimezoneOffset int                 `json:"timezone"`
	Dt             int64               `json:"dt"`
}

// ForecastItem is one 3-hour slot of the /forecast payload. Pop is a
// 0-1 fraction; it is absent for some slots and defaults to zero.
type ForecastItem struct {
	Dt          int64               `json:"dt"`
	Main        ProviderMain        `json:"main"`
	Weather     []ProviderCondition `json:"weather"`
	Wind        ProviderWind        `json:"wind"`
	Clouds      ProviderClouds      `json:"clouds"`
	VisibilityM int                 `json:"visibility"`
	Pop         *float64            `json:"pop,omitempty"`
}

// ForecastResponse is the /forecast endpoint payload. The city-level
// timezone offset is shared by every item in the list.
type ForecastResponse struct {
	City struct {
		Name           string `json:"name"`
		Country        string `json:"country"`
		TimezoneOffset int    `json:"timezone"`
	} `json:"city"`
	List []ForecastItem `json:"list"`
}
