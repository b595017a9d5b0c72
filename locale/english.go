package locale

import "weather-console/symbol"

var english = Strings{
	NoData:      "No data",
	InvalidTime: "Invalid time",

	WeatherFor:    "Weather for",
	Time:          "Time",
	Current:       "Current",
	Wind:          "Wind",
	ForecastTitle: "Weather forecast for the next 10 hours:",

	ColumnTime:        "Time",
	ColumnTemp:        "Temp",
	ColumnWind:        "Wind",
	ColumnDescription: "Description",

	MenuTitle:    "=== Check the Weather ===",
	Instructions: "Enter city name manually or 'exit' to quit.",
	Prompt:       "Enter city: ",
	Goodbye:      "Goodbye!",

	CityNotFound: "City not found. Please try again.",
	FetchFailed:  "Failed to fetch weather data.",
	NoWeather:    "No weather data available.",

	Symbols: map[string]string{
		"clearsky":              "Clear sky",
		"clearsky_day":          "Clear sky",
		"clearsky_night":        "Clear sky",
		"partlycloudy_day":      "Partly cloudy",
		"partlycloudy_night":    "Partly cloudy",
		"cloudy":                "Cloudy",
		"fair_day":              "Fair weather",
		"fair_night":            "Fair weather",
		"rain":                  "Rain",
		"lightrain":             "Light rain",
		"heavyrain":             "Heavy rain",
		"rainshowers":           "Rain showers",
		"rainshowersandthunder": "Rain showers and thunder",
		"heavyrainandthunder":   "Heavy rain with thunder",
		"sleet":                 "Sleet",
		"lightsleet":            "Light sleet",
		"snow":                  "Snow",
		"lightsnow":             "Light snow",
		"heavysnow":             "Heavy snow",
		"fog":                   "Fog",
		"unknown":               "No data",
	},

	Conditions: map[symbol.Condition]string{
		symbol.ClearSky:        "Clear sky",
		symbol.Sleet:           "Sleet",
		symbol.Snow:            "Snow",
		symbol.RainWithThunder: "Rain with thunder",
		symbol.Rain:            "Rain",
		symbol.Cloudy:          "Cloudy",
		symbol.Fog:             "Fog",
	},
}
