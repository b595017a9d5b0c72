package locale

import "weather-console/symbol"

var polish = Strings{
	NoData:      "Brak danych",
	InvalidTime: "Błędny czas",

	WeatherFor:    "Pogoda dla",
	Time:          "Czas",
	Current:       "Obecnie",
	Wind:          "Wiatr",
	ForecastTitle: "Prognoza pogody na najbliższe 10 godzin:",

	ColumnTime:        "Czas",
	ColumnTemp:        "Temp",
	ColumnWind:        "Wiatr",
	ColumnDescription: "Opis",

	MenuTitle:    "=== Sprawdź pogodę ===",
	Instructions: "Wpisz nazwę miasta lub 'exit', aby zakończyć.",
	Prompt:       "Podaj miasto: ",
	Goodbye:      "Do widzenia!",

	CityNotFound: "Nie znaleziono miasta. Spróbuj ponownie.",
	FetchFailed:  "Nie udało się pobrać danych pogodowych.",
	NoWeather:    "Brak dostępnych danych pogodowych.",

	Symbols: map[string]string{
		"clearsky":              "Bezchmurnie",
		"clearsky_day":          "Bezchmurnie",
		"clearsky_night":        "Bezchmurnie",
		"partlycloudy_day":      "Częściowe zachmurzenie",
		"partlycloudy_night":    "Częściowe zachmurzenie",
		"cloudy":                "Pochmurno",
		"fair_day":              "Ładna pogoda",
		"fair_night":            "Ładna pogoda",
		"rain":                  "Deszcz",
		"lightrain":             "Lekki deszcz",
		"heavyrain":             "Ulewny deszcz",
		"rainshowers":           "Przelotne opady deszczu",
		"rainshowersandthunder": "Przelotne opady deszczu z burzą",
		"heavyrainandthunder":   "Ulewny deszcz z burzą",
		"sleet":                 "Deszcz ze śniegiem",
		"lightsleet":            "Lekki deszcz ze śniegiem",
		"snow":                  "Śnieg",
		"lightsnow":             "Lekki śnieg",
		"heavysnow":             "Intensywne opady śniegu",
		"fog":                   "Mgła",
		"unknown":               "Brak danych",
	},

	Conditions: map[symbol.Condition]string{
		symbol.ClearSky:        "Bezchmurnie",
		symbol.Sleet:           "Deszcz ze śniegiem",
		symbol.Snow:            "Śnieg",
		symbol.RainWithThunder: "Deszcz z burzą",
		symbol.Rain:            "Deszcz",
		symbol.Cloudy:          "Pochmurno",
		symbol.Fog:             "Mgła",
	},
}
