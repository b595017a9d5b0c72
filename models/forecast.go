package models

// ForecastPoint is a single entry of a provider timeseries
type ForecastPoint struct {
	Time           string   // ISO-8601 timestamp as reported by the provider
	AirTemperature *float64 // in Celsius, nil when missing
	WindSpeed      *float64 // in m/s, nil when missing
	SymbolCode     string   // next-hour summary symbol, empty when missing
}

// Forecast is an ordered timeseries for one place
type Forecast struct {
	Provider string          // forecast provider name
	Place    Place           // place the forecast was requested for
	Points   []ForecastPoint // chronological, as received
}
