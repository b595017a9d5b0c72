package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-console/datasource"
	"weather-console/models"
)

// DataCollector runs one lookup: geocode a place name, then fetch its forecast
type DataCollector struct {
	geocoder     datasource.Geocoder
	forecasts    datasource.ForecastSource
	fetchTimeout time.Duration
}

// NewDataCollector creates a new data collector with the provided sources
func NewDataCollector(geocoder datasource.Geocoder, forecasts datasource.ForecastSource) *DataCollector {
	return &DataCollector{
		geocoder:     geocoder,
		forecasts:    forecasts,
		fetchTimeout: datasource.DefaultTimeout,
	}
}

// SetFetchTimeout changes the timeout for one lookup. Non-positive values
// are ignored.
func (dc *DataCollector) SetFetchTimeout(timeout time.Duration) {
	if timeout > 0 {
		dc.fetchTimeout = timeout
	}
}

// Collect resolves city and returns its forecast. Both calls share one
// deadline. Errors wrap datasource.ErrNotFound and datasource.ErrNoData
// where those apply.
func (dc *DataCollector) Collect(ctx context.Context, city string) (models.Forecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.Forecast{}, datasource.ErrNotFound
	}

	// Create a context with timeout for this lookup
	fetchCtx, cancel := context.WithTimeout(ctx, dc.fetchTimeout)
	defer cancel()

	place, err := dc.geocoder.Geocode(fetchCtx, city)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("error geocoding %q with %s: %w", city, dc.geocoder.Name(), err)
	}

	forecast, err := dc.forecasts.FetchForecast(fetchCtx, place.Coordinates)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("error fetching from %s for %s: %w", dc.forecasts.Name(), city, err)
	}
	if len(forecast.Points) == 0 {
		return models.Forecast{}, fmt.Errorf("%s returned no points for %s: %w", dc.forecasts.Name(), city, datasource.ErrNoData)
	}

	forecast.Place = place
	return forecast, nil
}
