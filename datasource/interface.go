package datasource

import (
	"context"
	"errors"
	"fmt"

	"weather-console/models"
)

var (
	// ErrNotFound is returned when a geocoder has no match for a query
	ErrNotFound = errors.New("location not found")

	// ErrNoData is returned when a forecast source returns an empty timeseries
	ErrNoData = errors.New("no forecast data")
)

// Geocoder resolves a free-text place name to coordinates
type Geocoder interface {
	// Geocode returns the best match for query or ErrNotFound
	Geocode(ctx context.Context, query string) (models.Place, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource fetches a short-term forecast for a point
type ForecastSource interface {
	// FetchForecast returns the timeseries for coords in chronological order
	FetchForecast(ctx context.Context, coords models.Coordinates) (models.Forecast, error)

	// Name returns the source's name
	Name() string
}

// StatusError is returned when a provider answers with a non-200 status
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s API error (status %d)", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}
