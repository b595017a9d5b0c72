package metno

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"weather-console/datasource"
	"weather-console/models"
)

// MetNoForecastSource provides forecasts from the met.no Locationforecast API
type MetNoForecastSource struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// Ensure MetNoForecastSource implements ForecastSource
var _ datasource.ForecastSource = (*MetNoForecastSource)(nil)

// NewMetNoForecastSource creates a new forecast source. baseURL points at
// the locationforecast/2.0 root.
func NewMetNoForecastSource(baseURL, userAgent string, timeout time.Duration) *MetNoForecastSource {
	return &MetNoForecastSource{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (m *MetNoForecastSource) Name() string {
	return "met.no"
}

// compactResponse is the subset of the compact GeoJSON document we read.
// Optional values are pointers so a missing field stays distinguishable from zero.
type compactResponse struct {
	Properties struct {
		Timeseries []struct {
			Time string `json:"time"`
			Data struct {
				Instant struct {
					Details struct {
						AirTemperature *float64 `json:"air_temperature"`
						WindSpeed      *float64 `json:"wind_speed"`
					} `json:"details"`
				} `json:"instant"`
				Next1Hours *struct {
					Summary struct {
						SymbolCode string `json:"symbol_code"`
					} `json:"summary"`
				} `json:"next_1_hours"`
			} `json:"data"`
		} `json:"timeseries"`
	} `json:"properties"`
}

// FetchForecast gets the compact forecast for coords
func (m *MetNoForecastSource) FetchForecast(ctx context.Context, coords models.Coordinates) (models.Forecast, error) {
	// met.no asks clients to send at most four decimals
	apiURL := fmt.Sprintf("%s/compact?lat=%.4f&lon=%.4f", m.baseURL, coords.Latitude, coords.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", m.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Forecast{}, &datasource.StatusError{
			Provider:   m.Name(),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var apiResp compactResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return models.Forecast{}, fmt.Errorf("failed to parse response: %w", err)
	}

	series := apiResp.Properties.Timeseries
	if len(series) == 0 {
		return models.Forecast{}, datasource.ErrNoData
	}

	forecast := models.Forecast{
		Provider: m.Name(),
		Points:   make([]models.ForecastPoint, 0, len(series)),
	}
	for _, ts := range series {
		point := models.ForecastPoint{
			Time:           ts.Time,
			AirTemperature: ts.Data.Instant.Details.AirTemperature,
			WindSpeed:      ts.Data.Instant.Details.WindSpeed,
		}
		if ts.Data.Next1Hours != nil {
			point.SymbolCode = ts.Data.Next1Hours.Summary.SymbolCode
		}
		forecast.Points = append(forecast.Points, point)
	}

	return forecast, nil
}
