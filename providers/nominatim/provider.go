package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-console/datasource"
	"weather-console/models"
)

// NominatimGeocoder resolves place names with the OpenStreetMap Nominatim API
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Ensure NominatimGeocoder implements datasource.Geocoder
var _ datasource.Geocoder = (*NominatimGeocoder)(nil)

// NewNominatimGeocoder creates a new Nominatim geocoder. Nominatim rejects
// requests without an identifying User-Agent.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (g *NominatimGeocoder) Name() string {
	return "Nominatim"
}

// searchResult is one entry of the /search response; coordinates are strings
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the best match for query
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Place{}, datasource.ErrNotFound
	}

	// Build URL
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("limit", "1")

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return models.Place{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	// Execute request
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.Place{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Place{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Place{}, &datasource.StatusError{
			Provider:   g.Name(),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return models.Place{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(results) == 0 {
		return models.Place{}, fmt.Errorf("%q: %w", query, datasource.ErrNotFound)
	}

	best := results[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("invalid latitude %q: %w", best.Lat, err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("invalid longitude %q: %w", best.Lon, err)
	}

	return models.Place{
		Query:       query,
		DisplayName: best.DisplayName,
		Coordinates: models.Coordinates{Latitude: lat, Longitude: lon},
	}, nil
}
