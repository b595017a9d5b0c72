package datasource

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
)

// Defaults used when neither the config file nor the environment set a value
const (
	DefaultUserAgent    = "weather-console/1.0"
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultMetNoURL     = "https://api.met.no/weatherapi/locationforecast/2.0"
	DefaultTimeout      = 10 * time.Second
)

// Config represents the application configuration
type Config struct {
	// Language is a BCP 47 tag or POSIX locale name, e.g. "pl" or "pl_PL.UTF-8"
	Language  string `json:"language"`
	UserAgent string `json:"userAgent"`
	UseColors bool   `json:"useColors"`

	// TimeoutSeconds bounds one lookup (geocoding plus forecast)
	TimeoutSeconds int `json:"timeoutSeconds"`

	// Provider configurations
	Nominatim struct {
		BaseURL           string  `json:"baseURL"`
		RequestsPerSecond float64 `json:"requestsPerSecond"`
	} `json:"nominatim"`

	MetNo struct {
		BaseURL           string  `json:"baseURL"`
		RequestsPerSecond float64 `json:"requestsPerSecond"`
		Burst             int     `json:"burst"`
	} `json:"metNo"`
}

// LoadConfig loads configuration from a JSON file on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	config.fillDefaults()
	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{
		UseColors: true,
	}
	config.fillDefaults()
	return config
}

// ApplyEnv overrides config values from environment variables
func (c *Config) ApplyEnv(getenv func(string) string) {
	if lang := getenv("WEATHER_LANG"); lang != "" {
		c.Language = lang
	} else if c.Language == "" {
		c.Language = firstNonEmpty(getenv("LC_ALL"), getenv("LC_MESSAGES"), getenv("LANG"))
	}

	if ua := getenv("WEATHER_USER_AGENT"); ua != "" {
		c.UserAgent = ua
	}

	// https://no-color.org: any non-empty value disables color
	if getenv("NO_COLOR") != "" {
		c.UseColors = false
	}

	if raw := getenv("WEATHER_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			c.TimeoutSeconds = int(d.Round(time.Second) / time.Second)
		}
	}

	c.fillDefaults()
}

// Timeout returns the per-lookup timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) fillDefaults() {
	c.UserAgent = strings.TrimSpace(c.UserAgent)
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = int(DefaultTimeout / time.Second)
	}

	if c.Nominatim.BaseURL == "" {
		c.Nominatim.BaseURL = DefaultNominatimURL
	}
	// Nominatim usage policy allows at most one request per second
	if c.Nominatim.RequestsPerSecond <= 0 || c.Nominatim.RequestsPerSecond > 1 {
		c.Nominatim.RequestsPerSecond = 1
	}

	if c.MetNo.BaseURL == "" {
		c.MetNo.BaseURL = DefaultMetNoURL
	}
	if c.MetNo.RequestsPerSecond <= 0 {
		c.MetNo.RequestsPerSecond = 20
	}
	if c.MetNo.Burst <= 0 {
		c.MetNo.Burst = 5
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
