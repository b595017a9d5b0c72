package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-console/collector"
	"weather-console/console"
	"weather-console/datasource"
	"weather-console/format"
	"weather-console/locale"
	"weather-console/localtime"
	"weather-console/providers/metno"
	"weather-console/providers/nominatim"
	"weather-console/render"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	configFile := flag.String("config", "weather_config.json", "Path to configuration file")
	lang := flag.String("lang", "", "Display language (en, pl); defaults to WEATHER_LANG or LANG")
	noColor := flag.Bool("no-color", false, "Disable colored temperatures")
	timeout := flag.Duration("timeout", 0, "Timeout for one lookup (default 10s)")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ApplyEnv(os.Getenv)

	if *lang != "" {
		config.Language = *lang
	}
	if *noColor {
		config.UseColors = false
	}
	if *timeout > 0 {
		config.TimeoutSeconds = int((*timeout + time.Second - 1) / time.Second)
	}

	loc := locale.Match(config.Language)
	text := loc.Strings()

	var colors format.Colorizer = format.NoColor{}
	if config.UseColors {
		colors = format.ANSI{}
	}

	// Create the providers based on configuration
	var geocoder datasource.Geocoder = nominatim.NewNominatimGeocoder(config.Nominatim.BaseURL, config.UserAgent, config.Timeout())
	var forecasts datasource.ForecastSource = metno.NewMetNoForecastSource(config.MetNo.BaseURL, config.UserAgent, config.Timeout())

	// Apply rate limiting if enabled
	if *enableRateLimiting {
		geocoder = datasource.NewRateLimitedGeocoder(geocoder, config.Nominatim.RequestsPerSecond, 1)
		forecasts = datasource.NewRateLimitedForecastSource(forecasts, config.MetNo.RequestsPerSecond, config.MetNo.Burst)
	}

	dc := collector.NewDataCollector(geocoder, forecasts)
	dc.SetFetchTimeout(config.Timeout())

	renderer := render.New(loc, colors, localtime.New(time.Local))
	logger := log.New(os.Stderr, "", log.LstdFlags)
	con := console.New(os.Stdin, os.Stdout, logger, text, dc, renderer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- con.Run(ctx)
	}()

	// Wait for the loop to end or for a shutdown signal
	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("Console stopped: %v", err)
		}
	case <-ctx.Done():
		fmt.Println()
		fmt.Println(text.Goodbye)
	}
}
