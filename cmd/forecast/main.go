// Command forecast prints the report for each city given on the command line
// and exits. Lookups run one after another through the same rate limiters as
// the interactive console.
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
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configFile := flag.String("config", "weather_config.json", "Path to configuration file")
	lang := flag.String("lang", "", "Display language (en, pl)")
	noColor := flag.Bool("no-color", false, "Disable colored temperatures")
	verbose := flag.Bool("v", false, "Log the duration of each lookup")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] city [city...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cities := flag.Args()
	if len(cities) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ApplyEnv(os.Getenv)
	if *lang != "" {
		config.Language = *lang
	}

	loc := locale.Match(config.Language)

	var colors format.Colorizer = format.NoColor{}
	if config.UseColors && !*noColor {
		colors = format.ANSI{}
	}

	geocoder := datasource.NewRateLimitedGeocoder(
		nominatim.NewNominatimGeocoder(config.Nominatim.BaseURL, config.UserAgent, config.Timeout()),
		config.Nominatim.RequestsPerSecond, 1)
	forecasts := datasource.NewRateLimitedForecastSource(
		metno.NewMetNoForecastSource(config.MetNo.BaseURL, config.UserAgent, config.Timeout()),
		config.MetNo.RequestsPerSecond, config.MetNo.Burst)

	dc := collector.NewDataCollector(geocoder, forecasts)
	dc.SetFetchTimeout(config.Timeout())

	logger := log.New(os.Stderr, "", log.LstdFlags)
	renderer := render.New(loc, colors, localtime.New(time.Local))
	con := console.New(os.Stdin, os.Stdout, logger, loc.Strings(), dc, renderer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startTime := time.Now()
	failed := 0
	for _, city := range cities {
		if ctx.Err() != nil {
			break
		}

		before := time.Now()
		if err := con.Lookup(ctx, city); err != nil {
			failed++
		}
		if *verbose {
			logger.Printf("Lookup for %q completed in %v", city, time.Since(before).Round(time.Millisecond))
		}
	}

	if *verbose {
		logger.Printf("%d lookups (%d failed) in %.2f seconds", len(cities), failed, time.Since(startTime).Seconds())
	}
	if failed > 0 {
		os.Exit(1)
	}
}
