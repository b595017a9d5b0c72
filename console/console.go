// Package console runs the interactive lookup loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"weather-console/datasource"
	"weather-console/locale"
	"weather-console/models"
	"weather-console/render"
)

// ExitCommand ends the loop, compared case-insensitively
const ExitCommand = "exit"

// Collector looks up the forecast for a city
type Collector interface {
	Collect(ctx context.Context, city string) (models.Forecast, error)
}

// Console reads city names and prints reports until exit
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	logger    *log.Logger
	text      locale.Strings
	collector Collector
	renderer  *render.Renderer
}

// New creates a console. A nil logger discards log output.
func New(in io.Reader, out io.Writer, logger *log.Logger, text locale.Strings, collector Collector, renderer *render.Renderer) *Console {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		logger:    logger,
		text:      text,
		collector: collector,
		renderer:  renderer,
	}
}

// Run loops until the user types exit, input ends or ctx is canceled.
// Lookup failures are reported to the user and never end the loop.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(c.out, c.text.Goodbye)
			return nil
		}

		fmt.Fprintln(c.out, c.text.MenuTitle)
		fmt.Fprintln(c.out, c.text.Instructions)
		fmt.Fprint(c.out, c.text.Prompt)

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			// EOF
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, c.text.Goodbye)
			return nil
		}

		city := strings.TrimSpace(c.in.Text())
		if strings.EqualFold(city, ExitCommand) {
			fmt.Fprintln(c.out, c.text.Goodbye)
			return nil
		}

		_ = c.Lookup(ctx, city)
	}
}

// Lookup prints the report for city, or a localized message on failure.
// The error is returned after it has been reported.
func (c *Console) Lookup(ctx context.Context, city string) error {
	forecast, err := c.collector.Collect(ctx, city)
	if err != nil {
		c.report(city, err)
		return err
	}

	report, err := c.renderer.Render(city, forecast.Points)
	if err != nil {
		c.report(city, err)
		return err
	}

	for _, line := range report.Lines() {
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *Console) report(city string, err error) {
	switch {
	case errors.Is(err, datasource.ErrNotFound):
		fmt.Fprintln(c.out, c.text.CityNotFound)
	case errors.Is(err, datasource.ErrNoData), errors.Is(err, render.ErrEmptyForecast):
		fmt.Fprintln(c.out, c.text.NoWeather)
	default:
		c.logger.Printf("Error looking up %q: %v", city, err)
		fmt.Fprintln(c.out, c.text.FetchFailed)
	}
}
