// Package render builds the console report for a forecast.
package render

import (
	"errors"
	"fmt"
	"strings"

	"weather-console/format"
	"weather-console/locale"
	"weather-console/localtime"
	"weather-console/models"
	"weather-console/symbol"
)

// MaxRows is the number of forecast rows shown in the table
const MaxRows = 10

const (
	lineWidth        = 56
	tempUnit         = "°C"
	windUnit         = " m/s"
	headerValueWidth = 10
	rowValueWidth    = 6
	timeColumnWidth  = 19
)

// ErrEmptyForecast is returned when there are no points to render
var ErrEmptyForecast = errors.New("no forecast points to render")

// Report is a rendered forecast split into its parts
type Report struct {
	Header []string
	Rows   []string
	Footer []string
}

// Lines returns the full report in display order
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Header)+len(r.Rows)+len(r.Footer))
	lines = append(lines, r.Header...)
	lines = append(lines, r.Rows...)
	lines = append(lines, r.Footer...)
	return lines
}

// String joins the report lines with newlines
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

// Renderer turns forecast points into display lines
type Renderer struct {
	text    locale.Strings
	symbols *symbol.Translator
	values  *format.Formatter
	clock   *localtime.Localizer
}

// New creates a renderer for a locale. A nil colorizer disables color and a
// nil localizer uses the machine's time zone.
func New(loc locale.Locale, colors format.Colorizer, clock *localtime.Localizer) *Renderer {
	if clock == nil {
		clock = localtime.New(nil)
	}
	text := loc.Strings()
	return &Renderer{
		text:    text,
		symbols: loc.Translator(),
		values:  format.New(text.NoData, colors),
		clock:   clock,
	}
}

// Render builds the report for city. Points must be in chronological order;
// only the first MaxRows are shown.
func (r *Renderer) Render(city string, points []models.ForecastPoint) (*Report, error) {
	if len(points) == 0 {
		return nil, ErrEmptyForecast
	}

	first := points[0]
	firstTime, err := r.clock.Display(first.Time)
	if err != nil {
		firstTime = r.text.NoData
	}

	report := &Report{
		Header: []string{
			"",
			strings.Repeat("=", lineWidth),
			fmt.Sprintf("%s: %s    (%s: %s)", r.text.WeatherFor, city, r.text.Time, firstTime),
			strings.Repeat("-", lineWidth),
			fmt.Sprintf("%s: %s  %s: %*s  %s",
				r.text.Current,
				r.values.Colored(first.AirTemperature, tempUnit, headerValueWidth),
				r.text.Wind,
				headerValueWidth, r.values.Value(first.WindSpeed, windUnit),
				r.describe(first.SymbolCode),
			),
			strings.Repeat("-", lineWidth),
			"",
			r.text.ForecastTitle,
			fmt.Sprintf("%-*s %*s   %*s   %s",
				timeColumnWidth, r.text.ColumnTime,
				rowValueWidth, r.text.ColumnTemp,
				rowValueWidth, r.text.ColumnWind,
				r.text.ColumnDescription,
			),
			strings.Repeat("-", lineWidth),
		},
		Footer: []string{
			strings.Repeat("=", lineWidth),
			"",
		},
	}

	n := min(MaxRows, len(points))
	report.Rows = make([]string, 0, n)
	for _, p := range points[:n] {
		report.Rows = append(report.Rows, r.row(p))
	}

	return report, nil
}

func (r *Renderer) row(p models.ForecastPoint) string {
	when, err := r.clock.Display(p.Time)
	if err != nil {
		return fmt.Sprintf("%-*s %q", timeColumnWidth, r.text.InvalidTime, p.Time)
	}

	return fmt.Sprintf("%-*s %s   %*s   %s",
		timeColumnWidth, when,
		r.values.Colored(p.AirTemperature, tempUnit, rowValueWidth),
		rowValueWidth, r.values.Value(p.WindSpeed, windUnit),
		r.describe(p.SymbolCode),
	)
}

// describe translates a next-hour symbol code; a missing code short-circuits
// to the placeholder.
func (r *Renderer) describe(code string) string {
	if code == "" {
		return r.text.NoData
	}
	return r.symbols.Translate(code)
}
