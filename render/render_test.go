package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-console/format"
	"weather-console/locale"
	"weather-console/localtime"
	"weather-console/models"
)

func ptr(v float64) *float64 { return &v }

func hourlyPoints(n int) []models.ForecastPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	codes := []string{"clearsky_day", "lightrainshowersandthunder_day", "snowshowers_night", "", "hail"}

	points := make([]models.ForecastPoint, n)
	for i := range points {
		points[i] = models.ForecastPoint{
			Time:           start.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			AirTemperature: ptr(float64(i) - 2),
			WindSpeed:      ptr(1.5 + float64(i)/10),
			SymbolCode:     codes[i%len(codes)],
		}
	}
	return points
}

func newTestRenderer(loc locale.Locale) *Renderer {
	return New(loc, format.NoColor{}, localtime.New(time.UTC))
}

func TestRenderEmpty(t *testing.T) {
	r := newTestRenderer(locale.English)

	report, err := r.Render("Oslo", nil)
	assert.ErrorIs(t, err, ErrEmptyForecast)
	assert.Nil(t, report)

	_, err = r.Render("Oslo", []models.ForecastPoint{})
	assert.ErrorIs(t, err, ErrEmptyForecast)
}

func TestRenderRowCount(t *testing.T) {
	r := newTestRenderer(locale.English)

	for _, n := range []int{1, 2, 9, 10, 11, 12, 48} {
		t.Run(fmt.Sprintf("%d points", n), func(t *testing.T) {
			report, err := r.Render("Oslo", hourlyPoints(n))
			require.NoError(t, err)
			assert.Len(t, report.Rows, min(MaxRows, n))
		})
	}
}

func TestRenderHeader(t *testing.T) {
	r := newTestRenderer(locale.English)

	points := []models.ForecastPoint{{
		Time:           "2024-01-01T00:00:00Z",
		AirTemperature: ptr(5.5),
		WindSpeed:      ptr(3.2),
		SymbolCode:     "clearsky_day",
	}}

	report, err := r.Render("Oslo", points)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"",
		strings.Repeat("=", 56),
		"Weather for: Oslo    (Time: 2024-01-01 00:00)",
		strings.Repeat("-", 56),
		"Current:" + strings.Repeat(" ", 6) + "5.5°C  Wind:" + strings.Repeat(" ", 4) + "3.2 m/s  Clear sky",
		strings.Repeat("-", 56),
		"",
		"Weather forecast for the next 10 hours:",
		"Time" + strings.Repeat(" ", 15) + "   Temp     Wind   Description",
		strings.Repeat("-", 56),
	}, report.Header)

	assert.Equal(t, []string{strings.Repeat("=", 56), ""}, report.Footer)
}

func TestRenderRow(t *testing.T) {
	r := newTestRenderer(locale.English)

	points := []models.ForecastPoint{{
		Time:           "2024-01-01T00:00:00Z",
		AirTemperature: ptr(5.5),
		WindSpeed:      ptr(3.2),
		SymbolCode:     "clearsky_day",
	}}

	report, err := r.Render("Oslo", points)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2024-01-01 00:00     5.5°C   3.2 m/s   Clear sky", report.Rows[0])
}

func TestRenderMissingValues(t *testing.T) {
	r := newTestRenderer(locale.English)

	report, err := r.Render("Oslo", []models.ForecastPoint{{Time: "2024-01-01T00:00:00Z"}})
	require.NoError(t, err)

	assert.Equal(t, "Current:    No data  Wind:    No data  No data", report.Header[4])
	assert.Equal(t, "2024-01-01 00:00    No data   No data   No data", report.Rows[0])
}

func TestRenderKeepsOrderAndTranslates(t *testing.T) {
	r := newTestRenderer(locale.English)
	points := hourlyPoints(12)

	report, err := r.Render("Oslo", points)
	require.NoError(t, err)

	for i, row := range report.Rows {
		assert.True(t, strings.HasPrefix(row, fmt.Sprintf("2024-01-01 %02d:00", i)), row)
	}
	assert.True(t, strings.HasSuffix(report.Rows[0], "Clear sky"))
	assert.True(t, strings.HasSuffix(report.Rows[1], "Rain with thunder"))
	assert.True(t, strings.HasSuffix(report.Rows[2], "Snow"))
	assert.True(t, strings.HasSuffix(report.Rows[3], "No data"))
	assert.True(t, strings.HasSuffix(report.Rows[4], "hail"))
	assert.Contains(t, report.Rows[0], "-2.0°C")
}

func TestRenderInvalidTimestamp(t *testing.T) {
	r := newTestRenderer(locale.English)
	points := hourlyPoints(3)
	points[0].Time = "garbage"
	points[2].Time = "2024-99-01T00:00:00Z"

	report, err := r.Render("Oslo", points)
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	assert.Contains(t, report.Header[2], "(Time: No data)")
	assert.Equal(t, `Invalid time        "garbage"`, report.Rows[0])
	assert.True(t, strings.HasPrefix(report.Rows[1], "2024-01-01 01:00"))
	assert.True(t, strings.HasPrefix(report.Rows[2], "Invalid time"))
}

func TestRenderPolish(t *testing.T) {
	r := newTestRenderer(locale.Polish)

	report, err := r.Render("Kraków", []models.ForecastPoint{
		{Time: "2024-01-01T00:00:00Z", AirTemperature: ptr(-1), SymbolCode: "heavysnow"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Pogoda dla: Kraków    (Czas: 2024-01-01 00:00)", report.Header[2])
	assert.Contains(t, report.Header[4], "Wiatr:")
	assert.Contains(t, report.Header[4], "Brak danych")
	assert.Equal(t, "Prognoza pogody na najbliższe 10 godzin:", report.Header[7])
	assert.True(t, strings.HasSuffix(report.Rows[0], "Intensywne opady śniegu"))
}

func TestRenderColors(t *testing.T) {
	r := New(locale.English, format.ANSI{}, localtime.New(time.UTC))

	report, err := r.Render("Oslo", []models.ForecastPoint{
		{Time: "2024-01-01T00:00:00Z", AirTemperature: ptr(-3)},
		{Time: "2024-01-01T01:00:00Z", AirTemperature: ptr(4)},
		{Time: "2024-01-01T02:00:00Z", AirTemperature: ptr(0)},
		{Time: "2024-01-01T03:00:00Z"},
	})
	require.NoError(t, err)

	assert.Contains(t, report.Rows[0], "\033[34m-3.0°C\033[0m")
	assert.Contains(t, report.Rows[1], "\033[31m 4.0°C\033[0m")
	assert.Contains(t, report.Rows[2], "\033[33m 0.0°C\033[0m")
	assert.NotContains(t, report.Rows[3], "\033[")
}

func TestReportLines(t *testing.T) {
	r := newTestRenderer(locale.English)

	report, err := r.Render("Oslo", hourlyPoints(12))
	require.NoError(t, err)

	lines := report.Lines()
	assert.Len(t, lines, len(report.Header)+MaxRows+len(report.Footer))
	assert.Equal(t, report.Rows[0], lines[len(report.Header)])
	assert.True(t, strings.HasSuffix(report.String(), "\n"))
}
