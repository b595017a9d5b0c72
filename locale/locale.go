// Package locale holds the user-facing strings for each supported language.
package locale

import (
	"strings"

	"golang.org/x/text/language"

	"weather-console/symbol"
)

// Locale identifies a supported output language
type Locale int

// Supported locales; English is the default
const (
	English Locale = iota
	Polish
)

// Tags in the same order as the Locale constants
var supported = []language.Tag{
	language.English,
	language.Polish,
}

var matcher = language.NewMatcher(supported)

// String returns the BCP 47 tag of the locale
func (l Locale) String() string {
	if int(l) < 0 || int(l) >= len(supported) {
		return "und"
	}
	return supported[l].String()
}

// Strings is the full set of texts for one locale
type Strings struct {
	NoData      string // placeholder for any missing value
	InvalidTime string // marker for rows with unparsable timestamps

	WeatherFor    string
	Time          string
	Current       string
	Wind          string
	ForecastTitle string

	ColumnTime        string
	ColumnTemp        string
	ColumnWind        string
	ColumnDescription string

	MenuTitle    string
	Instructions string
	Prompt       string
	Goodbye      string

	CityNotFound string
	FetchFailed  string
	NoWeather    string

	Symbols    map[string]string
	Conditions map[symbol.Condition]string
}

// Match picks the best supported locale for a BCP 47 tag or a POSIX locale
// name such as "pl_PL.UTF-8". Anything unrecognised falls back to English.
func Match(name string) Locale {
	s := strings.TrimSpace(name)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || strings.EqualFold(s, "C") || strings.EqualFold(s, "POSIX") {
		return English
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English
	}
	return Locale(index)
}

// Strings returns the text table for the locale
func (l Locale) Strings() Strings {
	switch l {
	case Polish:
		return polish
	default:
		return english
	}
}

// Translator returns a symbol translator for the locale
func (l Locale) Translator() *symbol.Translator {
	s := l.Strings()
	return symbol.NewTranslator(s.NoData, s.Symbols, s.Conditions)
}
