// Package localtime converts provider timestamps to local display strings.
package localtime

import (
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is the format of localized timestamps
const DisplayLayout = "2006-01-02 15:04"

// Layouts without zone information; values in these shapes are taken as UTC
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseError reports a timestamp that could not be parsed
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Localizer converts timestamps into a fixed time zone
type Localizer struct {
	loc *time.Location
}

// New creates a localizer for loc. A nil location means the machine's zone.
func New(loc *time.Location) *Localizer {
	if loc == nil {
		loc = time.Local
	}
	return &Localizer{loc: loc}
}

// Location returns the zone timestamps are converted to
func (l *Localizer) Location() *time.Location {
	return l.loc
}

// Display parses ts and formats it in the localizer's zone
func (l *Localizer) Display(ts string) (string, error) {
	t, err := Parse(ts)
	if err != nil {
		return "", err
	}
	return t.In(l.loc).Format(DisplayLayout), nil
}

// ToLocalDisplay formats ts in the machine's local time zone
func ToLocalDisplay(ts string) (string, error) {
	return New(nil).Display(ts)
}

// Parse reads an ISO-8601 timestamp. A trailing "Z" means UTC and a missing
// offset is assumed to be UTC.
func Parse(ts string) (time.Time, error) {
	s := strings.TrimSpace(ts)
	if len(s) > len("2006-01-02") && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	firstErr := err

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &ParseError{Value: ts, Err: firstErr}
}
