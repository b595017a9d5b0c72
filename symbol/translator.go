// Package symbol turns provider weather symbol codes into readable descriptions.
package symbol

import "strings"

// Condition is a coarse weather class used when a code has no exact entry
type Condition int

// Conditions recognised by the fallback rules
const (
	ClearSky Condition = iota
	Sleet
	Snow
	RainWithThunder
	Rain
	Cloudy
	Fog
)

// rule matches a lower-cased code when it contains every substring in all
type rule struct {
	all       []string
	condition Condition
}

// Evaluated in order, first match wins. A code containing both "snow" and
// "rain" is Snow because the snow rule comes first.
var fallbackRules = []rule{
	{[]string{"clearsky"}, ClearSky},
	{[]string{"sleet"}, Sleet},
	{[]string{"snow"}, Snow},
	{[]string{"rain", "thunder"}, RainWithThunder},
	{[]string{"rain"}, Rain},
	{[]string{"cloud"}, Cloudy},
	{[]string{"fog"}, Fog},
}

// Translator maps symbol codes to descriptions in one language
type Translator struct {
	noData     string
	exact      map[string]string
	conditions map[Condition]string
}

// NewTranslator creates a translator from an exact-match table and the
// descriptions used by the fallback rules. The maps are copied.
func NewTranslator(noData string, exact map[string]string, conditions map[Condition]string) *Translator {
	t := &Translator{
		noData:     noData,
		exact:      make(map[string]string, len(exact)),
		conditions: make(map[Condition]string, len(conditions)),
	}
	for code, desc := range exact {
		t.exact[code] = desc
	}
	for c, desc := range conditions {
		t.conditions[c] = desc
	}
	return t
}

// Translate returns the description for code. Empty codes yield the no-data
// placeholder and unrecognised codes are returned unchanged.
func (t *Translator) Translate(code string) string {
	if code == "" {
		return t.noData
	}

	if desc, ok := t.exact[code]; ok {
		return desc
	}

	lower := strings.ToLower(code)
	for _, r := range fallbackRules {
		if !containsAll(lower, r.all) {
			continue
		}
		if desc, ok := t.conditions[r.condition]; ok {
			return desc
		}
		break
	}

	return code
}

// NoData returns the placeholder used for missing codes
func (t *Translator) NoData() string {
	return t.noData
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
