package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-console/symbol"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		want Locale
	}{
		{"", English},
		{"C", English},
		{"POSIX", English},
		{"en", English},
		{"en_US.UTF-8", English},
		{"pl", Polish},
		{"pl-PL", Polish},
		{"pl_PL.UTF-8", Polish},
		{"pl_PL@euro", Polish},
		{"de_DE.UTF-8", English},
		{"not a locale!", English},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.name))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "en", English.String())
	assert.Equal(t, "pl", Polish.String())
	assert.Equal(t, "und", Locale(7).String())
}

func TestTablesAreComplete(t *testing.T) {
	en := English.Strings()
	pl := Polish.Strings()

	assert.Len(t, pl.Symbols, len(en.Symbols))
	for code := range en.Symbols {
		assert.Contains(t, pl.Symbols, code)
	}

	for _, s := range []Strings{en, pl} {
		for _, c := range []symbol.Condition{
			symbol.ClearSky, symbol.Sleet, symbol.Snow, symbol.RainWithThunder,
			symbol.Rain, symbol.Cloudy, symbol.Fog,
		} {
			assert.NotEmpty(t, s.Conditions[c])
		}
		assert.Equal(t, s.NoData, s.Symbols["unknown"])
	}
}

func TestTranslator(t *testing.T) {
	en := English.Translator()
	pl := Polish.Translator()

	assert.Equal(t, "Heavy rain with thunder", en.Translate("heavyrainandthunder"))
	assert.Equal(t, "Ulewny deszcz z burzą", pl.Translate("heavyrainandthunder"))

	assert.Equal(t, "Rain with thunder", en.Translate("lightrainandthunder"))
	assert.Equal(t, "Deszcz z burzą", pl.Translate("lightrainandthunder"))

	assert.Equal(t, "No data", en.Translate(""))
	assert.Equal(t, "Brak danych", pl.Translate(""))

	assert.Equal(t, "hail", pl.Translate("hail"))
}
