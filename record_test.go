package geoview_test

import (
	"strings"
	"testing"

	"github.com/bjaus/geoview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordYAML = `
location:
  name: Germany
  capital: Berlin
  latitude: 52.52
  longitude: 13.4
  region: Europe
  subregion: Western Europe
  area: 357114
  population: 83240525
  languages:
    - name: German
      native_name: Deutsch
  timezones: [UTC+01:00]
weather:
  temp: 4.2
  wind_speed: 5.1
  visibility: 9000
  description: облачно
currency_rates:
  USD: 92.5012
  EUR: "100.125"
  CNY: 12.344
news:
  - title: First
  - title: Second
`

func TestDecodeYAML(t *testing.T) {
	t.Parallel()
	rec, err := geoview.Decode(strings.NewReader(recordYAML))
	require.NoError(t, err)

	assert.Equal(t, "Germany", rec.Location.Name)
	assert.Equal(t, int64(83240525), rec.Location.Population)
	require.NotNil(t, rec.Location.Area)
	assert.InDelta(t, 357114.0, *rec.Location.Area, 0)
	assert.Equal(t, []geoview.Language{{Name: "German", NativeName: "Deutsch"}}, rec.Location.Languages)
	assert.Equal(t, []string{"UTC+01:00"}, rec.Location.Timezones)
	assert.Equal(t, 9000, rec.Weather.Visibility)
	assert.Equal(t, geoview.CurrencyRates{
		{Code: "USD", Amount: "92.5012"},
		{Code: "EUR", Amount: "100.125"},
		{Code: "CNY", Amount: "12.344"},
	}, rec.CurrencyRates)
	assert.Equal(t, []geoview.NewsItem{{Title: "First"}, {Title: "Second"}}, rec.News)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	doc := `{"location": {"name": "Chile", "capital": "Santiago", "region": "Americas", ` +
		`"timezones": ["UTC-06:00", "UTC-04:00"]}, "currency_rates": {"ZAR": 5.01, "AED": "25.005"}}`
	rec, err := geoview.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Santiago", rec.Location.Capital)
	assert.Nil(t, rec.Location.Area)
	assert.Empty(t, rec.News)
	assert.Equal(t, geoview.CurrencyRates{
		{Code: "ZAR", Amount: "5.01"},
		{Code: "AED", Amount: "25.005"},
	}, rec.CurrencyRates)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"empty":             "",
		"rates as list":     "currency_rates: [1, 2]",
		"nested rate":       "currency_rates:\n  USD: {buy: 1}",
		"malformed":         "location: [",
		"population string": "location:\n  population: many",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := geoview.Decode(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestDecodeThenRender(t *testing.T) {
	t.Parallel()
	rec, err := geoview.Decode(strings.NewReader(recordYAML))
	require.NoError(t, err)
	lines, err := geoview.Render(rec, geoview.WithStyle(geoview.Flat), geoview.WithClock(clock))
	require.NoError(t, err)
	assert.Contains(t, lines, "Время: 15.01.2024 13:00 (UTC+01:00)")
	assert.Contains(t, lines, "Курсы валют: USD = 92.50 руб., EUR = 100.13 руб., CNY = 12.34 руб.")
	assert.Contains(t, lines, "Площадь: 357114 км2")
	assert.Equal(t, []string{"Новости:", "\tFirst", "\tSecond"}, lines[len(lines)-3:])
}
