package geoview

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Record is the collected data for one country.
type Record struct {
	Location      Location      `json:"location" yaml:"location"`
	Weather       Weather       `json:"weather" yaml:"weather"`
	CurrencyRates CurrencyRates `json:"currency_rates" yaml:"currency_rates"`
	News          []NewsItem    `json:"news" yaml:"news"`
}

// Location describes a country and its capital.
type Location struct {
	Name       string     `json:"name" yaml:"name"`
	Capital    string     `json:"capital" yaml:"capital"`
	Latitude   float64    `json:"latitude" yaml:"latitude"`
	Longitude  float64    `json:"longitude" yaml:"longitude"`
	Region     string     `json:"region" yaml:"region"`
	Subregion  string     `json:"subregion" yaml:"subregion"`
	Area       *float64   `json:"area" yaml:"area"`
	Population int64      `json:"population" yaml:"population"`
	Languages  []Language `json:"languages" yaml:"languages"`
	// Timezones holds offsets in the form "UTC+03:00".
	Timezones []string `json:"timezones" yaml:"timezones"`
}

// Language is a spoken language with its self-designation.
type Language struct {
	Name       string `json:"name" yaml:"name"`
	NativeName string `json:"native_name" yaml:"native_name"`
}

// Weather is a snapshot of the weather in the capital.
type Weather struct {
	Temp        float64 `json:"temp" yaml:"temp"`
	WindSpeed   float64 `json:"wind_speed" yaml:"wind_speed"`
	Visibility  int     `json:"visibility" yaml:"visibility"`
	Description string  `json:"description" yaml:"description"`
}

// NewsItem is a single headline.
type NewsItem struct {
	Title string `json:"title" yaml:"title"`
}

// Rate is the price of one unit of a currency.
// Amount is kept as decimal text so that rounding is exact.
type Rate struct {
	Code   string
	Amount string
}

// CurrencyRates is an ordered currency-to-rate mapping.
type CurrencyRates []Rate

// UnmarshalYAML decodes a mapping node, keeping document order.
func (c *CurrencyRates) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: currency rates must be a mapping", value.Line)
	}
	rates := make(CurrencyRates, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: rate for %q must be a scalar", val.Line, key.Value)
		}
		rates = append(rates, Rate{Code: key.Value, Amount: val.Value})
	}
	*c = rates
	return nil
}

// Decode reads a YAML or JSON record from r.
func Decode(r io.Reader) (Record, error) {
	var rec Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
