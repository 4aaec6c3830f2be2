package geoview

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPopulation groups thousands with ".": 1234567 → "1.234.567".
func FormatPopulation(n int64) string {
	// German grouping puts "." between thousands.
	return message.NewPrinter(language.German).Sprintf("%d", n)
}

// FormatCurrencyRates renders each rate as "CODE = amount руб." with the
// amount rounded to two decimals, half away from zero. Rates keep their
// order and are joined by ", ".
func FormatCurrencyRates(rates CurrencyRates) (string, error) {
	parts := make([]string, len(rates))
	for i, rate := range rates {
		amount, err := RoundRate(rate.Amount)
		if err != nil {
			return "", fmt.Errorf("%s: %w", rate.Code, err)
		}
		parts[i] = fmt.Sprintf("%s = %s руб.", rate.Code, amount)
	}
	return strings.Join(parts, ", "), nil
}

// decimalPattern is the plain decimal notation a rate amount may use. It
// keeps out the fractions and base prefixes that big.Rat would accept.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// RoundRate rounds a decimal string to two places, half away from zero:
// "12.345" → "12.35", "12.344" → "12.34", "7" → "7.00".
func RoundRate(amount string) (string, error) {
	s := strings.TrimSpace(amount)
	if !decimalPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRate, amount)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRate, amount)
	}
	return r.FloatString(2), nil
}

// FormatLanguages renders languages as "Name (NativeName)" joined by ", ".
func FormatLanguages(langs []Language) string {
	parts := make([]string, len(langs))
	for i, l := range langs {
		parts[i] = fmt.Sprintf("%s (%s)", l.Name, l.NativeName)
	}
	return strings.Join(parts, ", ")
}

// FormatArea renders an area in square kilometres, or "-" when unknown.
func FormatArea(area *float64) string {
	if area == nil {
		return "-"
	}
	return formatFloat(*area) + " км2"
}

// FormatCoordinates renders a latitude/longitude pair as "(lat, lon)".
func FormatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("(%s, %s)", formatFloat(lat), formatFloat(lon))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
