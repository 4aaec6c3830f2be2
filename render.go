package geoview

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Summary holds the display strings of a record. It is what the JSON and
// YAML styles encode.
type Summary struct {
	Country     string         `json:"country" yaml:"country"`
	Capital     string         `json:"capital" yaml:"capital"`
	Coordinates string         `json:"coordinates" yaml:"coordinates"`
	Time        string         `json:"time" yaml:"time"`
	Population  string         `json:"population" yaml:"population"`
	Region      string         `json:"region" yaml:"region"`
	Area        string         `json:"area" yaml:"area"`
	Languages   string         `json:"languages" yaml:"languages"`
	Currencies  string         `json:"currencies" yaml:"currencies"`
	Weather     WeatherSummary `json:"weather" yaml:"weather"`
	News        []string       `json:"news,omitempty" yaml:"news,omitempty"`
}

// WeatherSummary holds the display strings of a weather snapshot.
type WeatherSummary struct {
	Temperature string `json:"temperature" yaml:"temperature"`
	WindSpeed   string `json:"wind_speed" yaml:"wind_speed"`
	Visibility  string `json:"visibility" yaml:"visibility"`
	Description string `json:"description" yaml:"description"`
}

// Summarize formats every field of rec. Only WithClock and WithLogger
// affect the result.
func Summarize(rec Record, opts ...Option) (Summary, error) {
	r := &renderer{rec: rec, cfg: newConfig(opts)}
	return r.summarize()
}

type renderer struct {
	rec Record
	cfg *config
}

func (r *renderer) summarize() (Summary, error) {
	loc := r.rec.Location

	clock, fallback, err := formatTime(loc, r.cfg.now())
	if err != nil {
		return Summary{}, fmt.Errorf("format time: %w", err)
	}
	if fallback {
		r.cfg.log.WithField("zone", zoneName(loc)).Debug("Unknown time zone, using fixed offset.")
	}

	currencies, err := FormatCurrencyRates(r.rec.CurrencyRates)
	if err != nil {
		return Summary{}, fmt.Errorf("format currency rates: %w", err)
	}

	w := r.rec.Weather
	s := Summary{
		Country:     loc.Name,
		Capital:     loc.Capital,
		Coordinates: FormatCoordinates(loc.Latitude, loc.Longitude),
		Time:        clock,
		Population:  FormatPopulation(loc.Population) + " чел.",
		Region:      loc.Subregion,
		Area:        FormatArea(loc.Area),
		Languages:   FormatLanguages(loc.Languages),
		Currencies:  currencies,
		Weather: WeatherSummary{
			Temperature: formatFloat(w.Temp) + " °C",
			WindSpeed:   formatFloat(w.WindSpeed) + " м/с",
			Visibility:  fmt.Sprintf("%d м", w.Visibility),
			Description: w.Description,
		},
	}
	for _, item := range r.rec.News {
		s.News = append(s.News, item.Title)
	}
	return s, nil
}

func (r *renderer) bordered() ([]string, error) {
	s, err := r.summarize()
	if err != nil {
		return nil, err
	}

	tb := NewTableBuilder(r.cfg.width, r.cfg.border)
	tb.AddHeader("СТРАНА")
	tb.AddSection(
		"Страна: "+s.Country,
		"Столица: "+s.Capital,
		"Координаты: "+s.Coordinates,
		"Время: "+s.Time,
		"Население: "+s.Population,
		"Регион: "+s.Region,
		"Площадь: "+s.Area,
	)
	tb.AddHeader("ЯЗЫКИ")
	tb.AddSection(s.Languages)
	tb.AddHeader("ВАЛЮТЫ")
	tb.AddSection(s.Currencies)
	tb.AddHeader("ПОГОДА")
	tb.AddSection(
		"Температура: "+s.Weather.Temperature,
		"Скорость ветра: "+s.Weather.WindSpeed,
		"Видимость: "+s.Weather.Visibility,
		"Описание: "+s.Weather.Description,
	)
	if len(s.News) > 0 {
		tb.AddHeader("НОВОСТИ")
		tb.AddSection(s.News...)
	}

	r.cfg.log.WithField("lines", tb.Len()).Debug("Rendered table.")
	return tb.Table()
}

func (r *renderer) flat() ([]string, error) {
	s, err := r.summarize()
	if err != nil {
		return nil, err
	}
	lines := []string{
		"Страна: " + s.Country,
		fmt.Sprintf("Столица: %s %s", s.Capital, s.Coordinates),
		"Время: " + s.Time,
		"Регион: " + s.Region,
		"Площадь: " + s.Area,
		"Языки: " + s.Languages,
		"Население страны: " + s.Population,
		"Курсы валют: " + s.Currencies,
		"Погода:",
		"\tТемпература: " + s.Weather.Temperature,
		"\tСкорость ветра: " + s.Weather.WindSpeed,
		"\tВидимость: " + s.Weather.Visibility,
		"\tОписание: " + s.Weather.Description,
	}
	if len(s.News) > 0 {
		lines = append(lines, "Новости:")
		for _, title := range s.News {
			lines = append(lines, "\t"+title)
		}
	}
	return lines, nil
}

func (r *renderer) encoded(encode func(io.Writer, Summary) error) ([]string, error) {
	s, err := r.summarize()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode(&buf, s); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), nil
}
