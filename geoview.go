package geoview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedStyle  = errors.New("unsupported style")
	ErrUnsupportedBorder = errors.New("unsupported border")
	ErrEmptyTable        = errors.New("table has no lines")
	ErrNoTimezone        = errors.New("no known timezone")
	ErrInvalidOffset     = errors.New("invalid utc offset")
	ErrInvalidRate       = errors.New("invalid currency rate")
)

// Style represents an output style.
type Style string

const (
	Bordered Style = "bordered"
	Flat     Style = "flat"
	JSON     Style = "json"
	YAML     Style = "yaml"
)

var styles = []Style{Bordered, Flat, JSON, YAML}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style string.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderDouble  BorderStyle = iota // ╔═╗╚╝║╠╣
	BorderRounded                    // ╭─╮╰╯│├┤
	BorderHeavy                      // ┏━┓┗┛┃┣┫
	BorderASCII                      // +-+|
)

var borderNames = map[string]BorderStyle{
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"heavy":   BorderHeavy,
	"ascii":   BorderASCII,
}

// ParseBorder parses a border style name: double, rounded, heavy or ascii.
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[s]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// DefaultWidth is the table width used when none is configured.
const DefaultWidth = 120

// Option configures a render.
type Option func(*config)

type config struct {
	style  Style
	width  int
	border BorderStyle
	now    func() time.Time
	log    logrus.FieldLogger
}

func newConfig(opts []Option) *config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	c := &config{
		style:  Bordered,
		width:  DefaultWidth,
		border: BorderDouble,
		now:    time.Now,
		log:    discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithStyle selects the output style. Default: Bordered.
func WithStyle(s Style) Option {
	return func(c *config) { c.style = s }
}

// WithWidth sets the total table width for the Bordered style.
// Default: DefaultWidth.
func WithWidth(w int) Option {
	return func(c *config) { c.width = w }
}

// WithBorder sets the table border characters. Default: BorderDouble.
func WithBorder(b BorderStyle) Option {
	return func(c *config) { c.border = b }
}

// WithClock overrides the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// WithLogger sets the logger used for diagnostics. Default: discard.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) { c.log = l }
}

// Render formats rec in the configured style and returns the output lines.
func Render(rec Record, opts ...Option) ([]string, error) {
	c := newConfig(opts)
	r := &renderer{rec: rec, cfg: c}
	switch c.style {
	case Bordered:
		return r.bordered()
	case Flat:
		return r.flat()
	case JSON:
		return r.encoded(encodeJSON)
	case YAML:
		return r.encoded(encodeYAML)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStyle, c.style)
	}
}

// Write formats rec and writes each output line to w.
func Write(w io.Writer, rec Record, opts ...Option) error {
	lines, err := Render(rec, opts...)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Marshal formats rec and returns the bytes.
func Marshal(rec Record, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rec, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
