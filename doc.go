// Package geoview renders collected country data as human-readable text.
//
// A [Record] holds a country's location, a weather snapshot, currency rates
// and news headlines. [Render], [Write] and [Marshal] turn it into output
// lines in one of several [Style]s:
//
//   - [Bordered] — a fixed-width table with centered section headers
//   - [Flat] — labeled lines, one field per line
//   - [JSON] and [YAML] — the formatted fields as a document
//
// Use [ParseStyle] to convert a CLI flag string into a [Style]:
//
//	st, err := geoview.ParseStyle(flagValue)
//	geoview.Write(os.Stdout, rec, geoview.WithStyle(st))
//
// # Tables
//
// [TableBuilder] lays out the bordered style and can be used on its own.
// Sections hold left-aligned lines, headers hold centered text, and long
// lines are word-wrapped to the table width:
//
//	tb := geoview.NewTableBuilder(60, geoview.BorderDouble)
//	tb.AddHeader("WEATHER")
//	tb.AddSection("Temperature: 21 °C", "Wind: 3 m/s")
//	lines, err := tb.Table()
//
// Interior borders use tee characters; [TableBuilder.Table] puts corner
// characters on the first and last line.
//
// # Field formatting
//
// The formatters are exported for callers that build their own layout:
// [FormatTime], [FormatPopulation], [FormatCurrencyRates], [FormatLanguages],
// [FormatArea] and [FormatCoordinates]. [Summarize] applies all of them.
//
// # Decoding
//
// [Decode] reads a record from YAML or JSON. Currency rates keep the order in
// which they appear in the document.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedStyle] — unknown style string
//   - [ErrUnsupportedBorder] — unknown border name
//   - [ErrEmptyTable] — Table called before anything was added
//   - [ErrNoTimezone] — no zone and no fixed offset for the capital
//   - [ErrInvalidOffset] — malformed "UTC±HH:MM" offset
//   - [ErrInvalidRate] — currency rate is not a decimal number
package geoview
