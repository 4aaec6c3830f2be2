package geoview

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// MinWidth is the narrowest table a TableBuilder will lay out.
const MinWidth = 6

const tabSize = 8

// East-Asian ambiguous runes (Cyrillic, "°") are one column wide.
var cond = &runewidth.Condition{StrictEmojiNeutral: true}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	leftTee, rightTee                          string
}

var borderSets = map[BorderStyle]borderChars{
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		leftTee: "╠", rightTee: "╣",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		leftTee: "├", rightTee: "┤",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		leftTee: "┣", rightTee: "┫",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		leftTee: "+", rightTee: "+",
	},
}

// TableBuilder lays out text into a single-column bordered table of fixed
// width. Sections hold left-aligned lines, headers hold centered text. Every
// line it produces has the same display width.
//
// A TableBuilder is not safe for concurrent use.
type TableBuilder struct {
	width int
	bc    borderChars
	lines []string
}

// NewTableBuilder returns an empty builder. A width of zero or less selects
// DefaultWidth; widths below MinWidth are raised to MinWidth. An unknown
// border style falls back to BorderDouble.
func NewTableBuilder(width int, border BorderStyle) *TableBuilder {
	switch {
	case width <= 0:
		width = DefaultWidth
	case width < MinWidth:
		width = MinWidth
	}
	bc, ok := borderSets[border]
	if !ok {
		bc = borderSets[BorderDouble]
	}
	return &TableBuilder{width: width, bc: bc}
}

// Width returns the display width of every line in the table.
func (t *TableBuilder) Width() int { return t.width }

// Len returns the number of lines added so far.
func (t *TableBuilder) Len() int { return len(t.lines) }

// AddSection appends a bordered block of left-aligned lines. Each line is
// word-wrapped to the content width. With no lines, only the borders are
// added.
func (t *TableBuilder) AddSection(lines ...string) {
	t.open()
	for _, line := range lines {
		for _, l := range wrapText(line, t.contentWidth()) {
			t.lines = append(t.lines, t.leftLine(l))
		}
	}
	t.close()
}

// AddHeader appends a bordered block with text centered between the
// vertical borders. Long text wraps onto several centered lines.
func (t *TableBuilder) AddHeader(text string) {
	t.open()
	for _, l := range wrapText(text, t.contentWidth()) {
		t.lines = append(t.lines, t.centerLine(l))
	}
	t.close()
}

// Table returns the finished lines with corner characters on the first and
// last border. The builder is left unchanged, so Table may be called again
// or followed by more sections.
func (t *TableBuilder) Table() ([]string, error) {
	if len(t.lines) == 0 {
		return nil, ErrEmptyTable
	}
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	out[0] = t.hline(t.bc.topLeft, t.bc.topRight)
	out[len(out)-1] = t.hline(t.bc.bottomLeft, t.bc.bottomRight)
	return out, nil
}

// contentWidth is the table width minus two borders and two padding spaces.
func (t *TableBuilder) contentWidth() int {
	return t.width - 4
}

func (t *TableBuilder) open() {
	if len(t.lines) == 0 {
		t.close()
	}
}

func (t *TableBuilder) close() {
	t.lines = append(t.lines, t.hline(t.bc.leftTee, t.bc.rightTee))
}

func (t *TableBuilder) hline(left, right string) string {
	return left + strings.Repeat(t.bc.horizontal, t.width-2) + right
}

func (t *TableBuilder) leftLine(s string) string {
	return t.bc.vertical + " " + alignCell(s, t.contentWidth(), alignLeft) + " " + t.bc.vertical
}

// centerLine uses the full inner width; unlike leftLine it keeps no margin.
func (t *TableBuilder) centerLine(s string) string {
	return t.bc.vertical + alignCell(s, t.width-2, alignCenter) + t.bc.vertical
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
)

func alignCell(s string, width int, align alignment) string {
	pad := width - cond.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// --- Word wrapping ---

// wrapText greedily packs s into lines no wider than width. Every whitespace
// rune counts as one space, so spacing inside a line is kept, while
// whitespace at a line break is dropped. The indentation of the first line
// is kept unless the first word does not fit after it. Hyphenated words may
// break after the hyphen, and words wider than a line are split. Text
// without words yields a single empty line.
func wrapText(s string, width int) []string {
	if strings.TrimSpace(s) == "" {
		return []string{""}
	}
	chunks := splitChunks(expandTabs(s))

	var lines []string
	for len(chunks) > 0 {
		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
			continue
		}

		var line []string
		lineWidth := 0
		for len(chunks) > 0 {
			cw := cond.StringWidth(chunks[0])
			if lineWidth+cw > width {
				break
			}
			line = append(line, chunks[0])
			lineWidth += cw
			chunks = chunks[1:]
		}

		// A chunk wider than a whole line fills what is left of this one.
		if len(chunks) > 0 && cond.StringWidth(chunks[0]) > width {
			head := cond.Truncate(chunks[0], width-lineWidth, "")
			if head == "" && lineWidth == 0 {
				// A single rune wider than the line: emit it alone.
				head = string([]rune(chunks[0])[0])
			}
			if head != "" {
				line = append(line, head)
				chunks[0] = chunks[0][len(head):]
			}
		}

		if n := len(line); n > 0 && isBlank(line[n-1]) {
			line = line[:n-1]
		}
		if len(line) > 0 {
			lines = append(lines, strings.Join(line, ""))
		}
	}
	return lines
}

// splitChunks splits s into alternating runs of words and spaces. Each
// whitespace rune becomes a single space. A hyphen between letters ends a
// word chunk so the line may break after it.
func splitChunks(s string) []string {
	var chunks []string
	var cur []rune
	inSpace := false
	flush := func() {
		if len(cur) > 0 {
			chunks = append(chunks, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if !inSpace {
				flush()
				inSpace = true
			}
			cur = append(cur, ' ')
			continue
		}
		if inSpace {
			flush()
			inSpace = false
		}
		cur = append(cur, r)
		if r == '-' && i >= 2 && i+1 < len(runes) &&
			unicode.IsLetter(runes[i-2]) && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
			flush()
		}
	}
	flush()
	return chunks
}

func isBlank(chunk string) bool {
	return strings.TrimLeft(chunk, " ") == ""
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabSize - col%tabSize
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += cond.RuneWidth(r)
		}
	}
	return sb.String()
}
