package cellui

import (
	"strings"
	"unicode/utf8"
)

// AnsiColors is the 16 color palette used for SGR codes 30-37, 90-97 and
// their background counterparts.
var AnsiColors = [16]Color{
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, RGB(229, 229, 229),
	RGB(102, 102, 102), RGB(241, 76, 76), RGB(35, 209, 139), RGB(245, 245, 67),
	RGB(59, 142, 234), RGB(214, 112, 214), RGB(41, 184, 219), White,
}

// ContainsAnsi returns true if the string contains ANSI escape sequences.
func ContainsAnsi(s string) bool {
	return strings.Contains(s, "\x1b[")
}

// StripAnsi removes ANSI escape sequences, returning only the visible text.
func StripAnsi(s string) string {
	if !ContainsAnsi(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[':
			i = skipCSI(s, i+2)
		case s[i] == '\x1b':
			i += 2
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// skipCSI returns the index after the final byte of a CSI sequence whose
// parameters start at i.
func skipCSI(s string, i int) int {
	for i < len(s) && !isFinalByte(s[i]) {
		i++
	}
	if i < len(s) {
		i++
	}
	return i
}

func isFinalByte(c byte) bool { return c >= 0x40 && c <= 0x7E }

// AnsiSegment is a run of text sharing the colors set by SGR codes.
type AnsiSegment struct {
	Text string
	Fg   Color
	Bg   Color
}

// ParseAnsiLine splits a line into colored segments. fg and bg are the
// colors in effect before the first code and after a reset. Only color
// codes are interpreted; other SGR attributes and non-SGR sequences are
// dropped.
func ParseAnsiLine(line string, fg, bg Color) []AnsiSegment {
	if !ContainsAnsi(line) {
		return []AnsiSegment{{Text: line, Fg: fg, Bg: bg}}
	}

	var segments []AnsiSegment
	current := AnsiSegment{Fg: fg, Bg: bg}
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			current.Text = text.String()
			segments = append(segments, current)
			text.Reset()
		}
	}

	for i := 0; i < len(line); {
		switch {
		case line[i] == '\x1b' && i+1 < len(line) && line[i+1] == '[':
			flush()
			start := i + 2
			i = skipCSI(line, start)
			if i > start && line[i-1] == 'm' {
				applySGR(parseSGRParams(line[start:i-1]), &current, fg, bg)
			}
		case line[i] == '\x1b':
			i += 2
		default:
			text.WriteByte(line[i])
			i++
		}
	}
	flush()
	return segments
}

func applySGR(params []int, seg *AnsiSegment, fg, bg Color) {
	if len(params) == 0 {
		seg.Fg, seg.Bg = fg, bg
		return
	}

	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			seg.Fg, seg.Bg = fg, bg
		case p >= 30 && p <= 37:
			seg.Fg = AnsiColors[p-30]
		case p == 39:
			seg.Fg = fg
		case p >= 40 && p <= 47:
			seg.Bg = AnsiColors[p-40]
		case p == 49:
			seg.Bg = bg
		case p >= 90 && p <= 97:
			seg.Fg = AnsiColors[p-90+8]
		case p >= 100 && p <= 107:
			seg.Bg = AnsiColors[p-100+8]
		case p == 38 || p == 48:
			c, used, ok := extendedColor(params[i+1:])
			if ok {
				if p == 38 {
					seg.Fg = c
				} else {
					seg.Bg = c
				}
			}
			i += used
		}
	}
}

// extendedColor reads the tail of a 38 or 48 code: 5;N for the 256 color
// palette or 2;R;G;B. used is the number of params consumed.
func extendedColor(params []int) (c Color, used int, ok bool) {
	switch {
	case len(params) >= 2 && params[0] == 5:
		return color256(params[1]), 2, true
	case len(params) >= 4 && params[0] == 2:
		return RGB(uint8(params[1]), uint8(params[2]), uint8(params[3])), 4, true
	}
	return Color{}, 0, false
}

func color256(n int) Color {
	switch {
	case n >= 0 && n <= 15:
		return AnsiColors[n]
	case n >= 16 && n <= 231:
		n -= 16
		return RGB(uint8(n/36*51), uint8(n/6%6*51), uint8(n%6*51))
	case n >= 232 && n <= 255:
		v := uint8((n-232)*10 + 8)
		return RGB(v, v, v)
	}
	return White
}

// parseSGRParams splits a semicolon-separated parameter string into
// integers. Empty parameters count as 0.
func parseSGRParams(s string) []int {
	if s == "" {
		return nil
	}
	var params []int
	n := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			n = n*10 + int(s[i]-'0')
		case s[i] == ';':
			params = append(params, n)
			n = 0
		}
	}
	return append(params, n)
}

// AnsiLabel shows text carrying SGR color codes, such as the output of
// another command. Codes reset to the label's own colors.
type AnsiLabel struct {
	Box

	Text string
}

// NewAnsiLabel creates a non-focusable label for text with color codes.
func NewAnsiLabel(text string) *AnsiLabel {
	return &AnsiLabel{Box: NewBox(), Text: text}
}

func (l *AnsiLabel) ContentWidth() int {
	w := 0
	for _, line := range strings.Split(StripAnsi(l.Text), "\n") {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

func (l *AnsiLabel) ContentHeight() int {
	return strings.Count(l.Text, "\n") + 1
}

func (l *AnsiLabel) RenderContent(buf *RenderBuffer) {
	for y, line := range strings.Split(l.Text, "\n") {
		x := 0
		for _, seg := range ParseAnsiLine(line, buf.Foreground, buf.Background) {
			for _, ch := range seg.Text {
				buf.Set(x, y, ch, seg.Fg, seg.Bg)
				x++
			}
		}
	}
}
