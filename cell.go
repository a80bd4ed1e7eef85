// Package cellui is a retained-mode terminal UI toolkit: a tree of components
// with box-model layout, constraint-based grid placement, clipped render
// buffers and keyboard focus traversal.
package cellui

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// Color is a 24-bit color with an alpha channel.
// Only A == 0 is meaningful: it marks a fully transparent color, which keeps
// whatever background is already in the cell.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Named colors.
var (
	Transparent    = Color{}
	Black          = RGB(0, 0, 0)
	White          = RGB(255, 255, 255)
	Red            = RGB(205, 49, 49)
	Green          = RGB(13, 188, 121)
	Yellow         = RGB(229, 229, 16)
	Blue           = RGB(36, 114, 200)
	Magenta        = RGB(188, 63, 188)
	Cyan           = RGB(17, 168, 205)
	DimGray        = RGB(105, 105, 105)
	DarkGray       = RGB(66, 66, 66)
	CornflowerBlue = RGB(100, 149, 237)
)

// NameToColor maps color names accepted by ParseColor.
var NameToColor = map[string]Color{
	"transparent":    Transparent,
	"black":          Black,
	"white":          White,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"dimgray":        DimGray,
	"darkgray":       DarkGray,
	"cornflowerblue": CornflowerBlue,
}

// ErrUnknownColor is returned by ParseColor for unrecognized input.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor accepts a name from NameToColor or a hex value like "#1e90ff".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := NameToColor[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex, err := colorful.Hex(s)
		if err != nil {
			return Color{}, errors.Wrapf(ErrUnknownColor, "%q", s)
		}
		return fromColorful(hex), nil
	}
	return Color{}, errors.Wrapf(ErrUnknownColor, "%q", s)
}

// IsTransparent reports whether the color keeps the existing background.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// Blend mixes c towards other by t (0 keeps c, 1 yields other).
// The result is opaque.
func (c Color) Blend(other Color, t float64) Color {
	return fromColorful(c.colorful().BlendRgb(other.colorful(), t))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// Cell is a single character position in a render buffer.
type Cell struct {
	Char rune
	Fg   Color
	Bg   Color
}

// EmptyCell is the content of a freshly allocated or cleared root buffer.
var EmptyCell = Cell{Char: ' ', Fg: White, Bg: Black}

// WidePlaceholder is shown for characters that do not fit one terminal
// column.
const WidePlaceholder = '?'

// narrow measures with ambiguous-width characters counted as one column,
// independent of the locale.
var narrow = &runewidth.Condition{}

// DisplayRune returns the rune a terminal shows for a cell holding r: r
// itself when it is one column wide, WidePlaceholder otherwise. Cells hold
// one character each, so wide and zero-width characters would shift the
// rest of the row.
func DisplayRune(r rune) rune {
	if narrow.RuneWidth(r) != 1 {
		return WidePlaceholder
	}
	return r
}
