package cellui

import (
	"io"
	"strings"
)

// RenderBuffer is a rectangular grid of cells.
//
// A root buffer owns its cells. A view is an offset window onto its parent:
// it owns no storage, translates every access to the root, and drops writes
// that fall outside its own bounds. Components draw onto views, so a
// component can never paint over its siblings.
type RenderBuffer struct {
	parent *RenderBuffer
	cells  []Cell // root only

	x, y          int // offset within parent
	width, height int

	// Paint colors used by Put, SetAll and Fill. Views copy them from their
	// parent when created; later changes on either side are not shared.
	Foreground Color
	Background Color
}

// NewRenderBuffer creates a root buffer filled with EmptyCell.
func NewRenderBuffer(width, height int) *RenderBuffer {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &RenderBuffer{
		cells:      cells,
		width:      width,
		height:     height,
		Foreground: EmptyCell.Fg,
		Background: EmptyCell.Bg,
	}
}

// View creates a child view at (x, y) relative to b.
// Negative sizes are clamped to zero; a zero-size view discards all writes.
func (b *RenderBuffer) View(x, y, width, height int) *RenderBuffer {
	return &RenderBuffer{
		parent:     b,
		x:          x,
		y:          y,
		width:      max(width, 0),
		height:     max(height, 0),
		Foreground: b.Foreground,
		Background: b.Background,
	}
}

// Width returns the buffer width.
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *RenderBuffer) Height() int { return b.height }

// IsRoot reports whether b owns its cells.
func (b *RenderBuffer) IsRoot() bool { return b.parent == nil }

// Root returns the buffer owning the cells b writes to.
func (b *RenderBuffer) Root() *RenderBuffer {
	for b.parent != nil {
		b = b.parent
	}
	return b
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell. Writes outside the buffer and carriage returns are
// ignored. A transparent background keeps the existing one.
func (b *RenderBuffer) Set(x, y int, ch rune, fg, bg Color) {
	if !b.inBounds(x, y) || ch == '\r' {
		return
	}
	if b.parent != nil {
		b.parent.Set(x+b.x, y+b.y, ch, fg, bg)
		return
	}

	c := &b.cells[y*b.width+x]
	c.Char = ch
	c.Fg = fg
	if !bg.IsTransparent() {
		c.Bg = bg
	}
}

// Put writes a character using the current paint colors.
func (b *RenderBuffer) Put(x, y int, ch rune) {
	b.Set(x, y, ch, b.Foreground, b.Background)
}

// SetAll writes character i of text at (x+i, y), each character clipped
// individually. Returns the column after the last character.
func (b *RenderBuffer) SetAll(x, y int, text string) int {
	col := x
	for _, ch := range text {
		b.Put(col, y, ch)
		col++
	}
	return col
}

// Fill overwrites every cell of the buffer with ch in the paint colors.
func (b *RenderBuffer) Fill(ch rune) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.Put(x, y, ch)
		}
	}
}

// Get returns the cell at (x, y), translated to the root.
// Positions outside the root return EmptyCell.
func (b *RenderBuffer) Get(x, y int) Cell {
	if b.parent != nil {
		return b.parent.Get(x+b.x, y+b.y)
	}
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	return b.cells[y*b.width+x]
}

// Char returns the character at (x, y).
func (b *RenderBuffer) Char(x, y int) rune { return b.Get(x, y).Char }

// ForegroundAt returns the foreground color at (x, y).
func (b *RenderBuffer) ForegroundAt(x, y int) Color { return b.Get(x, y).Fg }

// BackgroundAt returns the background color at (x, y).
func (b *RenderBuffer) BackgroundAt(x, y int) Color { return b.Get(x, y).Bg }

func (b *RenderBuffer) mustBeRoot(op string) {
	if b.parent != nil {
		panic("cellui: " + op + " called on a view; only the root buffer supports it")
	}
}

// Clear resets every character of the root buffer to a space, keeping colors.
func (b *RenderBuffer) Clear() {
	b.mustBeRoot("Clear")
	for i := range b.cells {
		b.cells[i].Char = ' '
	}
}

// Serialize renders the root buffer into a single string: rows separated by
// newlines, with a color escape emitted only where the foreground or
// background differs from the previous cell. Each cell takes one terminal
// column, see DisplayRune.
func (b *RenderBuffer) Serialize() string {
	b.mustBeRoot("Serialize")

	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)

	fg, bg := EmptyCell.Fg, EmptyCell.Bg
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Fg != fg {
				writeColorPrefix(&sb, c.Fg, true)
				fg = c.Fg
			}
			if c.Bg != bg {
				writeColorPrefix(&sb, c.Bg, false)
				bg = c.Bg
			}
			sb.WriteRune(DisplayRune(c.Char))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the serialized root buffer to w.
func (b *RenderBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Serialize())
	return int64(n), err
}

// String returns the characters of the buffer without colors, rows joined
// by newlines. Unlike Serialize it works on views as well.
func (b *RenderBuffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.Char(x, y))
		}
	}
	return sb.String()
}
