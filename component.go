package cellui

import (
	"strconv"
)

// MaxTreeDepth bounds every upward walk of parent references. A longer walk
// means the tree contains a cycle.
const MaxTreeDepth = 9999

// Component is a node of the UI tree. Widgets embed Box and implement the
// content methods; the box model around the content is handled by Width,
// Height and Render.
type Component interface {
	// Base returns the embedded box model state.
	Base() *Box
	// ContentWidth is the width wanted by the content alone, excluding
	// margin, border and padding. It is a hint: the content may be given
	// more space. Components that take whatever they get return 0.
	ContentWidth() int
	// ContentHeight is the height counterpart of ContentWidth.
	ContentHeight() int
	// RenderContent draws the content into a buffer already cut to the
	// content area.
	RenderContent(buf *RenderBuffer)
	// HandleInput is called with keys typed while the component is focused.
	// It reports whether the key was consumed; unconsumed keys may trigger
	// hotkeys.
	HandleInput(ev KeyEvent) bool
}

// Parent is implemented by components holding children.
type Parent interface {
	Component
	Children() []Component
}

// Spacing holds a size per edge, used for margins, borders and paddings.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Uniform returns a Spacing of n on every edge.
func Uniform(n int) Spacing {
	return Spacing{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns Left + Right.
func (s Spacing) Horizontal() int { return s.Left + s.Right }

// Vertical returns Top + Bottom.
func (s Spacing) Vertical() int { return s.Top + s.Bottom }

// BorderGlyphs holds the characters used to paint a border.
type BorderGlyphs struct {
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// DefaultBorder uses line edges and '+' corners.
var DefaultBorder = BorderGlyphs{
	Top: '─', Bottom: '─', Left: '│', Right: '│',
	TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
}

// BorderSets are named glyph sets, selectable by name in the builder.
var BorderSets = map[string]BorderGlyphs{
	"default": DefaultBorder,
	"single": {
		Top: '─', Bottom: '─', Left: '│', Right: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	},
	"double": {
		Top: '═', Bottom: '═', Left: '║', Right: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
	},
	"rounded": {
		Top: '─', Bottom: '─', Left: '│', Right: '│',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	},
	"bold": {
		Top: '━', Bottom: '━', Left: '┃', Right: '┃',
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
	},
}

// Default colors of a new Box.
var (
	DefaultForeground         = White
	DefaultBackground         = Black
	DefaultBorderColor        = White
	DefaultFocusedForeground  = Black
	DefaultFocusedBackground  = White
	DefaultFocusedBorderColor = White
)

// Box is the box model state shared by every component: margin, border and
// padding around the content, the colors used in focused and unfocused
// state, and the parent back-reference maintained by containers.
//
// Fields can be assigned freely. Changing them does not redraw anything;
// mutate the tree inside Scheduler.Update, or call Invalidate afterwards.
type Box struct {
	Margin  Spacing
	Border  Spacing
	Padding Spacing
	Glyphs  BorderGlyphs

	Foreground         Color
	Background         Color
	BorderColor        Color
	FocusedForeground  Color
	FocusedBackground  Color
	FocusedBorderColor Color

	// Opaque components blank their inner area before drawing content.
	Opaque    bool
	Focusable bool
	// Debug writes the rendered size over the top left corner.
	Debug bool

	OnFocusGained func()
	OnFocusLost   func()

	parent Component
}

// NewBox returns a Box with the default glyphs and colors, opaque and not
// focusable.
func NewBox() Box {
	return Box{
		Glyphs:             DefaultBorder,
		Foreground:         DefaultForeground,
		Background:         DefaultBackground,
		BorderColor:        DefaultBorderColor,
		FocusedForeground:  DefaultFocusedForeground,
		FocusedBackground:  DefaultFocusedBackground,
		FocusedBorderColor: DefaultFocusedBorderColor,
		Opaque:             true,
	}
}

func (b *Box) Base() *Box { return b }

// Parent returns the container holding the component, or nil.
func (b *Box) Parent() Component { return b.parent }

// HandleInput consumes nothing.
func (b *Box) HandleInput(KeyEvent) bool { return false }

// SetMargin sets the margin of each edge.
func (b *Box) SetMargin(top, right, bottom, left int) {
	b.Margin = Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// SetBorder sets the border thickness of each edge.
func (b *Box) SetBorder(top, right, bottom, left int) {
	b.Border = Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// SetPadding sets the padding of each edge.
func (b *Box) SetPadding(top, right, bottom, left int) {
	b.Padding = Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Width returns the full width of c: content plus padding, border and
// margin on both sides.
func Width(c Component) int {
	b := c.Base()
	return b.Margin.Left + b.Border.Left + b.Padding.Left +
		c.ContentWidth() +
		b.Padding.Right + b.Border.Right + b.Margin.Right
}

// Height returns the full height of c.
func Height(c Component) int {
	b := c.Base()
	return b.Margin.Top + b.Border.Top + b.Padding.Top +
		c.ContentHeight() +
		b.Padding.Bottom + b.Border.Bottom + b.Margin.Bottom
}

// Render draws c into buf: margins are left untouched, the border is
// painted, an opaque inner area is blanked, and the content is drawn inside
// the padding.
func Render(c Component, buf *RenderBuffer) {
	b := c.Base()
	focused := IsFocused(c)

	outer := buf.View(b.Margin.Left, b.Margin.Top,
		buf.Width()-b.Margin.Horizontal(), buf.Height()-b.Margin.Vertical())

	outer.Foreground = b.BorderColor
	if focused {
		outer.Foreground = b.FocusedBorderColor
	}
	inner := paintBorder(outer, b.Border, b.Glyphs)

	inner.Background = b.Background
	if focused {
		inner.Background = b.FocusedBackground
	}
	if b.Opaque {
		inner.Fill(' ')
	}

	content := inner.View(b.Padding.Left, b.Padding.Top,
		inner.Width()-b.Padding.Horizontal(), inner.Height()-b.Padding.Vertical())
	content.Foreground = b.Foreground
	if focused {
		content.Foreground = b.FocusedForeground
	}
	c.RenderContent(content)

	if b.Debug {
		buf.SetAll(0, 0, strconv.Itoa(buf.Width())+"x"+strconv.Itoa(buf.Height()))
	}
}

// paintBorder draws border glyphs of the given thickness along the edges of
// buf with its current paint colors and returns the view inside them.
// Side glyphs run the full height; the top and bottom rows are then
// overwritten with corners and edge glyphs.
func paintBorder(buf *RenderBuffer, border Spacing, g BorderGlyphs) *RenderBuffer {
	w, h := buf.Width(), buf.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < border.Left; x++ {
			buf.Put(x, y, g.Left)
		}
		for x := w - border.Right; x < w; x++ {
			buf.Put(x, y, g.Right)
		}

		switch {
		case y < border.Top:
			paintEdgeRow(buf, y, border, g.TopLeft, g.Top, g.TopRight)
		case y >= h-border.Bottom:
			paintEdgeRow(buf, y, border, g.BottomLeft, g.Bottom, g.BottomRight)
		}
	}

	return buf.View(border.Left, border.Top, w-border.Horizontal(), h-border.Vertical())
}

func paintEdgeRow(buf *RenderBuffer, y int, border Spacing, left, fill, right rune) {
	w := buf.Width()
	for x := 0; x < w; x++ {
		switch {
		case x < border.Left:
			buf.Put(x, y, left)
		case x >= w-border.Right:
			buf.Put(x, y, right)
		default:
			buf.Put(x, y, fill)
		}
	}
}

// RootOf walks parent references up to the root container holding c.
// It returns nil when c is not attached to a root and panics when the walk
// exceeds MaxTreeDepth.
func RootOf(c Component) *Root {
	for i := 0; i < MaxTreeDepth; i++ {
		if c == nil {
			return nil
		}
		if r, ok := c.(interface{ rootContainer() *Root }); ok {
			return r.rootContainer()
		}
		c = c.Base().parent
	}
	panic("cellui: cannot find root container, the component tree contains a cycle")
}

// Focus moves the focus of c's root to c. Does nothing when c is detached.
func Focus(c Component) {
	if root := RootOf(c); root != nil {
		root.Focus(c)
	}
}

// IsFocused reports whether c holds the focus of its root.
func IsFocused(c Component) bool {
	root := RootOf(c)
	return root != nil && root.Focused() == c
}

// Invalidate requests a redraw of the root holding c, if it is attached to
// a root that is attached to a scheduler.
func Invalidate(c Component) {
	if root := RootOf(c); root != nil {
		root.Invalidate()
	}
}
