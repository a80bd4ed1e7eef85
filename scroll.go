package cellui

import (
	"math"

	"github.com/germtb/cellui/constraints"
)

type scrollBarGlyphs struct {
	startEdge, endEdge, centerLine, fill rune
}

var (
	horizontalBarGlyphs = scrollBarGlyphs{'▐', '▌', '║', '█'}
	verticalBarGlyphs   = scrollBarGlyphs{'_', '‾', '=', '█'}
)

// Scroll is a container showing its children through a viewport of fixed
// size. The arrow keys move the viewport while the scroll is focused.
type Scroll struct {
	Container

	// ViewWidth and ViewHeight are the requested viewport size (minimum 1).
	ViewWidth  int
	ViewHeight int

	HorizontalSpeed int
	VerticalSpeed   int

	ShowHorizontalBar bool
	ShowVerticalBar   bool

	// Scroll offsets; clamped to the content on every render.
	OffsetX int
	OffsetY int
}

// NewScroll creates a scroll from constraint strings, see NewContainer.
func NewScroll(container, columns, rows string) (*Scroll, error) {
	cc, err := constraints.ParseContainer(container)
	if err != nil {
		return nil, err
	}
	cols, err := constraints.ParseColumns(columns)
	if err != nil {
		return nil, err
	}
	rs, err := constraints.ParseRows(rows)
	if err != nil {
		return nil, err
	}

	s := &Scroll{
		ViewWidth:         1,
		ViewHeight:        1,
		HorizontalSpeed:   1,
		VerticalSpeed:     1,
		ShowHorizontalBar: true,
		ShowVerticalBar:   true,
	}
	s.init(s, cc, cols, rs)
	s.Focusable = true
	s.Border = Uniform(1)
	s.FocusedBackground = s.Background
	s.FocusedForeground = s.Foreground
	s.FocusedBorderColor = CornflowerBlue
	return s, nil
}

func (s *Scroll) ContentWidth() int { return max(s.ViewWidth, 1) }

func (s *Scroll) ContentHeight() int { return max(s.ViewHeight, 1) }

func (s *Scroll) RenderContent(buf *RenderBuffer) {
	viewW := max(buf.Width()-boolInt(s.ShowVerticalBar), 0)
	viewH := max(buf.Height()-boolInt(s.ShowHorizontalBar), 0)
	contentW := max(s.Container.ContentWidth(), viewW)
	contentH := max(s.Container.ContentHeight(), viewH)

	s.OffsetX = max(min(s.OffsetX, contentW-viewW), 0)
	s.OffsetY = max(min(s.OffsetY, contentH-viewH), 0)

	// Children are drawn on a private canvas, then the visible part is
	// copied.
	canvas := NewRenderBuffer(contentW, contentH)
	canvas.Foreground = buf.Foreground
	canvas.Background = buf.Background
	canvas.Fill(' ')
	s.Container.RenderContent(canvas)

	for y := 0; y < viewH; y++ {
		for x := 0; x < viewW; x++ {
			cell := canvas.Get(x+s.OffsetX, y+s.OffsetY)
			buf.Set(x, y, cell.Char, cell.Fg, cell.Bg)
		}
	}

	track := buf.Background.Blend(buf.Foreground, 0.2)
	if s.ShowHorizontalBar {
		bar := scrollBar(contentW, s.OffsetX, viewW, horizontalBarGlyphs)
		for x, ch := range bar {
			buf.Set(x, buf.Height()-1, ch, buf.Foreground, track)
		}
	}
	if s.ShowVerticalBar {
		bar := scrollBar(contentH, s.OffsetY, viewH, verticalBarGlyphs)
		for y, ch := range bar {
			buf.Set(buf.Width()-1, y, ch, buf.Foreground, track)
		}
	}
}

func (s *Scroll) HandleInput(ev KeyEvent) bool {
	switch ev.Key {
	case KeyDown:
		s.OffsetY += s.VerticalSpeed
	case KeyUp:
		s.OffsetY = max(s.OffsetY-s.VerticalSpeed, 0)
	case KeyRight:
		s.OffsetX += s.HorizontalSpeed
	case KeyLeft:
		s.OffsetX = max(s.OffsetX-s.HorizontalSpeed, 0)
	default:
		return false
	}
	Invalidate(s)
	return true
}

// scrollBar draws a bar of size cells for a viewport of size cells at
// offset into content cells. Each cell is one unit; partially covered
// cells at the ends of the thumb get edge glyphs.
func scrollBar(content, offset, size int, g scrollBarGlyphs) []rune {
	bar := make([]rune, size)
	if size == 0 || content == 0 {
		return bar
	}

	ratio := float64(size) / float64(content)
	thumb := float64(size) * ratio
	start := float64(offset) * ratio
	center := start + thumb/2
	half := thumb / 2

	for i := range bar {
		mid := float64(i) + 0.5
		dist := math.Abs(mid - center)
		toEdge := half - dist

		edge := g.endEdge
		if mid < center {
			edge = g.startEdge
		}

		switch {
		case dist < 0.5:
			switch {
			case thumb >= 0.5:
				bar[i] = g.fill
			case dist <= 0.25:
				bar[i] = g.centerLine
			default:
				bar[i] = edge
			}
		case toEdge >= 0:
			bar[i] = g.fill
		case toEdge > -0.5:
			bar[i] = edge
		default:
			bar[i] = ' '
		}
	}
	return bar
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
