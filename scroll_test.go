package cellui

import (
	"strconv"
	"strings"
	"testing"
)

// newDigitScroll returns a 5x3 scroll over ten rows of six digits each,
// row i made of the digit i.
func newDigitScroll(t *testing.T) *Scroll {
	t.Helper()
	s, err := NewScroll("wrap1", "", "")
	if err != nil {
		t.Fatal(err)
	}
	s.ViewWidth, s.ViewHeight = 5, 3
	for i := 0; i < 10; i++ {
		s.MustAdd(NewLabel(strings.Repeat(strconv.Itoa(i), 6)), "")
	}
	return s
}

func renderScroll(s *Scroll) *RenderBuffer {
	buf := NewRenderBuffer(Width(s), Height(s))
	Render(s, buf)
	return buf
}

// row returns the visible content of row y, inside the border and left of
// the vertical bar.
func row(buf *RenderBuffer, y int) string {
	var sb strings.Builder
	for x := 1; x < buf.Width()-2; x++ {
		sb.WriteRune(buf.Char(x, y+1))
	}
	return sb.String()
}

func TestScroll_Size(t *testing.T) {
	s := newDigitScroll(t)
	if Width(s) != 7 || Height(s) != 5 {
		t.Errorf("size = %dx%d, want 7x5", Width(s), Height(s))
	}
	if !s.Focusable {
		t.Error("scrolls are focusable")
	}
}

func TestScroll_Viewport(t *testing.T) {
	s := newDigitScroll(t)

	buf := renderScroll(s)
	if row(buf, 0) != "0000" || row(buf, 1) != "1111" {
		t.Errorf("rows = %q %q", row(buf, 0), row(buf, 1))
	}

	for i := 0; i < 3; i++ {
		if !s.HandleInput(KeyEvent{Key: KeyDown}) {
			t.Fatal("Down should be consumed")
		}
	}
	buf = renderScroll(s)
	if row(buf, 0) != "3333" || row(buf, 1) != "4444" {
		t.Errorf("after scrolling rows = %q %q", row(buf, 0), row(buf, 1))
	}
}

func TestScroll_OffsetsClamped(t *testing.T) {
	s := newDigitScroll(t)
	s.OffsetX, s.OffsetY = 100, 100
	buf := renderScroll(s)

	// 10 rows in a 2 row viewport, 6 columns in a 4 column viewport
	if s.OffsetY != 8 || s.OffsetX != 2 {
		t.Errorf("offsets = %d,%d, want 2,8", s.OffsetX, s.OffsetY)
	}
	if row(buf, 1) != "9999" {
		t.Errorf("last row = %q", row(buf, 1))
	}

	s.HandleInput(KeyEvent{Key: KeyLeft})
	s.HandleInput(KeyEvent{Key: KeyLeft})
	s.HandleInput(KeyEvent{Key: KeyLeft})
	s.HandleInput(KeyEvent{Key: KeyUp})
	if s.OffsetX != 0 || s.OffsetY != 7 {
		t.Errorf("offsets = %d,%d, want 0,7", s.OffsetX, s.OffsetY)
	}
	if s.HandleInput(RuneKey('x')) {
		t.Error("other keys are not consumed")
	}
}

func TestScroll_ScrollbarsDrawn(t *testing.T) {
	s := newDigitScroll(t)
	buf := renderScroll(s)

	// Vertical bar in the last content column, horizontal bar in the last
	// content row.
	// Two of ten rows are visible, so the vertical thumb is a thin edge.
	if got := buf.Char(5, 1); got != verticalBarGlyphs.endEdge {
		t.Errorf("vertical bar top = %q", got)
	}
	if got := buf.Char(1, 3); got != horizontalBarGlyphs.fill {
		t.Errorf("horizontal bar start = %q", got)
	}
	if buf.BackgroundAt(5, 1) == s.Background {
		t.Error("the track should be blended from the background")
	}

	s.ShowVerticalBar, s.ShowHorizontalBar = false, false
	buf = renderScroll(s)
	if buf.Char(5, 1) != '0' || buf.Char(1, 3) != '2' {
		t.Error("without bars the viewport takes the whole content area")
	}
}

func TestScrollBar(t *testing.T) {
	tests := []struct {
		name                  string
		content, offset, size int
		want                  string
	}{
		{"top half", 10, 0, 5, "███  "},
		{"bottom", 10, 5, 5, "  ███"},
		{"content fits", 4, 0, 4, "████"},
		{"empty", 0, 0, 3, "\x00\x00\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(scrollBar(tt.content, tt.offset, tt.size, verticalBarGlyphs))
			if got != tt.want {
				t.Errorf("scrollBar = %q, want %q", got, tt.want)
			}
		})
	}
}
