package cellui

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// PrintOptions configures dimensions for Fprint.
type PrintOptions struct {
	Width  int // 0 = the component's width, capped to the terminal
	Height int // 0 = the component's height
}

// Print renders a component tree once to stdout with ANSI colors, without
// taking over the terminal.
func Print(c Component) error {
	return Fprint(os.Stdout, c, PrintOptions{})
}

// Sprint renders a component tree to a string with ANSI colors.
func Sprint(c Component, opts PrintOptions) string {
	var sb strings.Builder
	_ = Fprint(&sb, c, opts)
	return sb.String()
}

// Fprint renders a component tree to w. Trailing rows left blank are
// dropped.
func Fprint(w io.Writer, c Component, opts PrintOptions) error {
	width := opts.Width
	if width <= 0 {
		width = Width(c)
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
			width = min(width, tw)
		}
	}
	height := Height(c)
	if opts.Height > 0 {
		height = min(height, opts.Height)
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	buf := NewRenderBuffer(width, height)
	Render(c, buf)

	rows := lastUsedRow(buf) + 1
	if rows == 0 {
		return nil
	}
	if rows < height {
		trimmed := NewRenderBuffer(width, rows)
		for y := 0; y < rows; y++ {
			for x := 0; x < width; x++ {
				cell := buf.Get(x, y)
				trimmed.Set(x, y, cell.Char, cell.Fg, cell.Bg)
			}
		}
		buf = trimmed
	}

	var sb strings.Builder
	sb.WriteString(ColorPrefix(EmptyCell.Fg, true))
	sb.WriteString(ColorPrefix(EmptyCell.Bg, false))
	sb.WriteString(buf.Serialize())
	sb.WriteString(Reset())
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "print")
}

// lastUsedRow returns the last row holding anything but empty cells, or -1.
func lastUsedRow(buf *RenderBuffer) int {
	for y := buf.Height() - 1; y >= 0; y-- {
		for x := 0; x < buf.Width(); x++ {
			if buf.Get(x, y) != EmptyCell {
				return y
			}
		}
	}
	return -1
}
