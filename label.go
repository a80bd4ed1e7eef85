package cellui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/germtb/cellui/constraints"
)

// Label displays text, one line per '\n'.
type Label struct {
	Box

	Text string
	// TextAlign places each line: Start, Center or End.
	TextAlign constraints.Alignment
	// WrapText breaks lines at spaces to fit the width the label is given.
	// A wrapping label asks for no width of its own.
	WrapText bool
	// PreferredWidth, when positive, is reported as the content width.
	PreferredWidth int

	// Width of the last render, used to wrap. Until the first render
	// nothing wraps.
	lastWidth int
}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label {
	l := &Label{}
	l.initLabel(text)
	return l
}

func (l *Label) initLabel(text string) {
	l.Box = NewBox()
	l.Text = text
	l.lastWidth = math.MaxInt
}

func (l *Label) ContentWidth() int {
	if l.PreferredWidth > 0 {
		return l.PreferredWidth
	}
	if l.WrapText {
		return 0
	}

	widest := 0
	for _, line := range strings.Split(l.Text, "\n") {
		widest = max(widest, utf8.RuneCountInString(line))
	}
	return widest
}

func (l *Label) ContentHeight() int {
	return len(l.Lines())
}

func (l *Label) RenderContent(buf *RenderBuffer) {
	if l.WrapText && l.lastWidth != buf.Width() {
		// The height depends on the width; measure again next frame.
		Invalidate(l)
	}
	l.lastWidth = buf.Width()

	for y, line := range l.Lines() {
		buf.SetAll(alignedOffset(l.TextAlign, buf.Width(), utf8.RuneCountInString(line)), y, line)
	}
}

// Lines returns the text split into display lines.
func (l *Label) Lines() []string {
	if !l.WrapText {
		return strings.Split(l.Text, "\n")
	}
	return wrapWords(l.Text, l.lastWidth)
}

// wrapWords breaks every line of text between words so that lines stay
// within width. A single word longer than width gets a line of its own.
func wrapWords(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		current := ""
		for i, word := range strings.Split(paragraph, " ") {
			switch {
			case i == 0:
				current = word
			case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > width:
				lines = append(lines, current)
				current = word
			default:
				current += " " + word
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// DynamicLabel is a label whose text is produced by a function each time it
// is measured or drawn. Changes of the produced text do not request a
// redraw by themselves.
type DynamicLabel struct {
	Label
	TextFunc func() string
}

// NewDynamicLabel creates a label showing the result of text.
func NewDynamicLabel(text func() string) *DynamicLabel {
	d := &DynamicLabel{TextFunc: text}
	d.initLabel(text())
	return d
}

func (d *DynamicLabel) refresh() {
	if d.TextFunc != nil {
		d.Text = d.TextFunc()
	}
}

func (d *DynamicLabel) ContentWidth() int {
	d.refresh()
	return d.Label.ContentWidth()
}

func (d *DynamicLabel) ContentHeight() int {
	d.refresh()
	return d.Label.ContentHeight()
}

func (d *DynamicLabel) RenderContent(buf *RenderBuffer) {
	d.refresh()
	d.Label.RenderContent(buf)
}
