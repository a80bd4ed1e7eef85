package cellui

import (
	"strconv"
)

// DefaultLogLines is the height of a LogPanel without a configured height.
const DefaultLogLines = 8

var logLevelColors = map[LogLevel]Color{
	LogLevelDebug: DimGray,
	LogLevelInfo:  White,
	LogLevelWarn:  Yellow,
	LogLevelError: Red,
}

// LogPanel shows the newest messages of a LogCapture under a header line.
type LogPanel struct {
	Box

	Logs *LogCapture
	// Lines is the number of message lines shown.
	Lines int
}

// NewLogPanel creates a bordered panel showing lines messages of logs.
func NewLogPanel(logs *LogCapture, lines int) *LogPanel {
	if lines <= 0 {
		lines = DefaultLogLines
	}
	p := &LogPanel{Box: NewBox(), Logs: logs, Lines: lines}
	p.Border.Top = 1
	p.Glyphs = BorderSets["single"]
	p.BorderColor = Cyan
	return p
}

func (p *LogPanel) ContentWidth() int { return 0 }

func (p *LogPanel) ContentHeight() int { return p.Lines + 1 }

func (p *LogPanel) RenderContent(buf *RenderBuffer) {
	header := " Console (" + strconv.Itoa(p.Logs.Len()) + ") - Ctrl+L close, Ctrl+K clear"
	buf.Foreground = Cyan
	buf.SetAll(0, 0, header)

	for i, msg := range p.Logs.LastMessages(p.Lines) {
		fg, ok := logLevelColors[msg.Level]
		if !ok {
			fg = White
		}
		buf.Foreground = fg
		buf.SetAll(1, i+1, FormatMessage(msg))
	}
}

// newLogRoot builds the overlay root showing a LogPanel along the bottom of
// the screen. Everything above the panel stays visible.
func newLogRoot(logs *LogCapture, lines int) *Root {
	overlay := MustContainer("", "[grow, fill]", "[grow][]")
	overlay.Opaque = false

	spacer := MustContainer("", "", "")
	spacer.Opaque = false
	overlay.MustAdd(spacer, "")
	overlay.Wrap()
	overlay.MustAdd(NewLogPanel(logs, lines), "")

	root := NewRoot(overlay)
	root.Opaque = false
	return root
}
