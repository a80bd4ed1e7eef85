package backend

import (
	"io"
	"os"
	"strings"

	"github.com/germtb/cellui"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Fallback size when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSIOptions configures an ANSI backend. Zero values use stdin, stdout and
// the size reported by the terminal.
type ANSIOptions struct {
	In  io.Reader
	Out io.Writer
	// Width and Height fix the viewport instead of querying the terminal.
	Width, Height int
}

// ANSI puts the input terminal in raw mode and redraws the whole screen
// with escape sequences on every frame.
type ANSI struct {
	in  io.Reader
	out io.Writer

	inFd, outFd   int
	width, height int
	state         *term.State

	readBuf []byte
	pending []cellui.KeyEvent

	// Size of the last frame drawn; zero before the first.
	drawnW, drawnH int
}

// NewANSI creates an ANSI backend.
func NewANSI(opts ANSIOptions) *ANSI {
	a := &ANSI{
		in:      opts.In,
		out:     opts.Out,
		inFd:    -1,
		outFd:   -1,
		width:   opts.Width,
		height:  opts.Height,
		readBuf: make([]byte, 256),
	}
	if a.in == nil {
		a.in = os.Stdin
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if f, ok := a.in.(*os.File); ok {
		a.inFd = int(f.Fd())
	}
	if f, ok := a.out.(*os.File); ok {
		a.outFd = int(f.Fd())
	}
	return a
}

// Init switches the input to raw mode when it is a terminal and hides the
// cursor.
func (a *ANSI) Init() error {
	if a.inFd >= 0 && term.IsTerminal(a.inFd) {
		state, err := term.MakeRaw(a.inFd)
		if err != nil {
			return errors.Wrap(err, "enable raw mode")
		}
		a.state = state
	}
	_, err := io.WriteString(a.out, cellui.HideCursor()+cellui.ClearScreen())
	return errors.Wrap(err, "write")
}

// Fini clears the screen, shows the cursor and restores the terminal mode.
func (a *ANSI) Fini() {
	io.WriteString(a.out, cellui.Reset()+cellui.ClearScreen()+cellui.ShowCursor())
	if a.state != nil {
		term.Restore(a.inFd, a.state)
		a.state = nil
	}
}

// Size returns the viewport, one column and one row smaller than the
// terminal so the last line never scrolls.
func (a *ANSI) Size() (int, int) {
	if a.width > 0 && a.height > 0 {
		return a.width, a.height
	}
	if a.outFd >= 0 {
		if w, h, err := term.GetSize(a.outFd); err == nil {
			return max(w-1, 0), max(h-1, 0)
		}
	}
	return DefaultWidth - 1, DefaultHeight - 1
}

// ReadKey returns the next key press. A single read may decode into
// several keys; the rest are returned by the following calls.
func (a *ANSI) ReadKey() (cellui.KeyEvent, error) {
	for len(a.pending) == 0 {
		n, err := a.in.Read(a.readBuf)
		if n > 0 {
			a.pending = cellui.ParseKeys(a.readBuf[:n])
		}
		if err != nil && len(a.pending) == 0 {
			if errors.Is(err, io.EOF) {
				return cellui.KeyEvent{}, io.EOF
			}
			return cellui.KeyEvent{}, errors.Wrap(err, "read input")
		}
	}
	ev := a.pending[0]
	a.pending = a.pending[1:]
	return ev, nil
}

// Draw writes the whole frame, starting from the top left corner. The
// screen is cleared first when the frame size differs from the previous
// one, so a shrunk frame leaves nothing behind. Raw mode disables the
// newline translation, so rows end in CRLF.
func (a *ANSI) Draw(buf *cellui.RenderBuffer) error {
	var sb strings.Builder
	if buf.Width() != a.drawnW || buf.Height() != a.drawnH {
		sb.WriteString(cellui.ClearScreen())
		a.drawnW, a.drawnH = buf.Width(), buf.Height()
	}
	sb.WriteString(cellui.MoveCursor(0, 0))
	sb.WriteString(cellui.ColorPrefix(cellui.EmptyCell.Fg, true))
	sb.WriteString(cellui.ColorPrefix(cellui.EmptyCell.Bg, false))
	sb.WriteString(strings.ReplaceAll(buf.Serialize(), "\n", "\r\n"))
	sb.WriteString(cellui.Reset())
	_, err := io.WriteString(a.out, sb.String())
	return errors.Wrap(err, "write frame")
}
