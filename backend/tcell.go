// Package backend provides cellui.Terminal implementations: Tcell on top of
// a tcell screen, and ANSI writing escape sequences to a raw mode terminal.
package backend

import (
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/germtb/cellui"
	"github.com/pkg/errors"
)

// Tcell draws on a tcell.Screen.
type Tcell struct {
	screen tcell.Screen
}

// NewTcell creates a Tcell backend on the default screen of the process.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create tcell screen")
	}
	return NewTcellScreen(screen), nil
}

// NewTcellScreen wraps screen, which may be a simulation screen.
func NewTcellScreen(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen}
}

// Screen returns the wrapped screen.
func (t *Tcell) Screen() tcell.Screen {
	return t.screen
}

func (t *Tcell) Init() error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init tcell screen")
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *Tcell) Fini() {
	t.screen.Fini()
}

func (t *Tcell) Size() (int, int) {
	return t.screen.Size()
}

// ReadKey blocks until the next key press. Resizes resync the screen and
// are otherwise swallowed; the scheduler notices the new size on its next
// tick. Returns io.EOF once the screen is finalized.
func (t *Tcell) ReadKey() (cellui.KeyEvent, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return cellui.KeyEvent{}, io.EOF
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if key, ok := MapKey(ev); ok {
				return key, nil
			}
		}
	}
}

func (t *Tcell) Draw(buf *cellui.RenderBuffer) error {
	w, h := t.screen.Size()
	for y := 0; y < min(h, buf.Height()); y++ {
		for x := 0; x < min(w, buf.Width()); x++ {
			c := buf.Get(x, y)
			t.screen.SetContent(x, y, cellui.DisplayRune(c.Char), nil, Style(c))
		}
	}
	t.screen.Show()
	return nil
}

// Style converts the colors of a cell.
func Style(c cellui.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c.Fg)).Background(rgb(c.Bg))
}

func rgb(c cellui.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var tcellKeys = map[tcell.Key]cellui.Key{
	tcell.KeyEnter:      cellui.KeyEnter,
	tcell.KeyTab:        cellui.KeyTab,
	tcell.KeyBacktab:    cellui.KeyBacktab,
	tcell.KeyBackspace:  cellui.KeyBackspace,
	tcell.KeyBackspace2: cellui.KeyBackspace,
	tcell.KeyEscape:     cellui.KeyEscape,
	tcell.KeyUp:         cellui.KeyUp,
	tcell.KeyDown:       cellui.KeyDown,
	tcell.KeyLeft:       cellui.KeyLeft,
	tcell.KeyRight:      cellui.KeyRight,
	tcell.KeyHome:       cellui.KeyHome,
	tcell.KeyEnd:        cellui.KeyEnd,
	tcell.KeyPgUp:       cellui.KeyPgUp,
	tcell.KeyPgDn:       cellui.KeyPgDn,
	tcell.KeyDelete:     cellui.KeyDelete,
	tcell.KeyInsert:     cellui.KeyInsert,
	tcell.KeyF1:         cellui.KeyF1,
	tcell.KeyF2:         cellui.KeyF2,
	tcell.KeyF3:         cellui.KeyF3,
	tcell.KeyF4:         cellui.KeyF4,
	tcell.KeyF5:         cellui.KeyF5,
	tcell.KeyF6:         cellui.KeyF6,
	tcell.KeyF7:         cellui.KeyF7,
	tcell.KeyF8:         cellui.KeyF8,
	tcell.KeyF9:         cellui.KeyF9,
	tcell.KeyF10:        cellui.KeyF10,
	tcell.KeyF11:        cellui.KeyF11,
	tcell.KeyF12:        cellui.KeyF12,
}

// MapKey converts a tcell key event. ok is false for keys cellui has no
// name for.
func MapKey(ev *tcell.EventKey) (key cellui.KeyEvent, ok bool) {
	k, r := ev.Key(), ev.Rune()
	switch {
	case ev.Modifiers()&tcell.ModCtrl != 0 && isLetter(r):
		// control characters read from a terminal keep their letter
		return cellui.CtrlKey(r), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return cellui.CtrlKey('a' + rune(k-tcell.KeyCtrlA)), true
	case k == tcell.KeyRune:
		return cellui.RuneKey(r), true
	}
	if named, found := tcellKeys[k]; found {
		return cellui.KeyEvent{Key: named}, true
	}
	return cellui.KeyEvent{}, false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
