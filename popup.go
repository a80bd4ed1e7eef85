package cellui

import (
	"sync/atomic"
	"time"
)

// PopupPollInterval is how often ShowConfirm checks whether its popup was
// closed.
const PopupPollInterval = 10 * time.Millisecond

// ConfirmLabel is the text of the confirm button of ShowConfirm.
const ConfirmLabel = "(C)onfirm"

// Popup is a transparent root drawn over the roots below it. Escape closes
// it.
type Popup struct {
	Root

	closed    atomic.Bool
	confirmed atomic.Bool
}

// NewPopup creates a popup showing content.
func NewPopup(content Component) *Popup {
	p := &Popup{}
	p.initRoot(p, content)
	p.Opaque = false
	p.OnExit = func() { p.Close(false) }
	return p
}

// Close closes the popup, recording whether it was confirmed.
func (p *Popup) Close(confirmed bool) {
	p.confirmed.Store(confirmed)
	p.closed.Store(true)
	p.Invalidate()
}

// Closed reports whether the popup was closed.
func (p *Popup) Closed() bool { return p.closed.Load() }

// Confirmed reports whether the popup was closed by confirming.
func (p *Popup) Confirmed() bool { return p.confirmed.Load() }

// NewConfirmPopup builds the centered dialog used by ShowConfirm: content in
// a bordered box above a confirm button with the hotkey C.
func NewConfirmPopup(content Component) *Popup {
	centered := MustContainer("", "[grow, center]", "[grow, center]")
	centered.Opaque = false

	dialog := MustContainer("wrap1", "[grow, fill]", "[grow, fill][]")
	dialog.Border = Uniform(1)
	dialog.Padding = Spacing{Left: 1, Right: 1}
	dialog.MustAdd(content, "")

	p := NewPopup(centered)
	confirm := NewLabelButton(ConfirmLabel, func() { p.Close(true) })
	confirm.Shortcut = RuneKey('c')
	confirm.Margin.Top = 1
	dialog.MustAdd(confirm, "")

	centered.MustAdd(dialog, "")
	return p
}

// ShowConfirm shows content in a popup on s and blocks until the user
// confirms (true) or presses Escape (false). The first focusable component
// of the popup gets the focus. It returns false as well when
// the scheduler quits first.
//
// ShowConfirm waits for the input loop, so it must not be called with the
// scheduler lock held. Input handlers run under the lock: call it from a
// new goroutine there.
func ShowConfirm(s *Scheduler, content Component) bool {
	p := NewConfirmPopup(content)
	s.Update(func() {
		s.push(&p.Root)
		p.FocusNext()
	})
	defer s.Remove(&p.Root)

	ticker := time.NewTicker(PopupPollInterval)
	defer ticker.Stop()
	for !p.Closed() {
		select {
		case <-s.Done():
			return false
		case <-ticker.C:
		}
	}
	return p.Confirmed()
}

// ShowInput asks for a line of text below label. It returns the text and
// true if confirmed, or "" and false if dismissed. The same locking rules
// as for ShowConfirm apply.
func ShowInput(s *Scheduler, label string) (string, bool) {
	box := MustContainer("", "[grow, fill]", "[][grow, fill]")
	box.Border = Uniform(1)
	box.Padding = Spacing{Left: 1, Right: 1}
	box.MustAdd(NewLabel(label), "")
	box.Wrap()
	field := NewInputField("")
	box.MustAdd(field, "")

	if !ShowConfirm(s, box) {
		return "", false
	}

	var text string
	s.Update(func() { text = field.Text })
	return text, true
}
