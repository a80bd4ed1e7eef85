package cellui

import (
	"github.com/germtb/cellui/constraints"
)

// Activatable is implemented by components that can be triggered by a
// hotkey as well as by their own input handling.
type Activatable interface {
	Activate()
	Hotkey() KeyEvent
}

// QuitPrompt is the question shown when Escape is pressed on a root without
// an OnExit handler.
const QuitPrompt = "Are you sure you want to quit?"

// Root is the top container of a component tree. It owns the focus cursor
// and routes key presses: Tab and Shift+Tab move the focus, Escape exits,
// anything else goes to the focused component and then to hotkeys.
type Root struct {
	Container

	focused Component
	sched   *Scheduler

	// OnExit replaces the default Escape behavior of asking whether to
	// quit the scheduler.
	OnExit func()
}

// NewRoot creates a root stretching content over the whole screen.
func NewRoot(content Component) *Root {
	r := &Root{}
	r.initRoot(r, content)
	return r
}

func (r *Root) initRoot(self Component, content Component) {
	r.init(self, constraints.Container{},
		constraints.MustParseColumns("[grow, fill]"),
		constraints.MustParseRows("[grow, fill]"))
	r.MustAdd(content, "")
}

func (r *Root) rootContainer() *Root { return r }

// Scheduler returns the scheduler the root was pushed on, or nil.
func (r *Root) Scheduler() *Scheduler { return r.sched }

// Focused returns the component holding the focus, or nil.
func (r *Root) Focused() Component { return r.focused }

// Focus moves the focus to c, which may be nil. The previous holder gets
// OnFocusLost and c gets OnFocusGained. c is not checked for being
// focusable or even part of the tree.
func (r *Root) Focus(c Component) {
	if r.focused != nil {
		if lost := r.focused.Base().OnFocusLost; lost != nil {
			lost()
		}
	}
	r.focused = c
	if c != nil {
		if gained := c.Base().OnFocusGained; gained != nil {
			gained()
		}
	}
	r.Invalidate()
}

// Focusables returns every focusable component in tab order.
func (r *Root) Focusables() []Component {
	return Descendants(r.self, func(c Component) bool {
		return c.Base().Focusable
	})
}

// FocusNext moves the focus to the next focusable component after the
// current one, wrapping around. Components in blocked, and components inside
// a blocked container, are skipped. The current holder is never chosen
// again; if nothing else qualifies the focus is cleared.
func (r *Root) FocusNext(blocked ...Component) {
	candidates := r.Focusables()
	current := indexOf(candidates, r.focused)

	for step := 1; step <= len(candidates); step++ {
		i := (current + step) % len(candidates)
		if current < 0 {
			i = step - 1
		}
		if i == current {
			break
		}
		if !isBlocked(candidates[i], blocked) {
			r.Focus(candidates[i])
			return
		}
	}

	r.Focus(nil)
}

// FocusPrev moves the focus to the previous focusable component, wrapping
// around. With nothing focused it picks the last one.
func (r *Root) FocusPrev() {
	candidates := r.Focusables()
	if len(candidates) == 0 {
		r.Focus(nil)
		return
	}

	current := indexOf(candidates, r.focused)
	if current < 0 {
		r.Focus(candidates[len(candidates)-1])
		return
	}
	r.Focus(candidates[(current-1+len(candidates))%len(candidates)])
}

func indexOf(list []Component, c Component) int {
	if c == nil {
		return -1
	}
	for i, item := range list {
		if item == c {
			return i
		}
	}
	return -1
}

func isBlocked(c Component, blocked []Component) bool {
	for _, b := range blocked {
		if c == b || Contains(b, c) {
			return true
		}
	}
	return false
}

// HandleInput routes ev and always reports it as consumed.
func (r *Root) HandleInput(ev KeyEvent) bool {
	switch ev.Key {
	case KeyTab:
		r.FocusNext()
		return true
	case KeyBacktab:
		r.FocusPrev()
		return true
	case KeyEscape:
		r.Exit()
		return true
	}

	if r.focused != nil && r.focused.HandleInput(ev) {
		return true
	}

	for _, c := range Descendants(r.self, nil) {
		if a, ok := c.(Activatable); ok && a.Hotkey().Matches(ev) {
			a.Activate()
			break
		}
	}
	return true
}

// Exit runs OnExit. Without one, a root on a scheduler asks for
// confirmation in a popup and quits the scheduler if confirmed.
func (r *Root) Exit() {
	if r.OnExit != nil {
		r.OnExit()
		return
	}

	s := r.sched
	if s == nil {
		return
	}
	// Exit runs under the scheduler lock; the popup needs the loops free.
	go func() {
		if ShowConfirm(s, NewLabel(QuitPrompt)) {
			s.Quit()
		}
	}()
}

// Invalidate requests a redraw from the scheduler the root is on.
func (r *Root) Invalidate() {
	if r.sched != nil {
		r.sched.Invalidate()
	}
}
