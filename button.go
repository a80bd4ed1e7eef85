package cellui

import (
	"github.com/germtb/cellui/constraints"
)

// Button is a focusable label that runs Action when Enter is pressed while
// it is focused, or when its hotkey is pressed anywhere in its root.
type Button struct {
	Label

	Action func()
	// Shortcut is the hotkey; the zero value means none.
	Shortcut KeyEvent

	disabled bool
}

// NewButton creates a bordered button with centered text.
func NewButton(text string, action func()) *Button {
	b := &Button{Action: action}
	b.initLabel(text)
	b.TextAlign = constraints.Center
	b.Border = Uniform(1)
	b.Padding = Spacing{Left: 1, Right: 1}
	b.Focusable = true
	b.BorderColor = DimGray
	return b
}

// NewLabelButton creates a button that looks like a label. When focused it
// is marked with '>' and '<' on either side.
func NewLabelButton(text string, action func()) *Button {
	b := NewButton(text, action)
	b.Border = Spacing{Left: 1, Right: 1}
	b.Padding = Spacing{}
	b.Glyphs.Left = '>'
	b.Glyphs.Right = '<'
	b.BorderColor = Black
	b.FocusedBackground = b.Background
	b.FocusedForeground = b.Foreground
	return b
}

// Disabled reports whether the button ignores activation.
func (b *Button) Disabled() bool { return b.disabled }

// SetDisabled enables or disables the button. A disabled button cannot be
// focused or activated.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	b.Focusable = !disabled
}

func (b *Button) Hotkey() KeyEvent { return b.Shortcut }

// Activate focuses the button, if it can be focused, and runs Action.
func (b *Button) Activate() {
	if b.disabled {
		return
	}
	if b.Focusable {
		Focus(b)
	}
	if b.Action != nil {
		b.Action()
	}
}

func (b *Button) HandleInput(ev KeyEvent) bool {
	if b.disabled || ev.Key != KeyEnter {
		return false
	}
	b.Activate()
	return true
}
