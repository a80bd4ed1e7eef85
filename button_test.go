package cellui

import (
	"testing"
)

func TestButton_EnterActivates(t *testing.T) {
	clicks := 0
	b := NewButton("OK", func() { clicks++ })
	root := NewRoot(b)
	root.Focus(b)

	if !b.HandleInput(KeyEvent{Key: KeyEnter}) {
		t.Error("Enter should be consumed")
	}
	if b.HandleInput(RuneKey('x')) {
		t.Error("other keys are not consumed")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButton_ActivateFocuses(t *testing.T) {
	c := MustContainer("", "", "")
	other := newFocusable(1, 1)
	b := NewButton("OK", nil)
	c.MustAdd(other, "")
	c.MustAdd(b, "")
	root := NewRoot(c)
	root.Focus(other)

	b.Activate() // nil Action is fine
	if root.Focused() != b {
		t.Error("Activate should focus the button")
	}
}

func TestButton_Disabled(t *testing.T) {
	clicks := 0
	b := NewButton("OK", func() { clicks++ })
	b.Shortcut = RuneKey('o')
	root := NewRoot(b)

	b.SetDisabled(true)
	if !b.Disabled() || b.Focusable {
		t.Error("a disabled button cannot be focused")
	}
	root.HandleInput(RuneKey('o'))
	b.HandleInput(KeyEvent{Key: KeyEnter})
	if clicks != 0 {
		t.Error("a disabled button does not run its action")
	}

	b.SetDisabled(false)
	root.HandleInput(RuneKey('o'))
	if clicks != 1 || !b.Focusable {
		t.Error("re-enabled button should work again")
	}
}

func TestButton_Render(t *testing.T) {
	b := NewButton("OK", nil)
	if Width(b) != 6 || Height(b) != 3 {
		t.Fatalf("size = %dx%d, want 6x3", Width(b), Height(b))
	}

	buf := NewRenderBuffer(6, 3)
	Render(b, buf)
	if got := buf.String(); got != "+────+\n│ OK │\n+────+" {
		t.Errorf("got\n%s", got)
	}
}

func TestLabelButton_Render(t *testing.T) {
	b := NewLabelButton("Go", nil)
	if Width(b) != 4 || Height(b) != 1 {
		t.Fatalf("size = %dx%d, want 4x1", Width(b), Height(b))
	}

	buf := NewRenderBuffer(4, 1)
	Render(b, buf)
	if got := buf.String(); got != ">Go<" {
		t.Errorf("got %q", got)
	}
	if buf.ForegroundAt(0, 0) != Black {
		t.Error("the markers are invisible while unfocused")
	}

	NewRoot(b).Focus(b)
	Render(b, buf)
	if buf.ForegroundAt(0, 0) != b.FocusedBorderColor || buf.BackgroundAt(1, 0) != b.Background {
		t.Error("a focused label button shows its markers and keeps its background")
	}
}
