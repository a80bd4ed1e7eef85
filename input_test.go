package cellui

import (
	"errors"
	"testing"
)

func typeText(c Component, text string) {
	for _, r := range text {
		c.HandleInput(RuneKey(r))
	}
}

func TestInputField_Editing(t *testing.T) {
	f := NewInputField("ab")
	changes := 0
	f.OnInput = func() { changes++ }

	typeText(f, "c d")
	if f.Text != "abc d" {
		t.Errorf("Text = %q, want %q", f.Text, "abc d")
	}
	f.HandleInput(KeyEvent{Key: KeyBackspace})
	f.HandleInput(KeyEvent{Key: KeyBackspace})
	if f.Text != "abc" {
		t.Errorf("Text = %q after two backspaces", f.Text)
	}
	if changes != 5 {
		t.Errorf("OnInput ran %d times, want 5", changes)
	}

	// Backspace on empty text is harmless.
	empty := NewInputField("")
	empty.HandleInput(KeyEvent{Key: KeyBackspace})
	if empty.Text != "" {
		t.Error("backspace on an empty field")
	}
}

func TestInputField_BackspaceRemovesWholeRune(t *testing.T) {
	f := NewInputField("aé")
	f.HandleInput(KeyEvent{Key: KeyBackspace})
	if f.Text != "a" {
		t.Errorf("Text = %q, want %q", f.Text, "a")
	}
}

func TestInputField_RejectsControlAndFiltered(t *testing.T) {
	f := NewInputField("")
	f.Filter = func(r rune) bool { return r != 'x' }

	if f.HandleInput(RuneKey('x')) {
		t.Error("filtered rune should not be consumed")
	}
	if f.HandleInput(RuneKey('\x07')) {
		t.Error("control rune should not be consumed")
	}
	if f.HandleInput(KeyEvent{Key: KeyUp}) {
		t.Error("arrows are not consumed")
	}
	if f.Text != "" {
		t.Errorf("Text = %q, want empty", f.Text)
	}
}

func TestInputField_MaxLength(t *testing.T) {
	f := NewInputField("")
	f.MaxLength = 3
	typeText(f, "abcdef")
	if f.Text != "abc" {
		t.Errorf("Text = %q, want %q", f.Text, "abc")
	}
}

func TestInputField_EnterMovesFocus(t *testing.T) {
	c := MustContainer("", "", "")
	first := NewInputField("")
	second := NewDecimalInputField(0)
	c.MustAdd(first, "")
	c.MustAdd(second, "")
	root := NewRoot(c)

	root.Focus(first)
	root.HandleInput(KeyEvent{Key: KeyEnter})
	if root.Focused() != second {
		t.Errorf("Enter should move the focus to the next field, got %v", root.Focused())
	}

	// The decimal field skips itself, which leaves only the first field.
	root.HandleInput(KeyEvent{Key: KeyEnter})
	if root.Focused() != first {
		t.Errorf("Enter on the last field should wrap, got %v", root.Focused())
	}

	called := false
	first.OnEnter = func() { called = true }
	root.HandleInput(KeyEvent{Key: KeyEnter})
	if !called || root.Focused() != first {
		t.Error("a custom OnEnter replaces the focus move")
	}
}

func TestInputField_Render(t *testing.T) {
	f := NewInputField("hi")
	f.PreferredWidth = 4
	buf := NewRenderBuffer(Width(f), 1)
	Render(f, buf)
	if got := buf.String(); got != "[hi  ]" {
		t.Errorf("got %q", got)
	}
	if buf.BackgroundAt(1, 0) != DarkGray {
		t.Error("input background should be DarkGray")
	}
}

func TestDecimalInputField(t *testing.T) {
	tests := []struct {
		typed string
		text  string
		want  float64
	}{
		{"12.5", "12.5", 12.5},
		{"3,25", "3,25", 3.25},
		{"1.2.3", "1.23", 1.23},
		{"1,2.3", "1,23", 1.23},
		{"a1b2", "12", 12},
		{".5", ".5", 0.5},
		{"7.", "7.", 7},
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			d := NewDecimalInputField(0)
			d.Text = ""
			typeText(d, tt.typed)
			if d.Text != tt.text {
				t.Errorf("Text = %q, want %q", d.Text, tt.text)
			}
			got, err := d.Decimal()
			if err != nil || got != tt.want {
				t.Errorf("Decimal() = %v, %v; want %v", got, err, tt.want)
			}
		})
	}
}

func TestDecimalInputField_Initial(t *testing.T) {
	if d := NewDecimalInputField(2.5); d.Text != "2.5" {
		t.Errorf("Text = %q, want 2.5", d.Text)
	}

	d := NewDecimalInputField(0)
	d.Text = "1-2"
	if _, err := d.Decimal(); !errors.Is(err, ErrNotDecimal) {
		t.Errorf("Decimal() of %q = %v, want ErrNotDecimal", d.Text, err)
	}
}
