package cellui

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// InputField is an editable single line label. Typed characters are
// appended, Backspace removes the last one and Enter runs OnEnter.
type InputField struct {
	Label

	// Filter, if set, decides which typed characters are accepted.
	Filter func(r rune) bool
	// MaxLength limits the number of characters (0 = unlimited).
	MaxLength int
	// OnInput runs after every change of the text.
	OnInput func()
	// OnEnter runs when Enter is pressed. By default the focus moves on to
	// the next component.
	OnEnter func()
}

// NewInputField creates an input field holding text.
func NewInputField(text string) *InputField {
	f := &InputField{}
	f.initInputField(f, text)
	return f
}

// initInputField sets up the field; self is the outermost component
// embedding it, skipped when Enter moves the focus on.
func (f *InputField) initInputField(self Component, text string) {
	f.initLabel(text)
	f.Focusable = true
	f.Border = Spacing{Left: 1, Right: 1}
	f.Background = DarkGray
	f.Glyphs.Left = '['
	f.Glyphs.Right = ']'
	f.OnEnter = func() {
		if root := RootOf(self); root != nil {
			root.FocusNext(self)
		}
	}
}

func (f *InputField) HandleInput(ev KeyEvent) bool {
	switch ev.Key {
	case KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(f.Text); size > 0 {
			f.Text = f.Text[:len(f.Text)-size]
		}
		f.changed()
		return true
	case KeyEnter:
		if f.OnEnter != nil {
			f.OnEnter()
		}
		return true
	case KeyRune:
		if !acceptsRune(ev.Rune) || (f.Filter != nil && !f.Filter(ev.Rune)) {
			return false
		}
		if f.MaxLength > 0 && utf8.RuneCountInString(f.Text) >= f.MaxLength {
			return true
		}
		f.Text += string(ev.Rune)
		f.changed()
		return true
	}
	return false
}

func (f *InputField) changed() {
	if f.OnInput != nil {
		f.OnInput()
	}
}

func acceptsRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' '
}

// ErrNotDecimal is returned by DecimalInputField.Decimal for text that is
// not a number.
var ErrNotDecimal = errors.New("not a decimal number")

// DecimalInputField accepts digits and a single decimal separator, either
// '.' or ','.
type DecimalInputField struct {
	InputField
}

// NewDecimalInputField creates a decimal field holding value.
func NewDecimalInputField(value float64) *DecimalInputField {
	d := &DecimalInputField{}
	d.initInputField(d, strconv.FormatFloat(value, 'f', -1, 64))
	d.Filter = func(r rune) bool {
		if unicode.IsDigit(r) {
			return true
		}
		return (r == '.' || r == ',') && !strings.ContainsAny(d.Text, ".,")
	}
	return d
}

// Decimal parses the text. An empty field is 0, and a missing digit before
// or after the separator counts as 0.
func (d *DecimalInputField) Decimal() (float64, error) {
	s := strings.ReplaceAll(d.Text, ",", ".")
	if s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNotDecimal, "%q", d.Text)
	}
	return v, nil
}
