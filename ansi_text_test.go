package cellui

import (
	"reflect"
	"testing"

	"github.com/germtb/gox"
)

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"\x1b[32mhello\x1b[0m", "hello"},
		{"\x1b[1;31mERROR\x1b[0m: something", "ERROR: something"},
		{"\x1b[38;5;196mred\x1b[0m", "red"},
		{"\x1b[38;2;255;0;0mrgb\x1b[0m", "rgb"},
		{"\x1b[2Kcleared", "cleared"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripAnsi(tt.input); got != tt.expected {
			t.Errorf("StripAnsi(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestContainsAnsi(t *testing.T) {
	if ContainsAnsi("hello") {
		t.Error("plain text should not contain ANSI")
	}
	if !ContainsAnsi("\x1b[32mhello\x1b[0m") {
		t.Error("colored text should contain ANSI")
	}
}

func TestParseAnsiLine(t *testing.T) {
	fg, bg := White, Black
	tests := []struct {
		name string
		line string
		want []AnsiSegment
	}{
		{"plain", "hello", []AnsiSegment{{"hello", fg, bg}}},
		{"green then reset", "\x1b[32mhello\x1b[0m world", []AnsiSegment{
			{"hello", Green, bg}, {" world", fg, bg},
		}},
		{"bold is ignored", "\x1b[1;31mtext", []AnsiSegment{{"text", Red, bg}}},
		{"background and default", "\x1b[44ma\x1b[49mb", []AnsiSegment{
			{"a", fg, Blue}, {"b", fg, bg},
		}},
		{"bright", "\x1b[91ma\x1b[103mb", []AnsiSegment{
			{"a", AnsiColors[9], bg}, {"b", AnsiColors[9], AnsiColors[11]},
		}},
		{"256 colors", "\x1b[38;5;196ma\x1b[38;5;244mb\x1b[38;5;4mc", []AnsiSegment{
			{"a", RGB(255, 0, 0), bg}, {"b", RGB(128, 128, 128), bg}, {"c", Blue, bg},
		}},
		{"truecolor background", "\x1b[48;2;1;2;3mx\x1b[mz", []AnsiSegment{
			{"x", fg, RGB(1, 2, 3)}, {"z", fg, bg},
		}},
		{"non SGR sequence dropped", "a\x1b[2Kb", []AnsiSegment{{"a", fg, bg}, {"b", fg, bg}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAnsiLine(tt.line, fg, bg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAnsiLine(%q) =\n%+v\nwant\n%+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestAnsiLabel(t *testing.T) {
	l := NewAnsiLabel("\x1b[31merr\x1b[0m ok\n\x1b[42mhi")
	if l.ContentWidth() != 6 || l.ContentHeight() != 2 {
		t.Fatalf("size = %dx%d, want 6x2", l.ContentWidth(), l.ContentHeight())
	}

	buf := NewRenderBuffer(6, 2)
	Render(l, buf)
	if got := buf.String(); got != "err ok\nhi    " {
		t.Errorf("got %q", got)
	}
	if buf.ForegroundAt(0, 0) != Red || buf.ForegroundAt(4, 0) != l.Foreground {
		t.Error("foreground should follow the codes and reset to the label color")
	}
	if buf.BackgroundAt(0, 1) != Green || buf.BackgroundAt(3, 1) != l.Background {
		t.Error("background should cover the colored text only")
	}
}

func TestAnsiElement(t *testing.T) {
	c := MustBuild(gox.Element("ansi", nil, gox.Text("\x1b[32mhi\x1b[0m")))
	l, ok := c.(*AnsiLabel)
	if !ok {
		t.Fatalf("Build returned %T", c)
	}
	if Width(l) != 2 || Height(l) != 1 {
		t.Errorf("size = %dx%d, want 2x1", Width(l), Height(l))
	}
}
