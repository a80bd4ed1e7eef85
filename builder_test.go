package cellui

import (
	"errors"
	"testing"

	"github.com/germtb/cellui/constraints"
	"github.com/germtb/gox"
)

func el(typ any, props gox.Props, children ...gox.VNode) gox.VNode {
	return gox.Element(typ, props, children...)
}

func TestBuild_ContainerTree(t *testing.T) {
	tree := el("container", gox.Props{"columns": "[][grow]"},
		gox.Text("\n  "),
		el("label", nil, gox.Text("a")),
		el("label", gox.Props{"constraints": "right bottom"}, gox.Text("b")),
		el(WrapElement, nil),
		el("input", gox.Props{"value": "c"}),
	)

	c, err := Build(tree)
	if err != nil {
		t.Fatal(err)
	}
	container, ok := c.(*Container)
	if !ok {
		t.Fatalf("Build returned %T", c)
	}
	if container.Len() != 3 || container.Rows() != 2 {
		t.Fatalf("got %d children in %d rows, want 3 in 2", container.Len(), container.Rows())
	}
	if l := container.AtCell(0, 0).(*Label); l.Text != "a" {
		t.Errorf("first label = %q", l.Text)
	}

	b := container.AtCell(0, 1)
	p, _ := container.Placement(b)
	if p.X != constraints.End || p.Y != constraints.End {
		t.Errorf("placement = %+v, want End/End", p)
	}
	if RootOf(b) != nil || b.Base().Parent() != container {
		t.Error("built children are parented to their container")
	}
	if f := container.AtCell(1, 0).(*InputField); f.Text != "c" {
		t.Errorf("input text = %q", f.Text)
	}
}

func TestBuild_BoxProps(t *testing.T) {
	c, err := Build(el("label", gox.Props{
		"text":               "x",
		"margin":             1,
		"border":             map[string]any{"top": 1, "bottom": 2},
		"padding":            2,
		"paddingLeft":        0,
		"borderStyle":        "double",
		"color":              "red",
		"background":         "#000080",
		"focusedBorderColor": Green,
		"opaque":             false,
		"focusable":          true,
	}))
	if err != nil {
		t.Fatal(err)
	}
	b := c.Base()

	if b.Margin != Uniform(1) {
		t.Errorf("Margin = %+v", b.Margin)
	}
	if b.Border != (Spacing{Top: 1, Bottom: 2}) {
		t.Errorf("Border = %+v", b.Border)
	}
	if b.Padding != (Spacing{Top: 2, Right: 2, Bottom: 2}) {
		t.Errorf("Padding = %+v", b.Padding)
	}
	if b.Glyphs != BorderSets["double"] {
		t.Error("borderStyle not applied")
	}
	if b.Foreground != Red || b.Background != RGB(0, 0, 128) || b.FocusedBorderColor != Green {
		t.Errorf("colors = %v %v %v", b.Foreground, b.Background, b.FocusedBorderColor)
	}
	if b.Opaque || !b.Focusable {
		t.Error("bool props not applied")
	}
}

func TestBuild_Elements(t *testing.T) {
	clicks := 0
	var typed, entered string

	tree := el("container", nil,
		el("button", gox.Props{"hotkey": "g", "onClick": func() { clicks++ }}, gox.Text("Go")),
		el("button", gox.Props{"variant": "label", "disabled": true}, gox.Text("Off")),
		el("label", gox.Props{"textFunc": func() string { return "live" }, "align": "center"}),
		el("input", gox.Props{
			"decimal":   true,
			"value":     "1.5",
			"maxLength": 4,
			"onInput":   func(s string) { typed = s },
			"onEnter":   func(s string) { entered = s },
		}),
		el("scroll", gox.Props{"width": 10, "height": 4, "horizontalBar": false},
			el("label", nil, gox.Text("inside"))),
	)
	c := MustBuild(tree).(*Container)
	root := NewRoot(c)

	goButton := c.At(0).(*Button)
	if goButton.Shortcut != RuneKey('g') || goButton.Text != "Go" {
		t.Errorf("button = %q with shortcut %v", goButton.Text, goButton.Shortcut)
	}
	root.HandleInput(RuneKey('g'))
	if clicks != 1 {
		t.Error("hotkey did not run onClick")
	}

	off := c.At(1).(*Button)
	if !off.Disabled() || off.Glyphs.Left != '>' {
		t.Error("label variant button should be disabled with marker glyphs")
	}

	live := c.At(2).(*DynamicLabel)
	if live.ContentWidth() != 4 || live.TextAlign != constraints.Center {
		t.Error("textFunc label not built")
	}

	d := c.At(3).(*DecimalInputField)
	if v, err := d.Decimal(); err != nil || v != 1.5 || d.MaxLength != 4 {
		t.Errorf("decimal input = %v, %v, max %d", v, err, d.MaxLength)
	}
	root.Focus(d)
	root.HandleInput(RuneKey('2'))
	root.HandleInput(KeyEvent{Key: KeyEnter})
	if typed != "1.52" || entered != "1.52" {
		t.Errorf("onInput got %q, onEnter got %q", typed, entered)
	}

	s := c.At(4).(*Scroll)
	if s.ViewWidth != 10 || s.ViewHeight != 4 || s.ShowHorizontalBar || !s.ShowVerticalBar {
		t.Errorf("scroll = %dx%d bars %v/%v", s.ViewWidth, s.ViewHeight, s.ShowHorizontalBar, s.ShowVerticalBar)
	}
	if s.Len() != 1 {
		t.Error("scroll children not added")
	}
}

func TestBuild_FunctionalComponents(t *testing.T) {
	pair := func(props gox.Props) gox.VNode {
		return gox.Fragment(
			el("label", nil, gox.Text(props["left"].(string))),
			el("label", nil, gox.Text("right")),
		)
	}
	app := func(props gox.Props) gox.VNode {
		return el("container", nil, el(gox.Component(pair), gox.Props{"left": "left"}))
	}

	c, err := Build(el(gox.Component(app), nil))
	if err != nil {
		t.Fatal(err)
	}
	container := c.(*Container)
	if container.Len() != 2 {
		t.Fatalf("fragment children should be spliced into the container, got %d", container.Len())
	}
	if container.At(0).(*Label).Text != "left" {
		t.Error("props not passed to the functional component")
	}

	// A fragment at the top is unwrapped when it holds a single element.
	single, err := Build(gox.Fragment(gox.Text(" "), el("label", nil, gox.Text("only"))))
	if err != nil {
		t.Fatal(err)
	}
	if single.(*Label).Text != "only" {
		t.Error("single element fragment not unwrapped")
	}
}

func TestBuild_Ref(t *testing.T) {
	var got Component
	c := MustBuild(el("container", nil,
		el("label", gox.Props{"ref": func(c Component) { got = c }}, gox.Text("x"))))

	if got == nil || got != c.(*Container).At(0) {
		t.Errorf("ref received %v", got)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		node gox.VNode
		want error
	}{
		{"unknown element", el("nope", nil), ErrUnknownElement},
		{"unknown nested element", el("container", nil, el("nope", nil)), ErrUnknownElement},
		{"unknown border style", el("label", gox.Props{"borderStyle": "wavy"}), ErrInvalidProp},
		{"unknown color", el("label", gox.Props{"color": "octarine"}), ErrUnknownColor},
		{"color of wrong type", el("label", gox.Props{"color": 3}), ErrInvalidProp},
		{"bad hotkey", el("button", gox.Props{"hotkey": "ab"}), ErrInvalidProp},
		{"bad align", el("label", gox.Props{"align": "justify"}), ErrInvalidProp},
		{"bad columns", el("container", gox.Props{"columns": "[bogus]"}), constraints.ErrUnknownToken},
		{"bad child constraints", el("container", nil, el("label", gox.Props{"constraints": "sideways"})), constraints.ErrUnknownToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.node)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Build(gox.Fragment(el("label", nil), el("label", nil))); err == nil {
		t.Error("a top level fragment with two elements should fail")
	}
}

func TestMustBuild_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBuild should panic on unknown elements")
		}
	}()
	MustBuild(el("nope", nil))
}

func TestRegisterElement(t *testing.T) {
	RegisterElement("test-box", func(gox.VNode) (Component, error) {
		return newFixed(2, 2), nil
	})
	c, err := Build(el("test-box", gox.Props{"padding": 1}))
	if err != nil {
		t.Fatal(err)
	}
	if Width(c) != 4 {
		t.Errorf("registered element should get box props, width = %d", Width(c))
	}
}
