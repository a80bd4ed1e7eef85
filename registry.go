package cellui

import (
	"sync"

	"github.com/germtb/cellui/constraints"
	"github.com/germtb/gox"
	"github.com/pkg/errors"
)

// ElementFunc creates the component for an intrinsic element. Box props
// and children are applied by Build afterwards.
type ElementFunc func(node gox.VNode) (Component, error)

// WrapElement is the element ending the current row of its container.
const WrapElement = "wrap"

var (
	elementRegistry = make(map[string]ElementFunc)
	registryMu      sync.RWMutex
)

// RegisterElement registers the constructor of an intrinsic element type.
// This should be called from init() functions in component packages.
func RegisterElement(name string, fn ElementFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	elementRegistry[name] = fn
}

// GetElement returns the constructor for an element type, or nil.
func GetElement(name string) ElementFunc {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return elementRegistry[name]
}

func init() {
	RegisterElement("container", buildContainer)
	RegisterElement("scroll", buildScroll)
	RegisterElement("label", buildLabel)
	RegisterElement("button", buildButton)
	RegisterElement("input", buildInput)
	RegisterElement("ansi", buildAnsi)
	RegisterElement("spacer", buildSpacer)
	RegisterElement("link", buildLink)
}

func buildContainer(node gox.VNode) (Component, error) {
	return NewContainer(
		GetStringProp(node.Props, "container", ""),
		GetStringProp(node.Props, "columns", ""),
		GetStringProp(node.Props, "rows", ""))
}

func buildScroll(node gox.VNode) (Component, error) {
	s, err := NewScroll(
		GetStringProp(node.Props, "container", ""),
		GetStringProp(node.Props, "columns", ""),
		GetStringProp(node.Props, "rows", ""))
	if err != nil {
		return nil, err
	}
	s.ViewWidth = GetIntProp(node.Props, "width", s.ViewWidth)
	s.ViewHeight = GetIntProp(node.Props, "height", s.ViewHeight)
	s.ShowHorizontalBar = GetBoolProp(node.Props, "horizontalBar", s.ShowHorizontalBar)
	s.ShowVerticalBar = GetBoolProp(node.Props, "verticalBar", s.ShowVerticalBar)
	return s, nil
}

func textOf(node gox.VNode) string {
	if text, ok := node.Props["text"].(string); ok {
		return text
	}
	return CollectTextContent(node)
}

var textAligns = map[string]constraints.Alignment{
	"left":   constraints.Start,
	"center": constraints.Center,
	"right":  constraints.End,
}

func applyLabelProps(l *Label, props gox.Props) error {
	if align, ok := props["align"].(string); ok {
		a, known := textAligns[align]
		if !known {
			return errors.Wrapf(ErrInvalidProp, "align %q", align)
		}
		l.TextAlign = a
	}
	l.WrapText = GetBoolProp(props, "wrap", l.WrapText)
	l.PreferredWidth = GetIntProp(props, "preferredWidth", l.PreferredWidth)
	return nil
}

func buildLabel(node gox.VNode) (Component, error) {
	if fn, ok := node.Props["textFunc"].(func() string); ok {
		d := NewDynamicLabel(fn)
		return d, applyLabelProps(&d.Label, node.Props)
	}
	l := NewLabel(textOf(node))
	return l, applyLabelProps(l, node.Props)
}

func buildButton(node gox.VNode) (Component, error) {
	action, _ := node.Props["onClick"].(func())

	var b *Button
	if GetStringProp(node.Props, "variant", "") == "label" {
		b = NewLabelButton(textOf(node), action)
	} else {
		b = NewButton(textOf(node), action)
	}

	if hotkey := GetStringProp(node.Props, "hotkey", ""); hotkey != "" {
		r := []rune(hotkey)
		if len(r) != 1 {
			return nil, errors.Wrapf(ErrInvalidProp, "hotkey %q is not a single character", hotkey)
		}
		b.Shortcut = RuneKey(r[0])
	}
	b.SetDisabled(GetBoolProp(node.Props, "disabled", false))
	return b, applyLabelProps(&b.Label, node.Props)
}

func buildAnsi(node gox.VNode) (Component, error) {
	return NewAnsiLabel(textOf(node)), nil
}

func buildSpacer(node gox.VNode) (Component, error) {
	return NewSpacer(GetIntProp(node.Props, "width", 0), GetIntProp(node.Props, "height", 0)), nil
}

func buildLink(node gox.VNode) (Component, error) {
	url := GetStringProp(node.Props, "href", "")
	if url == "" {
		return nil, errors.Wrap(ErrInvalidProp, "link without href")
	}
	text := textOf(node)
	if text == "" {
		text = url
	}
	return NewLink(text, url), nil
}

func buildInput(node gox.VNode) (Component, error) {
	var (
		c Component
		f *InputField
	)
	if GetBoolProp(node.Props, "decimal", false) {
		d := NewDecimalInputField(0)
		d.Text = GetStringProp(node.Props, "value", "")
		c, f = d, &d.InputField
	} else {
		f = NewInputField(GetStringProp(node.Props, "value", ""))
		c = f
	}
	f.MaxLength = GetIntProp(node.Props, "maxLength", 0)
	f.PreferredWidth = GetIntProp(node.Props, "preferredWidth", f.PreferredWidth)

	if onInput, ok := node.Props["onInput"].(func(string)); ok {
		f.OnInput = func() { onInput(f.Text) }
	}
	if onEnter, ok := node.Props["onEnter"].(func(string)); ok {
		f.OnEnter = func() { onEnter(f.Text) }
	}
	return c, nil
}
