package cellui

import (
	"github.com/germtb/gox"
	"github.com/pkg/errors"
)

// ErrUnknownElement is returned by Build for element types without a
// registered ElementFunc.
var ErrUnknownElement = errors.New("unknown element")

// Build turns a gox tree into components. Functional components are
// expanded first; every intrinsic element then becomes the component made
// by its registered ElementFunc.
//
// Box props understood on every element: margin, border and padding (an
// int or a map, plus Top/Right/Bottom/Left suffixed overrides),
// borderStyle (a BorderSets name), color, background, borderColor,
// focusedColor, focusedBackground, focusedBorderColor, opaque, focusable
// and debug. A child's place in its container comes from its constraints
// prop. A ref prop of type func(Component) receives the built component.
func Build(node gox.VNode) (Component, error) {
	node = Expand(node)
	if IsFragment(node) {
		var elements []gox.VNode
		for _, child := range node.Children {
			if !IsTextNode(child) {
				elements = append(elements, child)
			}
		}
		if len(elements) != 1 {
			return nil, errors.Errorf("fragment at the top must hold exactly one element, got %d", len(elements))
		}
		node = elements[0]
	}
	return build(node)
}

// MustBuild is like Build but panics on error.
func MustBuild(node gox.VNode) Component {
	c, err := Build(node)
	if err != nil {
		panic("cellui: " + err.Error())
	}
	return c
}

type rowAdder interface {
	Add(child Component, constraint string) error
	Wrap()
}

func build(node gox.VNode) (Component, error) {
	name, ok := TypeString(node)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownElement, "%T", node.Type)
	}
	fn := GetElement(name)
	if fn == nil {
		return nil, errors.Wrapf(ErrUnknownElement, "%q", name)
	}

	c, err := fn(node)
	if err != nil {
		return nil, errors.Wrapf(err, "<%s>", name)
	}
	if err := applyBoxProps(c.Base(), node.Props); err != nil {
		return nil, errors.Wrapf(err, "<%s>", name)
	}

	if parent, ok := c.(rowAdder); ok {
		if err := addChildren(parent, node.Children); err != nil {
			return nil, errors.Wrapf(err, "<%s>", name)
		}
	}

	if ref, ok := node.Props["ref"].(func(Component)); ok {
		ref(c)
	}
	return c, nil
}

func addChildren(parent rowAdder, children []gox.VNode) error {
	for _, child := range children {
		switch {
		case IsTextNode(child):
			// stray whitespace between elements
		case IsFragment(child):
			if err := addChildren(parent, child.Children); err != nil {
				return err
			}
		default:
			if name, _ := TypeString(child); name == WrapElement {
				parent.Wrap()
				continue
			}
			c, err := build(child)
			if err != nil {
				return err
			}
			if err := parent.Add(c, GetStringProp(child.Props, "constraints", "")); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyBoxProps(b *Box, props gox.Props) error {
	if hasSpacing(props, "margin") {
		b.Margin = GetSpacing(props, "margin")
	}
	if hasSpacing(props, "border") {
		b.Border = GetSpacing(props, "border")
	}
	if hasSpacing(props, "padding") {
		b.Padding = GetSpacing(props, "padding")
	}

	if style, ok := props["borderStyle"].(string); ok {
		glyphs, known := BorderSets[style]
		if !known {
			return errors.Wrapf(ErrInvalidProp, "borderStyle %q", style)
		}
		b.Glyphs = glyphs
	}

	colors := []struct {
		prop string
		dst  *Color
	}{
		{"color", &b.Foreground},
		{"background", &b.Background},
		{"borderColor", &b.BorderColor},
		{"focusedColor", &b.FocusedForeground},
		{"focusedBackground", &b.FocusedBackground},
		{"focusedBorderColor", &b.FocusedBorderColor},
	}
	for _, c := range colors {
		color, ok, err := GetColorProp(props, c.prop)
		if err != nil {
			return err
		}
		if ok {
			*c.dst = color
		}
	}

	b.Opaque = GetBoolProp(props, "opaque", b.Opaque)
	b.Focusable = GetBoolProp(props, "focusable", b.Focusable)
	b.Debug = GetBoolProp(props, "debug", b.Debug)
	return nil
}
