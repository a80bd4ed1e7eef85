package cellui

import (
	"strings"

	"github.com/germtb/gox"
	"github.com/pkg/errors"
)

// VNode is an alias for gox.VNode - no wrapper needed.
type VNode = gox.VNode

// Props is an alias for gox.Props.
type Props = gox.Props

// ErrInvalidProp is returned when a prop has a type or value the element
// cannot use.
var ErrInvalidProp = errors.New("invalid prop")

// IsTextNode returns true if this is a text node.
func IsTextNode(v gox.VNode) bool {
	s, ok := v.Type.(string)
	return ok && s == gox.TextNodeType
}

// GetTextContent returns the text content if this is a text node.
func GetTextContent(v gox.VNode) (string, bool) {
	if !IsTextNode(v) {
		return "", false
	}
	if content, ok := v.Props["content"].(string); ok {
		return content, true
	}
	if text, ok := v.Props["text"].(string); ok {
		return text, true
	}
	return "", false
}

// TypeString returns the type as a string (for intrinsic elements).
func TypeString(v gox.VNode) (string, bool) {
	s, ok := v.Type.(string)
	return s, ok
}

// IsFragment reports whether v only groups its children.
func IsFragment(v gox.VNode) bool {
	s, ok := v.Type.(string)
	return ok && (s == gox.FragmentNodeType || s == "fragment")
}

// Expand recursively expands functional components into their rendered output.
func Expand(v gox.VNode) gox.VNode {
	if comp, ok := v.Type.(gox.Component); ok {
		props := gox.Props{}
		for k, val := range v.Props {
			props[k] = val
		}
		props["children"] = v.Children
		return Expand(comp(props))
	}

	if len(v.Children) == 0 {
		return v
	}
	expanded := make([]gox.VNode, len(v.Children))
	for i, child := range v.Children {
		expanded[i] = Expand(child)
	}
	return gox.VNode{Type: v.Type, Props: v.Props, Children: expanded}
}

// CollectTextContent concatenates the text of all text nodes below node.
func CollectTextContent(node gox.VNode) string {
	if text, ok := GetTextContent(node); ok {
		return text
	}
	var sb strings.Builder
	for _, child := range node.Children {
		sb.WriteString(CollectTextContent(child))
	}
	return sb.String()
}

// NormalizeSpacing converts a spacing prop to a Spacing: an int applies to
// every edge, a map sets edges by name.
func NormalizeSpacing(value any) Spacing {
	switch v := value.(type) {
	case int:
		return Uniform(v)
	case float64:
		return Uniform(int(v))
	case Spacing:
		return v
	case map[string]any:
		return Spacing{
			Top:    intFromAny(v["top"], 0),
			Right:  intFromAny(v["right"], 0),
			Bottom: intFromAny(v["bottom"], 0),
			Left:   intFromAny(v["left"], 0),
		}
	default:
		return Spacing{}
	}
}

// GetSpacing extracts spacing from props, supporting both base prop and directional overrides.
// For example, GetSpacing(props, "padding") reads "padding" and also
// "paddingTop", "paddingRight", "paddingBottom", "paddingLeft" as overrides.
func GetSpacing(props gox.Props, baseProp string) Spacing {
	spacing := NormalizeSpacing(props[baseProp])
	if v, ok := props[baseProp+"Top"]; ok {
		spacing.Top = intFromAny(v, 0)
	}
	if v, ok := props[baseProp+"Right"]; ok {
		spacing.Right = intFromAny(v, 0)
	}
	if v, ok := props[baseProp+"Bottom"]; ok {
		spacing.Bottom = intFromAny(v, 0)
	}
	if v, ok := props[baseProp+"Left"]; ok {
		spacing.Left = intFromAny(v, 0)
	}
	return spacing
}

func hasSpacing(props gox.Props, baseProp string) bool {
	for _, suffix := range []string{"", "Top", "Right", "Bottom", "Left"} {
		if _, ok := props[baseProp+suffix]; ok {
			return true
		}
	}
	return false
}

func intFromAny(v any, defaultVal int) int {
	switch i := v.(type) {
	case int:
		return i
	case float64:
		return int(i)
	default:
		return defaultVal
	}
}

// GetIntProp gets an integer property with a default value.
func GetIntProp(props gox.Props, key string, defaultVal int) int {
	if props == nil {
		return defaultVal
	}
	return intFromAny(props[key], defaultVal)
}

// GetBoolProp gets a boolean property with a default value.
func GetBoolProp(props gox.Props, key string, defaultVal bool) bool {
	if props == nil {
		return defaultVal
	}
	if b, ok := props[key].(bool); ok {
		return b
	}
	return defaultVal
}

// GetStringProp gets a string property with a default value.
func GetStringProp(props gox.Props, key string, defaultVal string) string {
	if props == nil {
		return defaultVal
	}
	if s, ok := props[key].(string); ok {
		return s
	}
	return defaultVal
}

// GetColorProp reads a color given as a Color or as a string accepted by
// ParseColor. ok is false when the prop is absent.
func GetColorProp(props gox.Props, key string) (c Color, ok bool, err error) {
	switch v := props[key].(type) {
	case nil:
		return Color{}, false, nil
	case Color:
		return v, true, nil
	case string:
		c, err := ParseColor(v)
		if err != nil {
			return Color{}, false, errors.Wrapf(err, "prop %q", key)
		}
		return c, true, nil
	default:
		return Color{}, false, errors.Wrapf(ErrInvalidProp, "prop %q: %T is not a color", key, v)
	}
}
