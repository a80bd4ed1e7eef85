package cellui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugTree prints the component tree to stdout for debugging.
func DebugTree(c Component) {
	FprintTree(os.Stdout, c)
}

// SprintTree returns the component tree as a string for debugging.
func SprintTree(c Component) string {
	var sb strings.Builder
	FprintTree(&sb, c)
	return sb.String()
}

// FprintTree writes the component tree to w, one component per line with
// its type, full size and content size, indented by depth.
func FprintTree(w io.Writer, c Component) {
	fprintTreeIndent(w, c, 0)
}

func fprintTreeIndent(w io.Writer, c Component, depth int) {
	if depth > MaxTreeDepth {
		panic("cellui: component tree too deep, it probably contains a cycle")
	}
	indent := strings.Repeat("  ", depth)

	line := fmt.Sprintf("%s%T w=%d h=%d", indent, c, Width(c), Height(c))

	// Show content size when it differs from the full size
	if cw, ch := c.ContentWidth(), c.ContentHeight(); cw != Width(c) || ch != Height(c) {
		line += fmt.Sprintf(" content(w=%d h=%d)", cw, ch)
	}

	b := c.Base()
	if b.Focusable {
		line += " focusable"
	}
	if IsFocused(c) {
		line += " focused"
	}

	fmt.Fprintln(w, line)

	if p, ok := c.(Parent); ok {
		for _, child := range p.Children() {
			fprintTreeIndent(w, child, depth+1)
		}
	}
}
