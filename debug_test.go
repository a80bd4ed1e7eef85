package cellui

import (
	"testing"
)

func TestSprintTree(t *testing.T) {
	c := MustContainer("", "", "")
	c.Padding = Uniform(1)
	first := newFocusable(2, 1)
	c.MustAdd(first, "")
	c.MustAdd(newFixed(3, 1), "")
	NewRoot(c).Focus(first)

	want := "*cellui.Container w=7 h=3 content(w=5 h=1)\n" +
		"  *cellui.fixed w=2 h=1 focusable focused\n" +
		"  *cellui.fixed w=3 h=1\n"
	if got := SprintTree(c); got != want {
		t.Errorf("SprintTree() =\n%s\nwant\n%s", got, want)
	}
}
