package cellui

import (
	"slices"

	"github.com/germtb/cellui/constraints"
)

// Container places its children on a grid of rows and columns.
//
// Children are added to the last row; a row ends either explicitly with Wrap
// or automatically after the container's wrap threshold. Columns and rows
// take the size of their largest child, then leftover space goes to the
// growable ones. Insertion order is render order and tab order.
type Container struct {
	Box

	// self is the outermost component embedding this container. Children
	// point back to it so that root detection sees the embedding type.
	self Component

	rows      [][]Component
	placement map[Component]constraints.Component

	wrap    constraints.Container
	columns constraints.Axis
	rowAxis constraints.Axis
}

// NewContainer creates a container from constraint strings, for example
// NewContainer("wrap2", "[grow, fill][]", "").
func NewContainer(container, columns, rows string) (*Container, error) {
	cc, err := constraints.ParseContainer(container)
	if err != nil {
		return nil, err
	}
	cols, err := constraints.ParseColumns(columns)
	if err != nil {
		return nil, err
	}
	rs, err := constraints.ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return NewGrid(cc, cols, rs), nil
}

// MustContainer is like NewContainer but panics if a constraint string does
// not parse.
func MustContainer(container, columns, rows string) *Container {
	c, err := NewContainer(container, columns, rows)
	if err != nil {
		panic("cellui: " + err.Error())
	}
	return c
}

// NewGrid creates a container from already built constraints.
func NewGrid(container constraints.Container, columns, rows constraints.Axis) *Container {
	c := &Container{}
	c.init(c, container, columns, rows)
	return c
}

func (c *Container) init(self Component, container constraints.Container, columns, rows constraints.Axis) {
	c.Box = NewBox()
	c.self = self
	c.rows = [][]Component{nil}
	c.placement = make(map[Component]constraints.Component)
	c.wrap = container
	c.columns = columns
	c.rowAxis = rows
}

// Add appends child to the last row. The constraint string may override the
// alignment the column and row give by default, e.g. "fillx, bottom".
// Adding a component that already has a parent panics.
func (c *Container) Add(child Component, constraint string) error {
	if child.Base().parent != nil {
		panic("cellui: component is already in a container")
	}

	last := len(c.rows) - 1
	place, err := constraints.ParseComponent(constraint,
		c.columns.DefaultAlignment(len(c.rows[last])),
		c.rowAxis.DefaultAlignment(last))
	if err != nil {
		return err
	}

	c.placement[child] = place
	c.rows[last] = append(c.rows[last], child)
	child.Base().parent = c.self

	if len(c.rows[last]) == c.wrap.AutoWrapAfter {
		c.rows = append(c.rows, nil)
	}

	Invalidate(c.self)
	return nil
}

// MustAdd is like Add but panics if the constraint string does not parse.
func (c *Container) MustAdd(child Component, constraint string) {
	if err := c.Add(child, constraint); err != nil {
		panic("cellui: " + err.Error())
	}
}

// Wrap ends the current row; the next child starts a new one.
func (c *Container) Wrap() {
	c.rows = append(c.rows, nil)
	Invalidate(c.self)
}

// Remove detaches child from the container. If the focus was on child or
// inside it, the root moves the focus on first. Reports whether child was
// found.
func (c *Container) Remove(child Component) bool {
	for r, row := range c.rows {
		i := slices.Index(row, child)
		if i < 0 {
			continue
		}

		root := RootOf(c.self)
		holdsFocus := root != nil && containsFocus(child, root.Focused())

		c.rows[r] = slices.Delete(row, i, i+1)
		if len(c.rows[r]) == 0 {
			c.rows = slices.Delete(c.rows, r, r+1)
			if len(c.rows) == 0 {
				c.rows = [][]Component{nil}
			}
		}
		delete(c.placement, child)

		if holdsFocus {
			root.FocusNext(child)
		}
		child.Base().parent = nil

		Invalidate(c.self)
		return true
	}
	return false
}

// RemoveAll detaches every child, moving the focus out of the container
// first if it was inside, and leaves a single empty row.
func (c *Container) RemoveAll() {
	children := c.Children()

	if root := RootOf(c.self); root != nil {
		focused := root.Focused()
		for _, child := range children {
			if containsFocus(child, focused) {
				root.FocusNext(children...)
				break
			}
		}
	}

	for _, child := range children {
		child.Base().parent = nil
	}
	c.rows = [][]Component{nil}
	clear(c.placement)

	Invalidate(c.self)
}

func containsFocus(c, focused Component) bool {
	return focused != nil && (c == focused || Contains(c, focused))
}

// Children returns all children, row by row.
func (c *Container) Children() []Component {
	var all []Component
	for _, row := range c.rows {
		all = append(all, row...)
	}
	return all
}

// Len returns the number of children.
func (c *Container) Len() int {
	n := 0
	for _, row := range c.rows {
		n += len(row)
	}
	return n
}

// At returns the child at index in Children order.
func (c *Container) At(index int) Component {
	return c.Children()[index]
}

// AtCell returns the child in the given row and column.
func (c *Container) AtCell(row, column int) Component {
	return c.rows[row][column]
}

// Rows returns the number of rows, including a trailing empty one.
func (c *Container) Rows() int { return len(c.rows) }

// IndexOf returns the index of child in Children order, or -1.
func (c *Container) IndexOf(child Component) int {
	return slices.Index(c.Children(), child)
}

// Placement returns the alignment child was added with.
func (c *Container) Placement(child Component) (constraints.Component, bool) {
	p, ok := c.placement[child]
	return p, ok
}

// FocusHierarchy focuses the container itself if it is focusable.
func (c *Container) FocusHierarchy() bool {
	if !c.Focusable {
		return false
	}
	Focus(c.self)
	return true
}

func (c *Container) ContentWidth() int { return sum(c.columnMinimums()) }

func (c *Container) ContentHeight() int { return sum(c.rowMinimums()) }

func (c *Container) RenderContent(buf *RenderBuffer) {
	rects := c.Layout(buf.Width(), buf.Height())
	for i, child := range c.Children() {
		r := rects[i]
		Render(child, buf.View(r.X, r.Y, r.Width, r.Height))
	}
}

// Descendants returns every component below c in depth-first tree order,
// containers before their children, that satisfies keep. A nil keep accepts
// everything. c itself is not included.
func Descendants(c Component, keep func(Component) bool) []Component {
	var out []Component
	collect(c, keep, &out, 0)
	return out
}

func collect(c Component, keep func(Component) bool, out *[]Component, depth int) {
	p, ok := c.(Parent)
	if !ok {
		return
	}
	if depth > MaxTreeDepth {
		panic("cellui: component tree too deep, it probably contains a cycle")
	}
	for _, child := range p.Children() {
		if keep == nil || keep(child) {
			*out = append(*out, child)
		}
		collect(child, keep, out, depth+1)
	}
}

// Contains reports whether target is somewhere below container.
func Contains(container, target Component) bool {
	found := false
	Descendants(container, func(c Component) bool {
		if c == target {
			found = true
		}
		return false
	})
	return found
}
