// Package constraints provides the layout directives used by containers and
// the parsers for the small constraint language that produces them.
//
// Container strings hold an optional auto-wrap token:
//
//	"wrap3"
//
// Column and row strings hold one bracket group per axis index:
//
//	"[grow, fill][center][]"
//
// Component strings are a comma separated token list:
//
//	"fillx, bottom"
package constraints

// Alignment places a child inside its grid cell along one axis.
type Alignment uint8

const (
	Start  Alignment = iota // left or top
	Center                  // centered in the cell
	End                     // right or bottom
	Fill                    // stretched to the cell size
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	case Fill:
		return "fill"
	default:
		return "unknown"
	}
}

// Container holds container-wide directives.
type Container struct {
	// AutoWrapAfter starts a new row once the current row holds this many
	// children. Zero disables auto wrapping.
	AutoWrapAfter int
}

// Axis holds per-index directives for the columns or rows of a container.
// A single entry applies to every index.
type Axis struct {
	grow  []bool
	align []Alignment
}

// NewAxis creates axis constraints from per-index grow flags and default
// alignments. The slices are copied.
func NewAxis(grow []bool, align []Alignment) Axis {
	return Axis{
		grow:  append([]bool(nil), grow...),
		align: append([]Alignment(nil), align...),
	}
}

// Len returns the number of explicitly configured indices.
func (a Axis) Len() int {
	return max(len(a.grow), len(a.align))
}

// Grows reports whether the given index may receive leftover space.
func (a Axis) Grows(index int) bool {
	switch {
	case len(a.grow) == 1:
		return a.grow[0]
	case index >= 0 && index < len(a.grow):
		return a.grow[index]
	default:
		return false
	}
}

// DefaultAlignment returns the alignment children at the given index get
// unless they override it.
func (a Axis) DefaultAlignment(index int) Alignment {
	switch {
	case len(a.align) == 1:
		return a.align[0]
	case index >= 0 && index < len(a.align):
		return a.align[index]
	default:
		return Start
	}
}

// AnyGrows reports whether any of the first n indices can grow.
func (a Axis) AnyGrows(n int) bool {
	for i := 0; i < n; i++ {
		if a.Grows(i) {
			return true
		}
	}
	return false
}

// Component holds the placement of one child inside its cell.
type Component struct {
	X Alignment
	Y Alignment
}
