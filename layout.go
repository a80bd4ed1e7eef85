package cellui

import (
	"github.com/germtb/cellui/constraints"
)

// Rect is a rectangle in the coordinates of a container's content area.
type Rect struct {
	X, Y          int
	Width, Height int
}

// DistributeSizes hands out toDistribute units one at a time, always to the
// currently smallest index the axis marks as growable. Ties go to the lowest
// index. If no index can grow the space stays unallocated.
func DistributeSizes(sizes []int, axis constraints.Axis, toDistribute int) {
	for ; toDistribute > 0; toDistribute-- {
		smallest := -1
		for i, size := range sizes {
			if axis.Grows(i) && (smallest < 0 || size < sizes[smallest]) {
				smallest = i
			}
		}
		if smallest < 0 {
			return
		}
		sizes[smallest]++
	}
}

// columnMinimums returns the widest child of every column.
func (c *Container) columnMinimums() []int {
	var widths []int
	for _, row := range c.rows {
		for i, child := range row {
			w := Width(child)
			if i < len(widths) {
				widths[i] = max(widths[i], w)
			} else {
				widths = append(widths, w)
			}
		}
	}
	return widths
}

// rowMinimums returns the tallest child of every row.
func (c *Container) rowMinimums() []int {
	heights := make([]int, len(c.rows))
	for i, row := range c.rows {
		for _, child := range row {
			heights[i] = max(heights[i], Height(child))
		}
	}
	return heights
}

// ColumnWidths returns the final width of each column when the content area
// is available wide.
func (c *Container) ColumnWidths(available int) []int {
	widths := c.columnMinimums()
	DistributeSizes(widths, c.columns, available-sum(widths))
	return widths
}

// RowHeights returns the final height of each row when the content area is
// available high.
func (c *Container) RowHeights(available int) []int {
	heights := c.rowMinimums()
	DistributeSizes(heights, c.rowAxis, available-sum(heights))
	return heights
}

// Layout computes the rectangle of every child for a content area of the
// given size, in tree order.
func (c *Container) Layout(width, height int) []Rect {
	columnWidths := c.ColumnWidths(width)
	rowHeights := c.RowHeights(height)

	var rects []Rect
	y := 0
	for r, row := range c.rows {
		cellHeight := rowHeights[r]
		x := 0
		for col, child := range row {
			cellWidth := columnWidths[col]
			place := c.placement[child]

			w := alignedSize(place.X, cellWidth, Width(child))
			h := alignedSize(place.Y, cellHeight, Height(child))
			rects = append(rects, Rect{
				X:      x + alignedOffset(place.X, cellWidth, w),
				Y:      y + alignedOffset(place.Y, cellHeight, h),
				Width:  w,
				Height: h,
			})

			x += cellWidth
		}
		y += cellHeight
	}
	return rects
}

func alignedSize(a constraints.Alignment, cell, natural int) int {
	if a == constraints.Fill {
		return cell
	}
	return natural
}

func alignedOffset(a constraints.Alignment, cell, size int) int {
	switch a {
	case constraints.Center:
		return (cell - size) / 2
	case constraints.End:
		return cell - size
	default:
		return 0
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
