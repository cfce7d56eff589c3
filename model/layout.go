package model

// DrawData is the read-only view a renderer needs of a grid
type DrawData interface {
	Size() int
	Alive(index int) bool
}

// Layout translates cell indexes into render offsets
type Layout struct {
	CellWidth  int
	CellHeight int
}

// Offset returns the top-left render position of a cell on an n×n grid
func (l Layout) Offset(n, index int) (x, y int) {
	return (index % n) * l.CellWidth, (index / n) * l.CellHeight
}

// VerticalLines returns the x positions of the grid's vertical lines,
// one per column plus the closing line at the far edge
func (l Layout) VerticalLines(n int) []int {
	return linePositions(n, l.CellWidth)
}

// HorizontalLines returns the y positions of the grid's horizontal lines,
// one per row plus the closing line at the far edge
func (l Layout) HorizontalLines(n int) []int {
	return linePositions(n, l.CellHeight)
}

// Extent returns the total render width and height of an n×n grid
func (l Layout) Extent(n int) (width, height int) {
	return n * l.CellWidth, n * l.CellHeight
}

func linePositions(n, step int) []int {
	lines := make([]int, n+1)
	for i := range lines {
		lines[i] = i * step
	}
	return lines
}
