// This file implements the Grid type: an immutable binary occupancy
// field with cell accessors. Construction happens in rasterize.go and
// encode.go; nothing mutates a Grid after it is returned.
package grid

// Grid is a binary walkability field. The zero value is unusable;
// obtain instances from Rasterize or FromBytes.
//
// Storage is a flat x-major wall mask: cell (x,y) lives at index
// x·height+y, matching the persisted [x][y] byte layout.
type Grid struct {
	width      int
	height     int
	resolution int
	walls      []bool
}

// Width returns the number of cells along x.
func (g *Grid) Width() int { return g.width }

// Height returns the number of cells along y.
func (g *Grid) Height() int { return g.height }

// Resolution returns the number of cells per meter.
func (g *Grid) Resolution() int { return g.resolution }

// InBounds reports whether (x,y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Walkable reports whether (x,y) is a walkable cell. Out-of-bounds
// coordinates are not walkable.
func (g *Grid) Walkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	return !g.walls[x*g.height+y]
}

// WalkableAt is Walkable for a Cell value.
func (g *Grid) WalkableAt(c Cell) bool { return g.Walkable(c.X, c.Y) }

// WalkableCells returns every walkable cell in x-major scan order
// (x ascending, y ascending within a column).
// Complexity: O(width·height)
func (g *Grid) WalkableCells() []Cell {
	var cells []Cell
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if !g.walls[x*g.height+y] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}

	return cells
}

// WalkableCount returns the number of walkable cells.
// Complexity: O(width·height)
func (g *Grid) WalkableCount() int {
	n := 0
	for _, wall := range g.walls {
		if !wall {
			n++
		}
	}

	return n
}

// carve clears the wall flag on [x1,x2)×[y1,y2), clamped to the grid.
// Rasterization-internal; grids are immutable once published.
func (g *Grid) carve(x1, y1, x2, y2 int) {
	x1 = max(0, x1)
	y1 = max(0, y1)
	x2 = min(g.width, x2)
	y2 = min(g.height, y2)

	for x := x1; x < x2; x++ {
		col := x * g.height
		for y := y1; y < y2; y++ {
			g.walls[col+y] = false
		}
	}
}
