// This file implements Rasterize, the layout→grid conversion, and the
// door-cell helpers derived from it.
package grid

import (
	"fmt"

	"github.com/egresslab/egress/core"
)

// Rasterize converts a floor plan into a walkability grid at the given
// resolution (cells per meter). Room interiors are carved inset by the
// wall thickness; doors and exits are carved afterwards and override
// walls. The result is deterministic: identical inputs produce
// bit-identical grids.
//
// Complexity: O(width·height·resolution²)
func Rasterize(l *core.Layout, resolution int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if l == nil {
		return nil, ErrNilLayout
	}
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: %d cells/m", ErrBadResolution, resolution)
	}

	w := int(l.Width * float64(resolution))
	h := int(l.Height * float64(resolution))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: raster %dx%d is empty", ErrBadResolution, w, h)
	}

	g := &Grid{width: w, height: h, resolution: resolution, walls: make([]bool, w*h)}
	for i := range g.walls {
		g.walls[i] = true
	}

	inset := int(o.wallThickness * float64(resolution))
	for _, room := range l.Rooms {
		r := room.Rect
		g.carve(
			px(r.X, resolution)+inset, px(r.Y, resolution)+inset,
			px(r.MaxX(), resolution)-inset, px(r.MaxY(), resolution)-inset,
		)
	}

	// Doors last: openings must override the wall bands they straddle.
	for _, d := range l.Doors {
		r := d.Rect
		g.carve(
			px(r.X, resolution), px(r.Y, resolution),
			px(r.MaxX(), resolution), px(r.MaxY(), resolution),
		)
	}

	return g, nil
}

// px maps a metric coordinate to a cell index by truncation.
func px(v float64, resolution int) int {
	return int(v * float64(resolution))
}

// DoorCell returns the cell under the door rectangle's center, clamped
// to the grid bounds.
func (g *Grid) DoorCell(d core.Door) Cell {
	cx, cy := d.Rect.Center()

	return Cell{
		X: clamp(px(cx, g.resolution), 0, g.width-1),
		Y: clamp(px(cy, g.resolution), 0, g.height-1),
	}
}

// ExitCells returns the clamped center cells of the layout's exit
// doors, in door registration order.
func ExitCells(g *Grid, l *core.Layout) []Cell {
	var cells []Cell
	for _, d := range l.Doors {
		if d.Exit {
			cells = append(cells, g.DoorCell(d))
		}
	}

	return cells
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
