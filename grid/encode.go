// This file implements the byte interchange form of a Grid: one byte
// per cell, 0 walkable, 1 wall, laid out [x][y].
package grid

import "fmt"

// Bytes returns the grid's persisted form. The slice is a fresh copy;
// the grid itself stays immutable.
// Complexity: O(width·height)
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.walls))
	for i, wall := range g.walls {
		if wall {
			out[i] = 1
		}
	}

	return out
}

// FromBytes reconstructs a Grid from its persisted form. The payload
// must hold exactly width·height cells valued 0 or 1.
func FromBytes(width, height, resolution int, data []byte) (*Grid, error) {
	if width <= 0 || height <= 0 || resolution <= 0 {
		return nil, fmt.Errorf("%w: %dx%d at %d cells/m", ErrBadResolution, width, height, resolution)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrBadData, len(data), width*height)
	}

	g := &Grid{width: width, height: height, resolution: resolution, walls: make([]bool, len(data))}
	for i, b := range data {
		switch b {
		case 0:
			// walkable
		case 1:
			g.walls[i] = true
		default:
			return nil, fmt.Errorf("%w: cell %d holds %d", ErrBadData, i, b)
		}
	}

	return g, nil
}
