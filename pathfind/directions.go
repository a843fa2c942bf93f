// This file builds the 32-direction movement table: step offsets,
// Euclidean costs, and the intermediate cells each jump crosses
// (consumed only under strict jump validation).
package pathfind

import "math"

// step is one entry of the movement table.
type step struct {
	dx, dy int
	cost   float64

	// crossed holds the relative offsets of every cell the segment
	// (0,0)→(dx,dy) passes through, endpoints excluded. Empty for unit
	// steps.
	crossed [][2]int
}

// steps is the movement table shared by all searches. Built once; the
// table and its slices are never mutated afterwards.
var steps = buildSteps()

// buildSteps derives the 32 headings: for each multiple of 11.25° the
// radius-4 vector is rounded per component and reduced to lowest
// terms. The result is exactly the 8 unit steps plus 24 knight-like
// jumps, each distinct.
func buildSteps() []step {
	type key struct{ dx, dy int }
	seen := make(map[key]bool, 32)
	out := make([]step, 0, 32)

	for i := 0; i < 32; i++ {
		theta := 2 * math.Pi * float64(i) / 32
		dx := int(math.Round(4 * math.Cos(theta)))
		dy := int(math.Round(4 * math.Sin(theta)))
		if dx == 0 && dy == 0 {
			continue
		}

		if g := gcd(abs(dx), abs(dy)); g > 1 {
			dx, dy = dx/g, dy/g
		}
		k := key{dx, dy}
		if seen[k] {
			continue
		}
		seen[k] = true

		out = append(out, step{
			dx:      dx,
			dy:      dy,
			cost:    math.Hypot(float64(dx), float64(dy)),
			crossed: crossedCells(dx, dy),
		})
	}

	return out
}

// crossedCells returns the cells strictly between (0,0) and (dx,dy)
// touched by the segment joining their centers, in traversal order.
// Unit steps cross nothing; diagonal corner contacts advance both axes
// at once. Crossing order is resolved with integer arithmetic only.
func crossedCells(dx, dy int) [][2]int {
	nx, ny := abs(dx), abs(dy)
	if nx <= 1 && ny <= 1 {
		return nil
	}

	sx, sy := sign(dx), sign(dy)
	x, y := 0, 0
	ix, iy := 0, 0 // boundary crossings done per axis
	var out [][2]int

	for ix < nx || iy < ny {
		// Next x-boundary sits at t=(2·ix+1)/(2·nx), next y-boundary at
		// t=(2·iy+1)/(2·ny); compare cross-multiplied.
		tx := (2*ix + 1) * ny
		ty := (2*iy + 1) * nx
		switch {
		case iy >= ny || (ix < nx && tx < ty):
			x += sx
			ix++
		case ix >= nx || ty < tx:
			y += sy
			iy++
		default: // exact corner
			x += sx
			y += sy
			ix++
			iy++
		}

		if x == dx && y == dy {
			break
		}
		out = append(out, [2]int{x, y})
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
