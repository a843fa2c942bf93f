// This file implements connected-component analysis over the walkable
// region, used by generation diagnostics and simulation sanity checks.
package grid

// orthogonal4 is the 4-connectivity neighbourhood used for component
// analysis. Routing uses its own, wider movement model.
var orthogonal4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Components finds all contiguous walkable regions under
// 4-connectivity. The outer slice is ordered by the x-major scan
// position of each region's first cell; cells within a region appear
// in BFS discovery order.
//
// Time:   O(width·height)
// Memory: O(width·height) for visited flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, len(g.walls))
	var comps [][]Cell

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			i0 := x*g.height + y
			if g.walls[i0] || seen[i0] {
				continue
			}

			// BFS to collect the region.
			queue := []Cell{{X: x, Y: y}}
			seen[i0] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, d := range orthogonal4 {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !g.InBounds(vx, vy) {
						continue
					}
					vi := vx*g.height + vy
					if g.walls[vi] || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, Cell{X: vx, Y: vy})
				}
			}

			comps = append(comps, comp)
		}
	}

	return comps
}
