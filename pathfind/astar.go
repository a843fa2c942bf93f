// This file implements Find, the weighted A* search, with its
// endpoint preprocessing and the lazy-decrease-key open heap.
package pathfind

import (
	"container/heap"
	"math"

	"github.com/egresslab/egress/grid"
)

// Find routes from start to goal over the grid's walkable cells using
// the 32-direction movement model and returns the cell path, start and
// goal included. Endpoints are clamped into the grid and, when
// unwalkable, substituted within the snap radius.
//
// The returned path minimizes the summed Euclidean step cost among all
// paths obeying the validity rules; ErrNoPath reports unreachability.
//
// Complexity: O(C·d·log C) time, O(C) space, with C walkable cells and
// d = 32 directions.
func Find(g *grid.Grid, start, goal grid.Cell, opts ...Option) ([]grid.Cell, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	start = clampCell(g, start)
	goal = clampCell(g, goal)

	var ok bool
	if start, ok = snapWalkable(g, start, o.snapRadius); !ok {
		return nil, ErrNoPath
	}
	if goal, ok = snapWalkable(g, goal, o.snapRadius); !ok {
		return nil, ErrNoPath
	}

	s := &searcher{
		grid:     g,
		opts:     o,
		goal:     goal,
		gCost:    map[grid.Cell]float64{start: 0},
		cameFrom: make(map[grid.Cell]grid.Cell),
		closed:   make(map[grid.Cell]bool),
	}
	heap.Init(&s.open)
	heap.Push(&s.open, &openItem{cell: start, f: euclid(start, goal)})

	return s.process(start)
}

// searcher holds the mutable state for a single Find execution.
type searcher struct {
	grid     *grid.Grid              // read-only during the search
	opts     Options                 // validated configuration
	goal     grid.Cell               // snap-adjusted target
	gCost    map[grid.Cell]float64   // best known cost from start
	cameFrom map[grid.Cell]grid.Cell // predecessor on the best path
	closed   map[grid.Cell]bool      // cells with finalized cost
	open     openPQ                  // min-heap on f = g + h
}

// process runs the main loop: pop the cheapest open cell, finalize it,
// stop on the goal, otherwise relax its neighbours.
func (s *searcher) process(start grid.Cell) ([]grid.Cell, error) {
	expanded := 0
	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(*openItem)
		cur := item.cell

		// Stale lazy-decrease-key duplicate.
		if s.closed[cur] {
			continue
		}
		s.closed[cur] = true

		if cur == s.goal {
			return s.reconstruct(start, cur), nil
		}

		expanded++
		if s.opts.maxExpand > 0 && expanded > s.opts.maxExpand {
			return nil, ErrBudget
		}

		s.relax(cur)
	}

	return nil, ErrNoPath
}

// relax probes all 32 steps out of cur, improving neighbour costs and
// pushing fresh heap entries for strict improvements only.
func (s *searcher) relax(cur grid.Cell) {
	base := s.gCost[cur]
	for i := range steps {
		st := &steps[i]
		next := grid.Cell{X: cur.X + st.dx, Y: cur.Y + st.dy}
		if !s.grid.Walkable(next.X, next.Y) {
			continue
		}
		if !s.stepValid(cur, st) {
			continue
		}

		newG := base + st.cost
		if old, seen := s.gCost[next]; seen && newG >= old {
			continue
		}
		s.gCost[next] = newG
		s.cameFrom[next] = cur
		heap.Push(&s.open, &openItem{cell: next, f: newG + euclid(next, s.goal)})
	}
}

// stepValid applies the per-step walkability rules beyond the
// destination check: the corner-cut rule for unit diagonals and, under
// strict mode, the crossed-cell rule for jumps.
func (s *searcher) stepValid(cur grid.Cell, st *step) bool {
	if abs(st.dx) == 1 && abs(st.dy) == 1 {
		return s.grid.Walkable(cur.X+st.dx, cur.Y) && s.grid.Walkable(cur.X, cur.Y+st.dy)
	}

	if s.opts.strictJumps {
		for _, off := range st.crossed {
			if !s.grid.Walkable(cur.X+off[0], cur.Y+off[1]) {
				return false
			}
		}
	}

	return true
}

// reconstruct walks the predecessor chain from the goal back to start
// and reverses it in place.
func (s *searcher) reconstruct(start, cur grid.Cell) []grid.Cell {
	path := []grid.Cell{cur}
	for cur != start {
		cur = s.cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// snapWalkable substitutes an unwalkable cell by the first walkable
// cell of a ±radius square scan (x-major, both axes ascending).
func snapWalkable(g *grid.Grid, c grid.Cell, radius int) (grid.Cell, bool) {
	if g.WalkableAt(c) {
		return c, true
	}

	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			n := grid.Cell{X: c.X + dx, Y: c.Y + dy}
			if g.WalkableAt(n) {
				return n, true
			}
		}
	}

	return grid.Cell{}, false
}

// clampCell bounds c to the grid rectangle.
func clampCell(g *grid.Grid, c grid.Cell) grid.Cell {
	return grid.Cell{
		X: min(max(c.X, 0), g.Width()-1),
		Y: min(max(c.Y, 0), g.Height()-1),
	}
}

// euclid is the straight-line distance between cell centers, in cells.
func euclid(a, b grid.Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Length returns the sum of Euclidean segment lengths along path, in
// cells. Empty and single-cell paths have length 0.
func Length(path []grid.Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += euclid(path[i-1], path[i])
	}

	return total
}

// openItem is one heap entry: a cell and its f = g + h priority.
type openItem struct {
	cell grid.Cell
	f    float64
}

// openPQ is a min-heap of *openItem ordered by f ascending, operated
// under lazy-decrease-key: improvements push duplicates, stale entries
// are skipped on pop via the closed set.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq openPQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *openItem.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
