// Package pathfind implements weighted A* routing over walkability
// grids with a 32-direction movement model.
//
// Movement model:
//
//	Candidate steps are the 32 compass headings at 11.25° spacing, each
//	rounded at radius 4 and reduced to lowest terms. That yields the 8
//	unit steps plus 24 knight-like jumps — (±2,±1), (±1,±2), (±3,±2),
//	(±2,±3), (±4,±1), (±1,±4) — with Euclidean step costs 1, √2, √5,
//	√13 and √17. Jumps let paths cut smooth near-straight lines across
//	open rooms instead of staircasing.
//
// Step validity:
//
//   - Every step needs an in-bounds, walkable destination cell.
//   - Unit diagonals additionally require both orthogonally adjacent
//     cells to be walkable, so paths cannot clip wall corners.
//   - Longer jumps are validated by destination only. WithStrictJumps
//     extends validation to every intermediate cell the jump segment
//     crosses, closing the thin-wall tunnelling loophole at the price
//     of rejecting some jump-only routes.
//
// Endpoints are clamped into the grid; an unwalkable endpoint is
// replaced by the first walkable cell found in a ±SnapRadius square
// scan (5 cells by default). If no substitute exists the search fails
// with ErrNoPath.
//
// Search: A* over f = g + h with Euclidean h, a container/heap min-heap
// under the lazy-decrease-key pattern (duplicates pushed, stale entries
// skipped via the closed set), and a g-cost map for push-time pruning.
// The heuristic is consistent for these step costs, so the first pop of
// the goal is optimal: the returned path minimizes the summed step cost
// among all paths obeying the validity rules.
//
// Complexity:
//
//   - Time:  O(C·d·log C) with C walkable cells and d = 32 directions.
//   - Space: O(C) for the cost, parent and closed maps.
//
// Errors:
//
//	ErrNilGrid         - the grid pointer is nil.
//	ErrNoPath          - no valid path exists (or no endpoint substitute).
//	ErrBudget          - the expanded-node budget was exhausted.
//	ErrOptionViolation - a With* option received an invalid value.
package pathfind
