// Package evac simulates a building evacuation over a walkability grid
// and reports per-agent and aggregate outcomes.
//
// What a simulation does:
//
//  1. Place the requested number of agents on distinct random walkable
//     cells (fewer when the floor is smaller than the headcount).
//  2. Assign each agent its nearest exit by straight-line distance;
//     ties keep the earliest exit in the given order.
//  3. Route every agent with pathfind.Find, fanned out over a bounded
//     worker pool.
//  4. Convert each path into metric distance, walking time and step
//     count, then aggregate the success rate (escapees over the
//     requested headcount), the per-exit load and the time of the
//     slowest escapee.
//
// Placement is the only random choice and happens before any worker
// starts, so a fixed seed yields identical results at every worker
// count.
//
// An unroutable agent is an outcome, not a failure: it is recorded
// with Escaped=false and the run carries on. Only malformed input or a
// cancelled context abort the simulation.
//
// Complexity: O(P·C·d·log C) time for P placed agents on C walkable
// cells with d=32 directions, divided across the worker pool; O(P·L)
// space for the retained paths.
//
// Errors:
//
//	ErrNilGrid         - the grid pointer is nil.
//	ErrNoExits         - the exit list is empty.
//	ErrNoWalkable      - the grid has no walkable cells at all.
//	ErrOptionViolation - a With* option received an invalid value.
package evac
