// Package grid turns metric floor plans into binary walkability grids
// and answers cell-level queries about them.
//
// What is a walkability grid?
//
//	A Grid is an immutable (Width·resolution)×(Height·resolution) field
//	of single cells, each either walkable or wall. It is produced by
//	Rasterize from a core.Layout, or decoded from its on-disk byte form
//	by FromBytes. Cells are addressed as (x, y) with x eastwards and y
//	northwards, matching the floor-plan axes.
//
// How rasterization works (in carving order):
//
//  1. Every cell starts as wall.
//  2. Each room interior is carved walkable, inset by the wall
//     thickness (0.1 m default) on all sides, so neighbouring rooms
//     keep a two-sided wall band between them.
//  3. Each door and exit rectangle is carved walkable, clamped to the
//     grid. Door carving runs strictly after room carving and
//     overrides walls, which is what makes openings passable.
//
// Grid geometry uses plain truncation arithmetic: metric coordinates
// map to cells via int(v·resolution), so identical layouts rasterize
// to bit-identical grids on every run.
//
// Beyond rasterization the package offers:
//
//	Components  — connected components of the walkable region under
//	              4-connectivity, for reachability diagnostics
//	DoorCell    — the clamped center cell of a door rectangle
//	ExitCells   — the clamped center cells of all exit doors
//	Bytes       — the persisted form: one byte per cell, 0 walkable,
//	              1 wall, laid out [x][y]
//
// Errors:
//
//	ErrNilLayout       - Rasterize received a nil layout.
//	ErrBadResolution   - resolution not positive, or the raster is empty.
//	ErrBadData         - FromBytes length/content does not match.
//	ErrOptionViolation - a With* option received an invalid value.
package grid
