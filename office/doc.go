// Package office builds a structured, fully deterministic floor plan:
// a central corridor flanked by two mirrored office rows, one corridor
// door per office, an exit at each corridor end and safety equipment
// markers.
//
// Unlike bsp, nothing here is random: identical options give identical
// layouts, which makes the package the stock fixture for demos and
// regression baselines.
//
// Geometry with the default options:
//
//	 y=30 ┌──────┬──────┬──────┬──────┬──────┐
//	      │  1   │  3   │  5   │  7   │  9   │   offices 10 m × 13.5 m
//	y=16.5├──═───┴──═───┴──═───┴──═───┴──═───┤
//	 exit ═           corridor (room 0)      ═ exit
//	y=13.5├──═───┬──═───┬──═───┬──═───┬──═───┤
//	      │  2   │  4   │  6   │  8   │  10  │   offices 10 m × 13.5 m
//	  y=0 └──────┴──────┴──────┴──────┴──────┘
//	      x=0                               x=50
//
// Office doors are 0.9 m wide, centered on their office, and straddle
// the corridor wall by 0.2 m on each side so that rasterization always
// carves a passable opening through both wall bands. Exits are 1.2 m
// wide, centered on the corridor breadth, straddling the perimeter.
// The corridor owns every door.
//
// Errors:
//
//	ErrBadGeometry     - the configured pieces do not fit together.
//	ErrOptionViolation - a With* option received an invalid value.
package office
