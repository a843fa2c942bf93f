// Package connect wires the rooms of a partitioned floor plan together:
// it spans them with doors and cuts exit openings on the perimeter.
//
// What lives here?
//
//	Rooms(l, opts...) — grows a Prim-style spanning tree over the room
//	  adjacency relation, carving one door per accepted edge at the
//	  midpoint of the shared wall segment. Door placement follows the
//	  side probe order of core.Rect.SharedSide, so results are fully
//	  deterministic for a given layout.
//	Exits(l, opts...)  — shuffles the rooms touching the floor perimeter
//	  and cuts 1–2 exit doors (or a fixed count) centered on a randomly
//	  chosen perimeter side. Exit doors extend half a door depth outside
//	  the floor.
//
// Spanning behavior:
//
//   - The tree starts at room 0. Each round scans connected rooms in ID
//     order and adopts the first unconnected adjacent neighbour.
//   - Door carving is budgeted at 2×roomCount. Exhausting the budget or
//     running out of adoptable neighbours ends the loop; rooms left
//     outside the tree are reported in Report.Unreached. Partial
//     connectivity is a reportable condition, never an error.
//
// Door geometry: openings are DoorWidth (1 m) wide and DoorDepth
// (0.4 m) deep, centered on the wall line so they pierce both wall
// bands once rasterized. Exit doors center on the room's perimeter side
// rather than a shared overlap.
//
// Complexity: adjacency is O(rooms²); the spanning loop is O(rooms²)
// per carved door in the worst case, with room counts small enough
// (≤ 2^depth) that this never matters.
//
// Errors:
//
//	ErrNilLayout       - the layout pointer is nil.
//	ErrNotAdjacent     - door carving was asked for two non-touching rooms.
//	ErrOptionViolation - a With* option received an invalid value.
package connect
