// Package core defines the shared floor-plan data model used by every
// generation and simulation stage: metric rectangles, rooms, doors,
// safety equipment, and the Layout container that threads them through
// the pipeline.
//
// What lives here?
//
//	Rect      — axis-aligned rectangle in floor-plan meters
//	Side      — one of the four rectangle sides (West/East/South/North)
//	Room      — a leaf of the partition: geometry, cosmetic kind, door IDs
//	Door      — a thin opening straddling a shared wall; Exit marks egress
//	Equipment — decorative safety markers (alarms, extinguishers, detectors)
//	Layout    — the growing floor plan: rooms, doors and equipment arenas
//
// Why arenas and integer IDs?
//
//   - Rooms and doors are stored in slices on Layout and referenced by
//     RoomID / DoorID indices, so stages can annotate the plan without
//     sharing pointers or comparing object identity.
//   - A Layout is built by one goroutine at a time (partition → doors →
//     exits) and becomes effectively read-only afterwards; no locking.
//
// Geometry conventions:
//
//   - The floor occupies [0,Width]×[0,Height] with the origin at the
//     south-west corner; Y grows northwards.
//   - Two rooms are adjacent when an edge of one coincides with an edge
//     of the other within a small tolerance (DefaultTolerance, 0.01 m)
//     AND their projections on that edge overlap on an open interval.
//   - Doors are thin rectangles: 1 m wide and 0.4 m deep by default,
//     centered on the shared wall line so they pierce both rooms' wall
//     bands when rasterized. Exit doors extend 0.2 m outside the floor.
//
// Complexity: all accessors are O(1) or O(n) in the number of rooms/doors;
// nothing here allocates beyond the arenas themselves.
package core
