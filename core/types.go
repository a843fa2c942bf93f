// This file declares the floor-plan value types (Rect, Side, Room, Door,
// Equipment), the Layout container, sentinel errors, and the NewLayout
// constructor.
//
// Errors:
//
//	ErrBadDimensions - layout width or height is not strictly positive.
//	ErrRoomNotFound  - a RoomID does not index an existing room.
//	ErrDoorNotFound  - a DoorID does not index an existing door.
package core

import "errors"

// Sentinel errors for layout construction and lookup.
var (
	// ErrBadDimensions indicates a non-positive floor width or height.
	ErrBadDimensions = errors.New("core: layout dimensions must be positive")

	// ErrRoomNotFound indicates an operation referenced a non-existent room.
	ErrRoomNotFound = errors.New("core: room not found")

	// ErrDoorNotFound indicates an operation referenced a non-existent door.
	ErrDoorNotFound = errors.New("core: door not found")
)

// DefaultTolerance is the metric slack used when testing whether two
// edges coincide. Partition arithmetic is exact, so the tolerance only
// needs to absorb float64 rounding.
const DefaultTolerance = 0.01

// RoomID indexes a Room inside Layout.Rooms.
type RoomID int

// DoorID indexes a Door inside Layout.Doors.
type DoorID int

// Side identifies one side of a rectangle. West is the minimum-x edge,
// East the maximum-x edge, South the minimum-y edge, North the
// maximum-y edge.
type Side uint8

// Rectangle sides, in the order adjacency checks probe them.
const (
	SideEast Side = iota
	SideWest
	SideNorth
	SideSouth
)

// String returns the compass name of the side.
func (s Side) String() string {
	switch s {
	case SideEast:
		return "east"
	case SideWest:
		return "west"
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	default:
		return "unknown"
	}
}

// Door is a thin rectangular opening straddling a wall. Exit marks a
// door leading out of the floor rather than between two rooms.
type Door struct {
	// Rect is the carved opening in floor-plan meters. One dimension is
	// the door width, the other the door depth.
	Rect Rect

	// Exit is true for perimeter egress doors.
	Exit bool
}

// Room is a leaf of the space partition.
//
// Geometry never changes after the room is added; Doors accumulates the
// IDs of openings whose placement this room anchored. A door appears in
// exactly one room's list but represents a bidirectional opening.
type Room struct {
	// ID is the room's index inside its Layout.
	ID RoomID

	// Rect is the room's footprint in floor-plan meters.
	Rect Rect

	// Kind is a cosmetic label ("Kitchen", "Storage", ...). It has no
	// effect on rasterization or routing.
	Kind string

	// Doors lists the openings anchored at this room.
	Doors []DoorID
}

// Equipment is a decorative safety marker placed by structured
// generators. The rasterizer and router ignore it.
type Equipment struct {
	// Kind names the marker ("fire_alarm", "smoke_detector", ...).
	Kind string

	// X, Y is the marker position in floor-plan meters.
	X, Y float64
}

// Layout is the floor plan under construction: the generation context
// handed from the partitioner to the connectivity builder to the exit
// placer, then consumed read-only by the rasterizer.
type Layout struct {
	// Width and Height are the floor extents in meters.
	Width, Height float64

	// Rooms holds every partition leaf; Room.ID equals its index here.
	Rooms []Room

	// Doors holds every opening; Door IDs index this slice.
	Doors []Door

	// Equipment holds optional safety markers.
	Equipment []Equipment
}

// NewLayout creates an empty Layout covering [0,width]×[0,height].
// Complexity: O(1)
func NewLayout(width, height float64) (*Layout, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &Layout{Width: width, Height: height}, nil
}
