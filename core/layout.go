// This file implements the Layout mutators and queries used by the
// generation stages: room and door registration, exit filtering, and
// perimeter probing for exit placement.
package core

import "math"

// AddRoom appends a room with the given footprint and cosmetic kind and
// returns its ID. IDs are dense: the n-th added room has ID n-1.
// Complexity: O(1) amortized
func (l *Layout) AddRoom(rect Rect, kind string) RoomID {
	id := RoomID(len(l.Rooms))
	l.Rooms = append(l.Rooms, Room{ID: id, Rect: rect, Kind: kind})

	return id
}

// AddDoor registers a door anchored at room owner and returns its ID.
// Complexity: O(1) amortized
func (l *Layout) AddDoor(owner RoomID, d Door) (DoorID, error) {
	if owner < 0 || int(owner) >= len(l.Rooms) {
		return 0, ErrRoomNotFound
	}
	id := DoorID(len(l.Doors))
	l.Doors = append(l.Doors, d)
	l.Rooms[owner].Doors = append(l.Rooms[owner].Doors, id)

	return id, nil
}

// Room returns a pointer to the room with the given ID.
func (l *Layout) Room(id RoomID) (*Room, error) {
	if id < 0 || int(id) >= len(l.Rooms) {
		return nil, ErrRoomNotFound
	}

	return &l.Rooms[id], nil
}

// Door returns the door with the given ID.
func (l *Layout) Door(id DoorID) (Door, error) {
	if id < 0 || int(id) >= len(l.Doors) {
		return Door{}, ErrDoorNotFound
	}

	return l.Doors[id], nil
}

// ExitDoors returns the doors marked as exits, in registration order.
// Complexity: O(doors)
func (l *Layout) ExitDoors() []Door {
	var exits []Door
	for _, d := range l.Doors {
		if d.Exit {
			exits = append(exits, d)
		}
	}

	return exits
}

// Bounds returns the floor rectangle [0,Width]×[0,Height].
func (l *Layout) Bounds() Rect {
	return Rect{X: 0, Y: 0, W: l.Width, H: l.Height}
}

// PerimeterSides returns the sides of room id that lie on the floor
// perimeter within tol, in probe order West, South, East, North.
// Complexity: O(1)
func (l *Layout) PerimeterSides(id RoomID, tol float64) ([]Side, error) {
	room, err := l.Room(id)
	if err != nil {
		return nil, err
	}

	var sides []Side
	r := room.Rect
	if math.Abs(r.X) < tol {
		sides = append(sides, SideWest)
	}
	if math.Abs(r.Y) < tol {
		sides = append(sides, SideSouth)
	}
	if math.Abs(r.MaxX()-l.Width) < tol {
		sides = append(sides, SideEast)
	}
	if math.Abs(r.MaxY()-l.Height) < tol {
		sides = append(sides, SideNorth)
	}

	return sides, nil
}

// BoundaryRooms returns the IDs of rooms with at least one side on the
// floor perimeter, in ID order.
// Complexity: O(rooms)
func (l *Layout) BoundaryRooms(tol float64) []RoomID {
	var ids []RoomID
	for _, room := range l.Rooms {
		sides, _ := l.PerimeterSides(room.ID, tol)
		if len(sides) > 0 {
			ids = append(ids, room.ID)
		}
	}

	return ids
}
