// This file implements Rooms, the Prim-style door spanning tree over
// the geometric room adjacency relation.
package connect

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/egresslab/egress/core"
)

// Rooms spans the layout's rooms with doors so that, budget permitting,
// every room is reachable from room 0. One door is carved per adopted
// adjacency edge, at the midpoint of the shared wall segment. The
// returned Report lists the carved doors and any rooms the tree could
// not reach; partial coverage is not an error.
//
// Complexity: O(rooms²) adjacency precomputation plus O(rooms²) per
// carved door.
func Rooms(l *core.Layout, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if l == nil {
		return nil, ErrNilLayout
	}

	report := &Report{}
	n := len(l.Rooms)
	if n == 0 {
		return report, nil
	}

	adj := adjacency(l, o.tolerance)

	connected := mapset.New[core.RoomID]()
	connected.Put(l.Rooms[0].ID)
	budget := 2 * n

	for connected.Size() < n && len(report.Doors) < budget {
		added := false

	scan:
		// Frontier scan restarts from room 0 after every adoption, so
		// low-ID rooms anchor as many doors as their adjacency allows.
		for i := range l.Rooms {
			if !connected.Has(l.Rooms[i].ID) {
				continue
			}
			for _, j := range adj[i] {
				if connected.Has(j) {
					continue
				}
				id, err := carveDoor(l, l.Rooms[i].ID, j, o)
				if err != nil {
					return report, err
				}
				report.Doors = append(report.Doors, id)
				connected.Put(j)
				added = true
				break scan
			}
		}

		if !added {
			break
		}
	}

	for i := range l.Rooms {
		if !connected.Has(l.Rooms[i].ID) {
			report.Unreached = append(report.Unreached, l.Rooms[i].ID)
		}
	}

	return report, nil
}

// adjacency returns, per room index, the IDs of adjacent rooms in
// ascending ID order.
func adjacency(l *core.Layout, tol float64) [][]core.RoomID {
	adj := make([][]core.RoomID, len(l.Rooms))
	for i := range l.Rooms {
		for j := range l.Rooms {
			if i == j {
				continue
			}
			if l.Rooms[i].Rect.Adjacent(l.Rooms[j].Rect, tol) {
				adj[i] = append(adj[i], l.Rooms[j].ID)
			}
		}
	}

	return adj
}

// carveDoor registers a door anchored at room owner, straddling the
// wall shared with room other at the overlap midpoint.
func carveDoor(l *core.Layout, owner, other core.RoomID, o Options) (core.DoorID, error) {
	ownerRoom, err := l.Room(owner)
	if err != nil {
		return 0, err
	}
	otherRoom, err := l.Room(other)
	if err != nil {
		return 0, err
	}

	side, lo, hi, ok := ownerRoom.Rect.SharedSide(otherRoom.Rect, o.tolerance)
	if !ok {
		return 0, ErrNotAdjacent
	}

	mid := (lo + hi) / 2

	return l.AddDoor(owner, core.Door{Rect: doorRect(ownerRoom.Rect, side, mid, o)})
}

// doorRect builds the opening rectangle straddling the given side of
// room rect r, centered on the wall line at coordinate mid.
func doorRect(r core.Rect, side core.Side, mid float64, o Options) core.Rect {
	half := o.doorDepth / 2
	switch side {
	case core.SideEast:
		return core.Rect{X: r.MaxX() - half, Y: mid - o.doorWidth/2, W: o.doorDepth, H: o.doorWidth}
	case core.SideWest:
		return core.Rect{X: r.X - half, Y: mid - o.doorWidth/2, W: o.doorDepth, H: o.doorWidth}
	case core.SideNorth:
		return core.Rect{X: mid - o.doorWidth/2, Y: r.MaxY() - half, W: o.doorWidth, H: o.doorDepth}
	default: // SideSouth
		return core.Rect{X: mid - o.doorWidth/2, Y: r.Y - half, W: o.doorWidth, H: o.doorDepth}
	}
}
