// This file implements Exits, the perimeter exit placer.
package connect

import (
	"math/rand"
	"time"

	"github.com/egresslab/egress/core"
)

// Exits cuts exit doors on rooms touching the floor perimeter and
// returns how many were created. Candidate rooms are shuffled, then
// consumed until the requested count is reached (1 or 2 at random
// unless WithExitCount fixes it); each chosen room gets one exit on a
// randomly picked perimeter side, centered on that side and extending
// half a door depth outside the floor.
//
// A layout where no room touches the perimeter yields zero exits with
// a nil error.
func Exits(l *core.Layout, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if l == nil {
		return 0, ErrNilLayout
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	want := o.exitCount
	if want == 0 {
		want = 1 + o.rng.Intn(2)
	}

	boundary := l.BoundaryRooms(o.tolerance)
	o.rng.Shuffle(len(boundary), func(i, j int) {
		boundary[i], boundary[j] = boundary[j], boundary[i]
	})

	created := 0
	for _, id := range boundary {
		if created >= want {
			break
		}
		sides, err := l.PerimeterSides(id, o.tolerance)
		if err != nil {
			return created, err
		}
		if len(sides) == 0 {
			continue
		}

		room, err := l.Room(id)
		if err != nil {
			return created, err
		}
		side := sides[o.rng.Intn(len(sides))]
		door := core.Door{Rect: exitRect(room.Rect, side, o), Exit: true}
		if _, err = l.AddDoor(id, door); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// exitRect builds an exit opening centered on the given perimeter side
// of room rect r, straddling the outer wall line.
func exitRect(r core.Rect, side core.Side, o Options) core.Rect {
	half := o.doorDepth / 2
	switch side {
	case core.SideWest:
		return core.Rect{X: r.X - half, Y: r.Y + (r.H-o.doorWidth)/2, W: o.doorDepth, H: o.doorWidth}
	case core.SideEast:
		return core.Rect{X: r.MaxX() - half, Y: r.Y + (r.H-o.doorWidth)/2, W: o.doorDepth, H: o.doorWidth}
	case core.SideSouth:
		return core.Rect{X: r.X + (r.W-o.doorWidth)/2, Y: r.Y - half, W: o.doorWidth, H: o.doorDepth}
	default: // SideNorth
		return core.Rect{X: r.X + (r.W-o.doorWidth)/2, Y: r.MaxY() - half, W: o.doorWidth, H: o.doorDepth}
	}
}
