// This file implements Build, the deterministic corridor-and-offices
// floor generator.
package office

import (
	"fmt"

	"github.com/egresslab/egress/core"
)

// Build assembles the office floor described in the package doc and
// returns it as a plain layout, so bsp output and office output feed
// the same rasterizer.
//
// Room 0 is the corridor and owns every door. Offices follow in column
// order, top before bottom.
func Build(opts ...Option) (*core.Layout, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	officeW := o.floorW / float64(o.perSide)
	corridorY := (o.floorH - o.corridor) / 2
	switch {
	case corridorY <= 0:
		return nil, fmt.Errorf("%w: %v m corridor fills the %v m floor height",
			ErrBadGeometry, o.corridor, o.floorH)
	case o.corridor < exitWidth:
		return nil, fmt.Errorf("%w: %v m corridor is narrower than the %v m exits",
			ErrBadGeometry, o.corridor, exitWidth)
	case officeW < o.doorWidth:
		return nil, fmt.Errorf("%w: %v m doors exceed the %v m office width",
			ErrBadGeometry, o.doorWidth, officeW)
	}

	l, err := core.NewLayout(o.floorW, o.floorH)
	if err != nil {
		return nil, fmt.Errorf("office: %w", err)
	}

	b := builder{
		layout:    l,
		opts:      o,
		corridorY: corridorY,
		officeW:   officeW,
	}
	b.corridor = l.AddRoom(
		core.Rect{X: 0, Y: corridorY, W: o.floorW, H: o.corridor}, "Corridor")

	for i := 0; i < o.perSide; i++ {
		if err := b.column(i); err != nil {
			return nil, err
		}
	}
	if err := b.exits(); err != nil {
		return nil, err
	}
	b.equipment()

	return l, nil
}

// builder carries the fixed geometry through the assembly steps.
type builder struct {
	layout    *core.Layout
	opts      Options
	corridor  core.RoomID
	corridorY float64 // corridor bottom edge; equals the office height
	officeW   float64
}

// column adds the top and bottom office of column i, each with a door
// through its corridor wall.
func (b *builder) column(i int) error {
	x := float64(i) * b.officeW
	officeH := b.corridorY

	b.layout.AddRoom(
		core.Rect{X: x, Y: b.layout.Height - officeH, W: b.officeW, H: officeH}, "Office")
	if err := b.door(x, b.layout.Height-officeH); err != nil {
		return err
	}

	b.layout.AddRoom(core.Rect{X: x, Y: 0, W: b.officeW, H: officeH}, "Office")

	return b.door(x, officeH)
}

// door adds an office door centered on the column at x, straddling the
// corridor wall plane at wallY.
func (b *builder) door(x, wallY float64) error {
	rect := core.Rect{
		X: x + (b.officeW-b.opts.doorWidth)/2,
		Y: wallY - doorDepth/2,
		W: b.opts.doorWidth,
		H: doorDepth,
	}
	_, err := b.layout.AddDoor(b.corridor, core.Door{Rect: rect})

	return err
}

// exits places one exit at each corridor end, centered on the corridor
// breadth and straddling the perimeter.
func (b *builder) exits() error {
	y := b.corridorY + (b.opts.corridor-exitWidth)/2
	for _, x := range []float64{0, b.layout.Width} {
		rect := core.Rect{X: x - doorDepth/2, Y: y, W: doorDepth, H: exitWidth}
		if _, err := b.layout.AddDoor(b.corridor, core.Door{Rect: rect, Exit: true}); err != nil {
			return err
		}
	}

	return nil
}

// equipment scatters the safety markers: alarm, extinguisher and
// emergency light beside each exit, a smoke detector in every office
// and one every 10 m along the corridor.
func (b *builder) equipment() {
	l := b.layout
	y := b.corridorY + (b.opts.corridor-exitWidth)/2
	for _, west := range []bool{true, false} {
		ex := l.Width - exitWidth
		beside := ex - 1
		if west {
			ex = 0
			beside = exitWidth + 1
		}
		l.Equipment = append(l.Equipment,
			core.Equipment{Kind: "fire_alarm", X: beside, Y: y},
			core.Equipment{Kind: "extinguisher", X: beside, Y: y + 1},
			core.Equipment{Kind: "emergency_light", X: ex + exitWidth/2, Y: y + exitWidth},
		)
	}

	for _, room := range l.Rooms {
		if room.Kind != "Office" {
			continue
		}
		l.Equipment = append(l.Equipment, core.Equipment{
			Kind: "smoke_detector",
			X:    room.Rect.X + room.Rect.W/2,
			Y:    room.Rect.Y + room.Rect.H/2,
		})
	}

	mid := b.corridorY + b.opts.corridor/2
	for i := 1; i < int(l.Width/10); i++ {
		l.Equipment = append(l.Equipment, core.Equipment{
			Kind: "smoke_detector", X: float64(i) * 10, Y: mid,
		})
	}
}
