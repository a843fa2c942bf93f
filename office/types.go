// This file declares the office generator's Options, the functional
// Option constructors, and sentinel errors.
//
// Errors:
//
//	ErrBadGeometry     - the configured pieces do not fit together.
//	ErrOptionViolation - a With* option received an invalid value.
package office

import (
	"errors"
	"fmt"
)

// Sentinel errors for structured generation.
var (
	// ErrBadGeometry indicates a parameter combination whose pieces
	// cannot fit on the floor, e.g. a corridor wider than the floor or
	// doors wider than an office.
	ErrBadGeometry = errors.New("office: geometry does not fit")

	// ErrOptionViolation indicates an invalid value passed to a With*
	// option.
	ErrOptionViolation = errors.New("office: invalid option")
)

// Default floor parameters.
const (
	// DefaultFloorWidth and DefaultFloorHeight are the floor extents
	// in meters.
	DefaultFloorWidth  = 50.0
	DefaultFloorHeight = 30.0

	// DefaultCorridorWidth is the central corridor breadth in meters.
	DefaultCorridorWidth = 3.0

	// DefaultOfficesPerSide is how many offices line each side of the
	// corridor.
	DefaultOfficesPerSide = 5

	// DefaultDoorWidth is the office door width in meters.
	DefaultDoorWidth = 0.9
)

// exitWidth is the corridor-end exit breadth in meters.
const exitWidth = 1.2

// doorDepth is the total straddle of a door rectangle across its wall.
const doorDepth = 0.4

// Options bundles the generator parameters. Construct with
// DefaultOptions and refine via With* options.
type Options struct {
	floorW, floorH float64
	corridor       float64
	perSide        int
	doorWidth      float64

	err error // first option violation, surfaced by Build
}

// DefaultOptions returns the standard parameters: a 50×30 m floor, a
// 3 m corridor, five 0.9 m-doored offices per side.
func DefaultOptions() Options {
	return Options{
		floorW:    DefaultFloorWidth,
		floorH:    DefaultFloorHeight,
		corridor:  DefaultCorridorWidth,
		perSide:   DefaultOfficesPerSide,
		doorWidth: DefaultDoorWidth,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithFloorSize sets the floor extents in meters.
func WithFloorSize(width, height float64) Option {
	return func(o *Options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: floor %v×%v is not positive", ErrOptionViolation, width, height)
			return
		}
		o.floorW, o.floorH = width, height
	}
}

// WithCorridorWidth sets the central corridor breadth in meters.
func WithCorridorWidth(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: corridor width %v is not positive", ErrOptionViolation, w)
			return
		}
		o.corridor = w
	}
}

// WithOfficesPerSide sets the office count along each corridor side.
func WithOfficesPerSide(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: offices per side %d is not positive", ErrOptionViolation, n)
			return
		}
		o.perSide = n
	}
}

// WithDoorWidth sets the office door width in meters.
func WithDoorWidth(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: door width %v is not positive", ErrOptionViolation, w)
			return
		}
		o.doorWidth = w
	}
}
