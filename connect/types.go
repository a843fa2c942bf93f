// This file declares the connectivity Options, functional Option
// constructors, the Report result type, and sentinel errors.
//
// Errors:
//
//	ErrNilLayout       - the layout pointer is nil.
//	ErrNotAdjacent     - door carving was asked for two non-touching rooms.
//	ErrOptionViolation - a With* option received an invalid value.
package connect

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/egresslab/egress/core"
)

// Sentinel errors for connectivity building.
var (
	// ErrNilLayout indicates Rooms or Exits received a nil layout.
	ErrNilLayout = errors.New("connect: nil layout")

	// ErrNotAdjacent indicates a door was requested between rooms that
	// share no wall segment.
	ErrNotAdjacent = errors.New("connect: rooms are not adjacent")

	// ErrOptionViolation indicates an invalid value passed to a With*
	// option.
	ErrOptionViolation = errors.New("connect: invalid option")
)

// Default door geometry, in meters.
const (
	// DefaultDoorWidth is the opening width along the wall.
	DefaultDoorWidth = 1.0

	// DefaultDoorDepth is the opening depth across the wall. Doors are
	// centered on the wall line, so half the depth lands on each side.
	DefaultDoorDepth = 0.4
)

// Options bundles the connectivity parameters shared by Rooms and
// Exits. Construct with DefaultOptions and refine via With* options.
type Options struct {
	tolerance float64
	doorWidth float64
	doorDepth float64
	exitCount int // 0 = draw 1 or 2 at random
	rng       *rand.Rand

	err error // first option violation, surfaced before any work
}

// DefaultOptions returns the standard parameters: 0.01 m adjacency
// tolerance, 1×0.4 m doors, a random 1–2 exit count, time-seeded
// randomness.
func DefaultOptions() Options {
	return Options{
		tolerance: core.DefaultTolerance,
		doorWidth: DefaultDoorWidth,
		doorDepth: DefaultDoorDepth,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance sets the edge-coincidence slack in meters.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance %v is not positive", ErrOptionViolation, tol)
			return
		}
		o.tolerance = tol
	}
}

// WithDoorWidth sets the opening width along the wall, in meters.
func WithDoorWidth(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: door width %v is not positive", ErrOptionViolation, w)
			return
		}
		o.doorWidth = w
	}
}

// WithDoorDepth sets the opening depth across the wall, in meters.
func WithDoorDepth(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: door depth %v is not positive", ErrOptionViolation, d)
			return
		}
		o.doorDepth = d
	}
}

// WithExitCount fixes the number of exits Exits tries to place. Zero
// restores the default random draw of 1 or 2.
func WithExitCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: exit count %d is negative", ErrOptionViolation, n)
			return
		}
		o.exitCount = n
	}
}

// WithSeed derives exit-placement randomness from the given seed. A
// zero seed keeps the default time-based seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			return
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source directly, overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.rng = rng
	}
}

// Report describes the outcome of a Rooms call.
type Report struct {
	// Doors lists the carved door IDs in creation order.
	Doors []core.DoorID

	// Unreached lists rooms left outside the spanning tree when the
	// loop ended, in ID order. Empty means full connectivity.
	Unreached []core.RoomID
}

// Connected reports whether every room joined the spanning tree.
func (r *Report) Connected() bool { return len(r.Unreached) == 0 }
