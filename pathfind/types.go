// This file declares the routing Options, functional Option
// constructors, and sentinel errors.
//
// Errors:
//
//	ErrNilGrid         - the grid pointer is nil.
//	ErrNoPath          - no valid path exists (or no endpoint substitute).
//	ErrBudget          - the expanded-node budget was exhausted.
//	ErrOptionViolation - a With* option received an invalid value.
package pathfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for routing.
var (
	// ErrNilGrid indicates Find received a nil grid.
	ErrNilGrid = errors.New("pathfind: nil grid")

	// ErrNoPath indicates the goal is unreachable from the start under
	// the movement rules. Callers usually treat this as data, not as a
	// failure.
	ErrNoPath = errors.New("pathfind: no path")

	// ErrBudget indicates the search expanded more nodes than
	// WithMaxExpand allows.
	ErrBudget = errors.New("pathfind: node budget exhausted")

	// ErrOptionViolation indicates an invalid value passed to a With*
	// option.
	ErrOptionViolation = errors.New("pathfind: invalid option")
)

// DefaultSnapRadius is the half-extent, in cells, of the square scan
// that substitutes an unwalkable endpoint.
const DefaultSnapRadius = 5

// Options bundles the routing parameters. Construct with
// DefaultOptions and refine via With* options.
type Options struct {
	snapRadius  int
	maxExpand   int // 0 = unbounded
	strictJumps bool

	err error // first option violation, surfaced by Find
}

// DefaultOptions returns the standard parameters: snap radius 5, no
// node budget, destination-only jump validation.
func DefaultOptions() Options {
	return Options{snapRadius: DefaultSnapRadius}
}

// Option mutates Options.
type Option func(*Options)

// WithSnapRadius sets the endpoint-substitution scan radius in cells.
// Zero disables substitution: unwalkable endpoints fail immediately.
func WithSnapRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: snap radius %d is negative", ErrOptionViolation, r)
			return
		}
		o.snapRadius = r
	}
}

// WithMaxExpand bounds the number of nodes the search may expand.
// Zero removes the bound.
func WithMaxExpand(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max expand %d is negative", ErrOptionViolation, n)
			return
		}
		o.maxExpand = n
	}
}

// WithStrictJumps extends jump validation to every intermediate cell
// the jump segment crosses. See the package doc for the trade-off.
func WithStrictJumps() Option {
	return func(o *Options) { o.strictJumps = true }
}
