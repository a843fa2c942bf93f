// This file declares the partitioner's Options, the functional Option
// constructors, and sentinel errors.
//
// Errors:
//
//	ErrOptionViolation - a With* option received an invalid value.
package bsp

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrOptionViolation indicates an invalid value passed to a With*
// option; Partition surfaces it before any work happens.
var ErrOptionViolation = errors.New("bsp: invalid option")

// Default partition parameters.
const (
	// DefaultMaxDepth bounds the split recursion.
	DefaultMaxDepth = 4

	// DefaultMinSize is the minimum room extent, in meters, on both axes.
	DefaultMinSize = 3.0
)

// defaultKinds is the cosmetic label pool rooms draw from.
var defaultKinds = []string{
	"Living Room", "Bedroom", "Kitchen", "Bathroom", "Study", "Dining Room", "Storage",
}

// Options bundles the partition parameters. Construct with
// DefaultOptions and refine via With* options.
type Options struct {
	maxDepth int
	minSize  float64
	rng      *rand.Rand
	kinds    []string

	err error // first option violation, surfaced by Partition
}

// DefaultOptions returns the standard parameters: depth 4, minimum room
// size 3 m, time-seeded randomness, the built-in label pool.
func DefaultOptions() Options {
	return Options{
		maxDepth: DefaultMaxDepth,
		minSize:  DefaultMinSize,
		kinds:    defaultKinds,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDepth bounds the recursion depth. Zero yields a single room.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 {
			o.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, depth)
			return
		}
		o.maxDepth = depth
	}
}

// WithMinSize sets the minimum room extent in meters.
func WithMinSize(size float64) Option {
	return func(o *Options) {
		if size <= 0 {
			o.err = fmt.Errorf("%w: min size %v is not positive", ErrOptionViolation, size)
			return
		}
		o.minSize = size
	}
}

// WithSeed derives all randomness from the given seed. A zero seed
// keeps the default time-based seeding.
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

// WithKinds replaces the cosmetic label pool rooms are tagged from.
func WithKinds(kinds []string) Option {
	return func(o *Options) {
		if len(kinds) == 0 {
			o.err = fmt.Errorf("%w: empty kind pool", ErrOptionViolation)
			return
		}
		o.kinds = kinds
	}
}
