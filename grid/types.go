// This file declares the Cell coordinate type, rasterization Options,
// functional Option constructors, and sentinel errors.
//
// Errors:
//
//	ErrNilLayout       - Rasterize received a nil layout.
//	ErrBadResolution   - resolution not positive, or the raster is empty.
//	ErrBadData         - FromBytes length/content does not match.
//	ErrOptionViolation - a With* option received an invalid value.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrNilLayout indicates Rasterize received a nil layout.
	ErrNilLayout = errors.New("grid: nil layout")

	// ErrBadResolution indicates a non-positive resolution or a raster
	// with zero cells.
	ErrBadResolution = errors.New("grid: bad resolution")

	// ErrBadData indicates FromBytes received a payload whose length or
	// cell values do not match the declared dimensions.
	ErrBadData = errors.New("grid: bad cell data")

	// ErrOptionViolation indicates an invalid value passed to a With*
	// option.
	ErrOptionViolation = errors.New("grid: invalid option")
)

// DefaultWallThickness is the room interior inset, in meters, carved
// as wall on every side during rasterization.
const DefaultWallThickness = 0.1

// Cell is a grid coordinate: x eastwards, y northwards, both zero-based.
type Cell struct {
	X, Y int
}

// Options bundles the rasterization parameters. Construct with
// DefaultOptions and refine via With* options.
type Options struct {
	wallThickness float64

	err error // first option violation, surfaced by Rasterize
}

// DefaultOptions returns the standard parameters: 0.1 m wall thickness.
func DefaultOptions() Options {
	return Options{wallThickness: DefaultWallThickness}
}

// Option mutates Options.
type Option func(*Options)

// WithWallThickness sets the room inset in meters. Zero disables the
// inset so room interiors touch their boundaries.
func WithWallThickness(m float64) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: wall thickness %v is negative", ErrOptionViolation, m)
			return
		}
		o.wallThickness = m
	}
}
