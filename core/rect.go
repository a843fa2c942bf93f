// This file implements Rect, the metric axis-aligned rectangle all
// floor-plan geometry is built from, including the edge-coincidence
// test that defines room adjacency.
package core

import "math"

// Rect is an axis-aligned rectangle in floor-plan meters. X, Y is the
// minimum corner; W, H extend towards +x and +y.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the maximum-x edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the maximum-y edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Area returns the rectangle area in square meters.
func (r Rect) Area() float64 { return r.W * r.H }

// Center returns the rectangle midpoint.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SharedSide reports which side of r coincides with an edge of other
// within tol, together with the open overlap interval [lo,hi] of the
// two footprints along that edge. ok is false when no edge coincides or
// the projections merely touch at a point.
//
// Vertical walls are probed before horizontal ones; when the x-edges
// coincide the y-overlap alone decides the outcome.
// Complexity: O(1)
func (r Rect) SharedSide(other Rect, tol float64) (side Side, lo, hi float64, ok bool) {
	eastTouch := math.Abs(r.MaxX()-other.X) < tol
	westTouch := math.Abs(other.MaxX()-r.X) < tol
	if eastTouch || westTouch {
		lo = math.Max(r.Y, other.Y)
		hi = math.Min(r.MaxY(), other.MaxY())
		if hi <= lo {
			return 0, 0, 0, false
		}
		if eastTouch {
			return SideEast, lo, hi, true
		}

		return SideWest, lo, hi, true
	}

	northTouch := math.Abs(r.MaxY()-other.Y) < tol
	southTouch := math.Abs(other.MaxY()-r.Y) < tol
	if northTouch || southTouch {
		lo = math.Max(r.X, other.X)
		hi = math.Min(r.MaxX(), other.MaxX())
		if hi <= lo {
			return 0, 0, 0, false
		}
		if northTouch {
			return SideNorth, lo, hi, true
		}

		return SideSouth, lo, hi, true
	}

	return 0, 0, 0, false
}

// Adjacent reports whether r and other share a wall segment of positive
// length within tol.
// Complexity: O(1)
func (r Rect) Adjacent(other Rect, tol float64) bool {
	_, _, _, ok := r.SharedSide(other, tol)

	return ok
}
