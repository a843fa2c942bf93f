package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egresslab/egress/core"
)

const tol = core.DefaultTolerance

func TestRect_Accessors(t *testing.T) {
	r := core.Rect{X: 2, Y: 3, W: 4, H: 5}

	assert.Equal(t, 6.0, r.MaxX())
	assert.Equal(t, 8.0, r.MaxY())
	assert.Equal(t, 20.0, r.Area())

	cx, cy := r.Center()
	assert.Equal(t, 4.0, cx)
	assert.Equal(t, 5.5, cy)
}

func TestRect_SharedSide_FourDirections(t *testing.T) {
	base := core.Rect{X: 5, Y: 5, W: 5, H: 5}

	tests := []struct {
		name     string
		other    core.Rect
		wantSide core.Side
		wantLo   float64
		wantHi   float64
	}{
		{"east neighbour", core.Rect{X: 10, Y: 6, W: 3, H: 3}, core.SideEast, 6, 9},
		{"west neighbour", core.Rect{X: 2, Y: 4, W: 3, H: 4}, core.SideWest, 5, 8},
		{"north neighbour", core.Rect{X: 7, Y: 10, W: 6, H: 2}, core.SideNorth, 7, 10},
		{"south neighbour", core.Rect{X: 3, Y: 2, W: 4, H: 3}, core.SideSouth, 5, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, lo, hi, ok := base.SharedSide(tc.other, tol)
			require.True(t, ok)
			assert.Equal(t, tc.wantSide, side)
			assert.InDelta(t, tc.wantLo, lo, 1e-12)
			assert.InDelta(t, tc.wantHi, hi, 1e-12)
		})
	}
}

func TestRect_SharedSide_Rejections(t *testing.T) {
	base := core.Rect{X: 0, Y: 0, W: 5, H: 5}

	tests := []struct {
		name  string
		other core.Rect
	}{
		// Shared corner only: projections touch at a single point.
		{"corner touch", core.Rect{X: 5, Y: 5, W: 3, H: 3}},
		// Edges parallel but separated beyond the tolerance.
		{"gap beyond tolerance", core.Rect{X: 5.02, Y: 1, W: 3, H: 3}},
		{"fully disjoint", core.Rect{X: 20, Y: 20, W: 2, H: 2}},
		// Coincident x-edges but no y-overlap must not fall through to
		// the horizontal probe.
		{"coincident edge, no overlap", core.Rect{X: 5, Y: 9, W: 3, H: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, ok := base.SharedSide(tc.other, tol)
			assert.False(t, ok)
			assert.False(t, base.Adjacent(tc.other, tol))
		})
	}
}

func TestRect_SharedSide_WithinTolerance(t *testing.T) {
	base := core.Rect{X: 0, Y: 0, W: 5, H: 5}
	// A 5 mm seam is below the 10 mm tolerance and still counts as shared.
	near := core.Rect{X: 5.005, Y: 1, W: 2, H: 2}

	side, lo, hi, ok := base.SharedSide(near, tol)
	require.True(t, ok)
	assert.Equal(t, core.SideEast, side)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)
}

func TestRect_Adjacent_Mirrored(t *testing.T) {
	a := core.Rect{X: 0, Y: 0, W: 4, H: 4}
	b := core.Rect{X: 4, Y: 1, W: 4, H: 2}

	sideA, _, _, okA := a.SharedSide(b, tol)
	sideB, _, _, okB := b.SharedSide(a, tol)

	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, core.SideEast, sideA)
	assert.Equal(t, core.SideWest, sideB)
}
