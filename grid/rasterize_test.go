package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egresslab/egress/core"
	"github.com/egresslab/egress/grid"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// splitFloor builds a 20×15 floor cut into west and east halves, with
// no doors yet.
func splitFloor(t *testing.T) *core.Layout {
	t.Helper()
	l, err := core.NewLayout(20, 15)
	require.NoError(t, err)
	l.AddRoom(core.Rect{X: 0, Y: 0, W: 10, H: 15}, "Kitchen")
	l.AddRoom(core.Rect{X: 10, Y: 0, W: 10, H: 15}, "Living Room")

	return l
}

// ---------------------------------------------------------------------------
// rasterization semantics
// ---------------------------------------------------------------------------

func TestRasterize_Dimensions(t *testing.T) {
	l := splitFloor(t)

	g, err := grid.Rasterize(l, 10)
	require.NoError(t, err)
	assert.Equal(t, 200, g.Width())
	assert.Equal(t, 150, g.Height())
	assert.Equal(t, 10, g.Resolution())
}

func TestRasterize_WallBands(t *testing.T) {
	l := splitFloor(t)

	g, err := grid.Rasterize(l, 10)
	require.NoError(t, err)

	// Room interiors are inset one cell (0.1 m at 10 cells/m).
	assert.True(t, g.Walkable(1, 1))
	assert.True(t, g.Walkable(98, 75))
	assert.True(t, g.Walkable(101, 75))

	// Floor perimeter stays wall.
	assert.False(t, g.Walkable(0, 75))
	assert.False(t, g.Walkable(199, 75))
	assert.False(t, g.Walkable(50, 0))
	assert.False(t, g.Walkable(50, 149))

	// The shared wall keeps a band from both rooms' insets.
	assert.False(t, g.Walkable(99, 75))
	assert.False(t, g.Walkable(100, 75))
}

func TestRasterize_DoorOverridesWall(t *testing.T) {
	l := splitFloor(t)
	_, err := l.AddDoor(core.RoomID(0), core.Door{
		Rect: core.Rect{X: 9.8, Y: 7, W: 0.4, H: 1},
	})
	require.NoError(t, err)

	g, err := grid.Rasterize(l, 10)
	require.NoError(t, err)

	// The straddling door punches through both inset bands.
	assert.True(t, g.Walkable(99, 75))
	assert.True(t, g.Walkable(100, 75))

	// Outside the door span the wall band survives.
	assert.False(t, g.Walkable(99, 60))
	assert.False(t, g.Walkable(100, 90))
}

func TestRasterize_ExitClampedAtPerimeter(t *testing.T) {
	l := splitFloor(t)
	// West exit extends 0.2 m outside the floor; carving clamps to the
	// grid and opens the border cells.
	_, err := l.AddDoor(core.RoomID(0), core.Door{
		Rect: core.Rect{X: -0.2, Y: 7, W: 0.4, H: 1},
		Exit: true,
	})
	require.NoError(t, err)

	g, err := grid.Rasterize(l, 10)
	require.NoError(t, err)

	assert.True(t, g.Walkable(0, 75))
	assert.True(t, g.Walkable(1, 75))
	assert.False(t, g.Walkable(0, 60))
}

func TestRasterize_Deterministic(t *testing.T) {
	l := splitFloor(t)
	_, err := l.AddDoor(core.RoomID(0), core.Door{
		Rect: core.Rect{X: 9.8, Y: 7, W: 0.4, H: 1},
	})
	require.NoError(t, err)

	a, err := grid.Rasterize(l, 10)
	require.NoError(t, err)
	b, err := grid.Rasterize(l, 10)
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRasterize_ZeroWallThickness(t *testing.T) {
	l, err := core.NewLayout(2, 2)
	require.NoError(t, err)
	l.AddRoom(core.Rect{X: 0, Y: 0, W: 2, H: 2}, "Storage")

	g, err := grid.Rasterize(l, 5, grid.WithWallThickness(0))
	require.NoError(t, err)

	assert.True(t, g.Walkable(0, 0))
	assert.True(t, g.Walkable(9, 9))
	assert.Equal(t, 100, g.WalkableCount())
}

func TestRasterize_Validation(t *testing.T) {
	l := splitFloor(t)

	_, err := grid.Rasterize(nil, 10)
	assert.ErrorIs(t, err, grid.ErrNilLayout)

	_, err = grid.Rasterize(l, 0)
	assert.ErrorIs(t, err, grid.ErrBadResolution)

	_, err = grid.Rasterize(l, -5)
	assert.ErrorIs(t, err, grid.ErrBadResolution)

	_, err = grid.Rasterize(l, 10, grid.WithWallThickness(-0.1))
	assert.ErrorIs(t, err, grid.ErrOptionViolation)

	// A floor smaller than one cell rasterizes to nothing.
	tiny, err := core.NewLayout(0.5, 0.5)
	require.NoError(t, err)
	_, err = grid.Rasterize(tiny, 1)
	assert.ErrorIs(t, err, grid.ErrBadResolution)
}

// ---------------------------------------------------------------------------
// door cells
// ---------------------------------------------------------------------------

func TestDoorCell_CenterAndClamp(t *testing.T) {
	l := splitFloor(t)
	g, err := grid.Rasterize(l, 10)
	require.NoError(t, err)

	inner := core.Door{Rect: core.Rect{X: 9.8, Y: 7, W: 0.4, H: 1}}
	assert.Equal(t, grid.Cell{X: 100, Y: 75}, g.DoorCell(inner))

	west := core.Door{Rect: core.Rect{X: -0.2, Y: 7, W: 0.4, H: 1}, Exit: true}
	assert.Equal(t, grid.Cell{X: 0, Y: 75}, g.DoorCell(west))

	east := core.Door{Rect: core.Rect{X: 19.8, Y: 7, W: 0.4, H: 1}, Exit: true}
	assert.Equal(t, grid.Cell{X: 199, Y: 75}, g.DoorCell(east))
}

func TestExitCells_OnlyExits(t *testing.T) {
	l := splitFloor(t)
	_, err := l.AddDoor(core.RoomID(0), core.Door{
		Rect: core.Rect{X: 9.8, Y: 7, W: 0.4, H: 1},
	})
	require.NoError(t, err)
	_, err = l.AddDoor(core.RoomID(0), core.Door{
		Rect: core.Rect{X: -0.2, Y: 7, W: 0.4, H: 1},
		Exit: true,
	})
	require.NoError(t, err)
	_, err = l.AddDoor(core.RoomID(1), core.Door{
		Rect: core.Rect{X: 19.8, Y: 3, W: 0.4, H: 1},
		Exit: true,
	})
	require.NoError(t, err)

	g, err := grid.Rasterize(l, 10)
	require.NoError(t, err)

	cells := grid.ExitCells(g, l)
	assert.Equal(t, []grid.Cell{{X: 0, Y: 75}, {X: 199, Y: 35}}, cells)
}
