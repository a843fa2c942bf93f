package evac_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egresslab/egress/bsp"
	"github.com/egresslab/egress/connect"
	"github.com/egresslab/egress/evac"
	"github.com/egresslab/egress/grid"
	"github.com/egresslab/egress/pathfind"
)

// openGrid builds a fully walkable w×h grid at the given resolution.
func openGrid(t *testing.T, w, h, res int) *grid.Grid {
	t.Helper()
	g, err := grid.FromBytes(w, h, res, make([]byte, w*h))
	require.NoError(t, err)

	return g
}

// wallColumns builds a w×h grid with the given columns fully walled.
func wallColumns(t *testing.T, w, h int, cols ...int) *grid.Grid {
	t.Helper()
	data := make([]byte, w*h)
	for _, x := range cols {
		for y := 0; y < h; y++ {
			data[x*h+y] = 1
		}
	}

	g, err := grid.FromBytes(w, h, 1, data)
	require.NoError(t, err)

	return g
}

func TestSimulate_AllEscapeOnOpenFloor(t *testing.T) {
	g := openGrid(t, 10, 10, 1)
	exits := []grid.Cell{{X: 9, Y: 9}}

	res, err := evac.Simulate(g, exits,
		evac.WithAgents(5), evac.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, 5, res.Requested)
	assert.Equal(t, 5, res.Placed)
	assert.Len(t, res.Agents, 5)
	assert.Equal(t, 5, res.Escaped())
	assert.InDelta(t, 100.0, res.SuccessRate, 1e-9)
	assert.Equal(t, 5, res.ExitUsage[exits[0]])
	assert.Greater(t, res.TotalTime, 0.0)
}

func TestSimulate_IsolatedPocketLowersSuccess(t *testing.T) {
	// Columns 2..5 are solid wall, wider than the longest jump, so the
	// six cells on the left can never reach the exit on the right.
	g := wallColumns(t, 12, 3, 2, 3, 4, 5)
	exits := []grid.Cell{{X: 11, Y: 1}}

	res, err := evac.Simulate(g, exits,
		evac.WithAgents(24), evac.WithSeed(5))
	require.NoError(t, err)

	require.Equal(t, 24, res.Placed, "headcount should cover every walkable cell")
	assert.Equal(t, 18, res.Escaped())
	assert.InDelta(t, 75.0, res.SuccessRate, 1e-9)
	assert.Equal(t, 24, res.ExitUsage[exits[0]], "usage counts assigned agents, escaped or not")

	for _, a := range res.Agents {
		if a.Start.X <= 1 {
			assert.False(t, a.Escaped, "agent at %v is sealed in", a.Start)
			assert.Nil(t, a.Path)
			assert.Zero(t, a.Distance)
		} else {
			assert.True(t, a.Escaped, "agent at %v has a clear run", a.Start)
		}
	}
}

func TestSimulate_ShortfallTruncatesHeadcount(t *testing.T) {
	g := openGrid(t, 3, 3, 1)

	res, err := evac.Simulate(g, []grid.Cell{{X: 2, Y: 2}},
		evac.WithAgents(20), evac.WithSeed(11))
	require.NoError(t, err)

	assert.Equal(t, 20, res.Requested)
	assert.Equal(t, 9, res.Placed)
	require.Len(t, res.Agents, 9)

	// All nine placed agents get out, but the rate counts against the
	// twenty that were asked for.
	assert.Equal(t, 9, res.Escaped())
	assert.InDelta(t, 45.0, res.SuccessRate, 1e-9)

	starts := make(map[grid.Cell]bool, 9)
	for _, a := range res.Agents {
		assert.False(t, starts[a.Start], "start %v reused", a.Start)
		starts[a.Start] = true
	}
	assert.Len(t, starts, 9, "all nine cells occupied exactly once")
}

func TestSimulate_NearestExitTieKeepsFirst(t *testing.T) {
	// An 11-cell corridor with exits at both ends: cell 5 is equidistant
	// and must stick with the first exit in the list.
	g := openGrid(t, 11, 1, 1)
	west := grid.Cell{X: 0, Y: 0}
	east := grid.Cell{X: 10, Y: 0}

	res, err := evac.Simulate(g, []grid.Cell{west, east},
		evac.WithAgents(11), evac.WithSeed(2))
	require.NoError(t, err)

	require.Equal(t, 11, res.Placed)
	assert.Equal(t, 6, res.ExitUsage[west])
	assert.Equal(t, 5, res.ExitUsage[east])
	assert.InDelta(t, 100.0, res.SuccessRate, 1e-9)
}

func TestSimulate_DeterministicAcrossWorkerCounts(t *testing.T) {
	g := openGrid(t, 14, 10, 1)
	exits := []grid.Cell{{X: 0, Y: 0}, {X: 13, Y: 9}, {X: 0, Y: 9}}

	serial, err := evac.Simulate(g, exits,
		evac.WithAgents(12), evac.WithSeed(99), evac.WithWorkers(1))
	require.NoError(t, err)

	parallel, err := evac.Simulate(g, exits,
		evac.WithAgents(12), evac.WithSeed(99), evac.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestSimulate_MetricConversion(t *testing.T) {
	// A 6-cell corridor at 2 cells/m: the agent starting at the far end
	// walks 5 cells = 2.5 m.
	g := openGrid(t, 6, 1, 2)
	exits := []grid.Cell{{X: 5, Y: 0}}

	res, err := evac.Simulate(g, exits,
		evac.WithAgents(6), evac.WithSeed(4))
	require.NoError(t, err)
	require.Equal(t, 6, res.Placed)

	far := findAgent(t, res, grid.Cell{X: 0, Y: 0})
	require.True(t, far.Escaped)
	assert.InDelta(t, 2.5, far.Distance, 1e-9)
	assert.InDelta(t, 2.5/evac.DefaultSpeed, far.Time, 1e-9)
	assert.Equal(t, 4, far.Steps) // round(2.5 / 0.7)

	res, err = evac.Simulate(g, exits,
		evac.WithAgents(6), evac.WithSeed(4),
		evac.WithSpeed(2.5), evac.WithStepUnit(1.25))
	require.NoError(t, err)

	far = findAgent(t, res, grid.Cell{X: 0, Y: 0})
	assert.InDelta(t, 1.0, far.Time, 1e-9)
	assert.Equal(t, 2, far.Steps)
}

func findAgent(t *testing.T, res *evac.Result, start grid.Cell) evac.Agent {
	t.Helper()
	for _, a := range res.Agents {
		if a.Start == start {
			return a
		}
	}
	t.Fatalf("no agent placed at %v", start)

	return evac.Agent{}
}

func TestSimulate_AgentFieldsCoherent(t *testing.T) {
	g := openGrid(t, 9, 9, 1)
	exits := []grid.Cell{{X: 8, Y: 8}}

	res, err := evac.Simulate(g, exits,
		evac.WithAgents(10), evac.WithSeed(3))
	require.NoError(t, err)

	var slowest float64
	for _, a := range res.Agents {
		require.True(t, a.Escaped)
		assert.Equal(t, a.Start, a.Path[0])
		assert.Equal(t, a.Exit, a.Path[len(a.Path)-1])
		assert.InDelta(t, pathfind.Length(a.Path), a.Distance, 1e-9)
		assert.InDelta(t, a.Distance/evac.DefaultSpeed, a.Time, 1e-9)
		assert.Equal(t, int(math.Round(a.Distance/evac.DefaultStepUnit)), a.Steps)
		if a.Time > slowest {
			slowest = a.Time
		}
	}
	assert.InDelta(t, slowest, res.TotalTime, 1e-9)
	assert.InDelta(t, 100*float64(res.Escaped())/float64(res.Requested), res.SuccessRate, 1e-9)
	assert.Equal(t, exits, res.Exits)
	assert.Equal(t, evac.DefaultSpeed, res.Speed)
	assert.Equal(t, evac.DefaultStepUnit, res.StepUnit)
}

func TestSimulate_BudgetIsOutcomeNotError(t *testing.T) {
	// A one-node search budget strands every agent that is not already
	// within a pop or two of the exit; the run itself still succeeds.
	g := openGrid(t, 20, 20, 1)
	exits := []grid.Cell{{X: 19, Y: 19}}

	res, err := evac.Simulate(g, exits,
		evac.WithAgents(400), evac.WithSeed(6),
		evac.WithSearch(pathfind.WithMaxExpand(1)))
	require.NoError(t, err)

	require.Equal(t, 400, res.Placed)
	assert.Greater(t, res.SuccessRate, 0.0, "the agent on the exit cell escapes for free")
	assert.Less(t, res.SuccessRate, 100.0, "distant agents exhaust the budget")
}

func TestSimulate_SearchPassthrough(t *testing.T) {
	// The exit cell itself is a wall. Default snapping reroutes the
	// goal; disabling it through the passthrough strands everyone.
	data := make([]byte, 5*5)
	data[4*5+4] = 1
	g, err := grid.FromBytes(5, 5, 1, data)
	require.NoError(t, err)
	exits := []grid.Cell{{X: 4, Y: 4}}

	res, err := evac.Simulate(g, exits, evac.WithSeed(8))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, res.SuccessRate, 1e-9)

	res, err = evac.Simulate(g, exits, evac.WithSeed(8),
		evac.WithSearch(pathfind.WithSnapRadius(0)))
	require.NoError(t, err)
	assert.Zero(t, res.Escaped())
	assert.Zero(t, res.SuccessRate)
}

func TestSimulate_ContextCancelled(t *testing.T) {
	g := openGrid(t, 30, 30, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := evac.Simulate(g, []grid.Cell{{X: 29, Y: 29}},
		evac.WithAgents(50), evac.WithSeed(9), evac.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestSimulate_Validation(t *testing.T) {
	g := openGrid(t, 4, 4, 1)
	exits := []grid.Cell{{X: 3, Y: 3}}

	_, err := evac.Simulate(nil, exits)
	assert.ErrorIs(t, err, evac.ErrNilGrid)

	_, err = evac.Simulate(g, nil)
	assert.ErrorIs(t, err, evac.ErrNoExits)

	sealed, err := grid.FromBytes(2, 2, 1, []byte{1, 1, 1, 1})
	require.NoError(t, err)
	_, err = evac.Simulate(sealed, exits)
	assert.ErrorIs(t, err, evac.ErrNoWalkable)

	violations := []evac.Option{
		evac.WithAgents(0),
		evac.WithSpeed(0),
		evac.WithStepUnit(-1),
		evac.WithWorkers(0),
		evac.WithRand(nil),
		evac.WithContext(nil),
	}
	for i, opt := range violations {
		_, err := evac.Simulate(g, exits, opt)
		assert.ErrorIs(t, err, evac.ErrOptionViolation, "option %d", i)
	}
}

// TestSimulate_GeneratedFloor runs the whole pipeline: partition,
// doors, exits, raster, evacuation. A spanning door tree keeps the
// walkable region in one piece, so every agent gets out.
func TestSimulate_GeneratedFloor(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		l, err := bsp.Partition(20, 15, bsp.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		rep, err := connect.Rooms(l, connect.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)
		require.True(t, rep.Connected(), "seed %d: door tree incomplete", seed)

		n, err := connect.Exits(l, connect.WithSeed(seed), connect.WithExitCount(2))
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, 2, n, "seed %d", seed)

		g, err := grid.Rasterize(l, 20)
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, g.Components(), 1, "seed %d: raster split into islands", seed)

		res, err := evac.Simulate(g, grid.ExitCells(g, l),
			evac.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, 8, res.Placed, "seed %d", seed)
		assert.InDelta(t, 100.0, res.SuccessRate, 1e-9, "seed %d", seed)
		assert.Greater(t, res.TotalTime, 0.0, "seed %d", seed)
	}
}
