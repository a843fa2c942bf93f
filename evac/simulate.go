// This file implements Simulate: agent placement, nearest-exit
// assignment, the routing worker pool and result aggregation.
package evac

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/egresslab/egress/grid"
	"github.com/egresslab/egress/pathfind"
)

// Simulate places agents on g, routes each one to its nearest exit and
// returns the aggregated outcome. exits holds exit cell positions,
// normally the output of grid.ExitCells.
//
// Unreachable exits are data, not errors: affected agents end up with
// Escaped=false. Simulate returns an error only for invalid input, an
// invalid option or a cancelled context.
func Simulate(g *grid.Grid, exits []grid.Cell, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(exits) == 0 {
		return nil, ErrNoExits
	}

	walkable := g.WalkableCells()
	if len(walkable) == 0 {
		return nil, ErrNoWalkable
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Distinct placement: shuffle the walkable cells once and take the
	// prefix. A headcount beyond the floor capacity is truncated.
	placed := o.agents
	if placed > len(walkable) {
		placed = len(walkable)
	}
	rng.Shuffle(len(walkable), func(i, j int) {
		walkable[i], walkable[j] = walkable[j], walkable[i]
	})

	res := &Result{
		Agents:    make([]Agent, placed),
		Requested: o.agents,
		Placed:    placed,
		Exits:     append([]grid.Cell(nil), exits...),
		ExitUsage: make(map[grid.Cell]int, len(exits)),
		Speed:     o.speed,
		StepUnit:  o.stepUnit,
	}
	for i := range res.Agents {
		a := &res.Agents[i]
		a.Start = walkable[i]
		a.Exit = nearestExit(a.Start, exits)
		res.ExitUsage[a.Exit]++
	}

	if err := routeAgents(g, res.Agents, o); err != nil {
		return nil, err
	}

	escaped := 0
	for i := range res.Agents {
		a := &res.Agents[i]
		if !a.Escaped {
			continue
		}
		escaped++
		if a.Time > res.TotalTime {
			res.TotalTime = a.Time
		}
	}
	res.SuccessRate = 100 * float64(escaped) / float64(res.Requested)

	return res, nil
}

// routeAgents fans the per-agent searches out over a bounded worker
// pool. Workers write only their own agent slot, so the result is
// independent of scheduling.
func routeAgents(g *grid.Grid, agents []Agent, o Options) error {
	workers := o.workers
	if workers > len(agents) {
		workers = len(agents)
	}

	jobs := make(chan int)
	errs := make([]error, len(agents))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = routeOne(g, &agents[i], o)
			}
		}()
	}

feed:
	for i := range agents {
		select {
		case jobs <- i:
		case <-o.ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := o.ctx.Err(); err != nil {
		return err
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// routeOne searches a single agent's path and fills in its metrics.
// ErrNoPath and ErrBudget are outcomes; anything else aborts the run.
func routeOne(g *grid.Grid, a *Agent, o Options) error {
	path, err := pathfind.Find(g, a.Start, a.Exit, o.search...)
	switch {
	case errors.Is(err, pathfind.ErrNoPath), errors.Is(err, pathfind.ErrBudget):
		return nil
	case err != nil:
		return err
	}

	a.Path = path
	a.Escaped = true
	a.Distance = pathfind.Length(path) / float64(g.Resolution())
	a.Time = a.Distance / o.speed
	a.Steps = int(math.Round(a.Distance / o.stepUnit))

	return nil
}

// nearestExit picks the exit with the smallest straight-line distance
// from the start cell; ties keep the earliest exit in the list.
func nearestExit(from grid.Cell, exits []grid.Cell) grid.Cell {
	best := exits[0]
	bestD := cellDist(from, exits[0])
	for _, e := range exits[1:] {
		if d := cellDist(from, e); d < bestD {
			best, bestD = e, d
		}
	}

	return best
}

func cellDist(a, b grid.Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
