// This file declares the simulation Options, the functional Option
// constructors, the result types and sentinel errors.
//
// Errors:
//
//	ErrNilGrid         - the grid pointer is nil.
//	ErrNoExits         - the exit list is empty.
//	ErrNoWalkable      - the grid has no walkable cells.
//	ErrOptionViolation - a With* option received an invalid value.
package evac

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/egresslab/egress/grid"
	"github.com/egresslab/egress/pathfind"
)

// Sentinel errors for simulation.
var (
	// ErrNilGrid indicates Simulate received a nil grid.
	ErrNilGrid = errors.New("evac: nil grid")

	// ErrNoExits indicates an empty exit list. A floor without exits
	// cannot be evacuated, so this is input validation, not an outcome.
	ErrNoExits = errors.New("evac: no exits")

	// ErrNoWalkable indicates the grid has no walkable cell to place
	// agents on.
	ErrNoWalkable = errors.New("evac: no walkable cells")

	// ErrOptionViolation indicates an invalid value passed to a With*
	// option.
	ErrOptionViolation = errors.New("evac: invalid option")
)

// Default simulation parameters.
const (
	// DefaultAgents is the evacuee headcount.
	DefaultAgents = 8

	// DefaultSpeed is the walking speed in meters per second.
	DefaultSpeed = 1.2

	// DefaultStepUnit is the stride length in meters used to convert
	// distance into step counts.
	DefaultStepUnit = 0.7
)

// Agent is the outcome for one simulated person.
type Agent struct {
	// Start is the walkable cell the agent was placed on.
	Start grid.Cell

	// Exit is the assigned exit cell, nearest by straight line.
	Exit grid.Cell

	// Path is the routed cell sequence from Start to Exit; nil when no
	// route exists.
	Path []grid.Cell

	// Distance is the metric length of Path, in meters.
	Distance float64

	// Time is Distance divided by the walking speed, in seconds.
	Time float64

	// Steps is Distance divided by the stride length, rounded to the
	// nearest whole step.
	Steps int

	// Escaped reports whether a route to the assigned exit was found.
	Escaped bool
}

// Result aggregates one simulation run.
type Result struct {
	// Agents holds per-person outcomes in placement order.
	Agents []Agent

	// Requested is the headcount asked for; Placed is how many agents
	// actually fit on distinct walkable cells.
	Requested int
	Placed    int

	// SuccessRate is the share of requested agents that escaped, in
	// percent. Agents that never fit on the grid count as failures.
	SuccessRate float64

	// Exits echoes the exit list the run was given, in input order.
	Exits []grid.Cell

	// ExitUsage counts the agents assigned to each exit cell,
	// escaped or not.
	ExitUsage map[grid.Cell]int

	// Speed and StepUnit echo the parameters the run used, for
	// reporting.
	Speed    float64
	StepUnit float64

	// TotalTime is the walking time of the slowest escaped agent, in
	// seconds. Zero when nobody escapes.
	TotalTime float64
}

// Escaped returns how many agents reached their exit.
func (r *Result) Escaped() int {
	n := 0
	for i := range r.Agents {
		if r.Agents[i].Escaped {
			n++
		}
	}

	return n
}

// Options bundles the simulation parameters. Construct with
// DefaultOptions and refine via With* options.
type Options struct {
	agents   int
	speed    float64
	stepUnit float64
	rng      *rand.Rand
	workers  int
	ctx      context.Context
	search   []pathfind.Option

	err error // first option violation, surfaced by Simulate
}

// DefaultOptions returns the standard parameters: 8 agents, 1.2 m/s,
// 0.7 m stride, time-seeded placement, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		agents:   DefaultAgents,
		speed:    DefaultSpeed,
		stepUnit: DefaultStepUnit,
		workers:  runtime.NumCPU(),
		ctx:      context.Background(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithAgents sets the evacuee headcount.
func WithAgents(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: agent count %d is not positive", ErrOptionViolation, n)
			return
		}
		o.agents = n
	}
}

// WithSpeed sets the walking speed in meters per second.
func WithSpeed(v float64) Option {
	return func(o *Options) {
		if v <= 0 {
			o.err = fmt.Errorf("%w: speed %v is not positive", ErrOptionViolation, v)
			return
		}
		o.speed = v
	}
}

// WithStepUnit sets the stride length in meters.
func WithStepUnit(u float64) Option {
	return func(o *Options) {
		if u <= 0 {
			o.err = fmt.Errorf("%w: step unit %v is not positive", ErrOptionViolation, u)
			return
		}
		o.stepUnit = u
	}
}

// WithSeed derives agent placement from the given seed. A zero seed
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

// WithWorkers bounds the routing concurrency. The pool never exceeds
// the agent count.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: worker count %d is not positive", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithContext attaches a cancellation context checked between agent
// searches.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.ctx = ctx
	}
}

// WithSearch forwards options to every pathfind.Find call, e.g.
// pathfind.WithStrictJumps or pathfind.WithMaxExpand.
func WithSearch(opts ...pathfind.Option) Option {
	return func(o *Options) {
		o.search = append(o.search, opts...)
	}
}
