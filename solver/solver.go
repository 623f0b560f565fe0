package solver

import (
	"math/rand"

	"github.com/jkuba/overlapwfc/backtrack"
	"github.com/jkuba/overlapwfc/pattern"
	"github.com/jkuba/overlapwfc/ruletable"
	"github.com/jkuba/overlapwfc/stategrid"
)

// Status is a Solver's lifecycle state.
type Status int

const (
	// Preparing is the Solver's state before Run is first called.
	Preparing Status = iota
	// Running is the state while the main Observe/Propagate loop executes.
	Running
	// Solution means every cell collapsed without contradiction.
	Solution
	// Contradiction means the grid reached an unrecoverable empty mask.
	Contradiction
)

// String renders a Status for logging.
func (s Status) String() string {
	switch s {
	case Preparing:
		return "PREPARING"
	case Running:
		return "RUNNING"
	case Solution:
		return "SOLUTION"
	case Contradiction:
		return "CONTRADICTION"
	default:
		return "UNKNOWN"
	}
}

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds Solver tunables and hooks.
type Options struct {
	// Seed seeds the Solver's PRNG; 0 resolves to a fixed default seed.
	Seed int64

	// BacktrackEnabled turns on contradiction recovery via a Backtracker.
	BacktrackEnabled bool

	// MaxDepth bounds the Backtracker's stacked snapshot count.
	MaxDepth int

	// MaxIterations bounds redraw attempts per Backtracker level.
	MaxIterations int

	// OnIteration, if set, is called after every completed Propagate with
	// the new iteration count and current status.
	OnIteration func(iteration int, status Status)
}

// DefaultOptions returns the Solver's default tunables: backtracking
// disabled, seed 0 (resolves to the fixed default), and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Seed:             0,
		BacktrackEnabled: false,
		MaxDepth:         8,
		MaxIterations:    4,
		OnIteration:      func(int, Status) {},
	}
}

// WithSeed sets the PRNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBacktracking enables contradiction recovery bounded by maxDepth
// stacked snapshots, each redrawable maxIterations times.
func WithBacktracking(maxDepth, maxIterations int) Option {
	return func(o *Options) {
		o.BacktrackEnabled = true
		o.MaxDepth = maxDepth
		o.MaxIterations = maxIterations
	}
}

// WithOnIteration registers a callback invoked after each Propagate.
func WithOnIteration(fn func(iteration int, status Status)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// Solver drives the observe/propagate loop over a single state grid. Its
// full mutable state is the (Grid, Iteration) pair; the collapsed-id plane
// lives inside Grid.
type Solver struct {
	Grid    *stategrid.Grid
	Rules   *ruletable.Table
	Catalog *pattern.Catalog

	opts Options
	rng  *rand.Rand
	bt   *backtrack.Backtracker

	Status    Status
	Iteration int
}

// New builds a Solver over an outputW x outputH grid seeded with cat's
// pattern probabilities, ready to Run.
// Complexity: O(outputW*outputH*cat.P()) for grid allocation.
func New(cat *pattern.Catalog, rules *ruletable.Table, outputW, outputH int, opts ...Option) (*Solver, error) {
	if outputW <= 0 || outputH <= 0 {
		return nil, ErrInvalidOutputSize
	}
	if cat.P() == 0 {
		return nil, ErrEmptyCatalog
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	grid, err := stategrid.New(outputW, outputH, cat.P(), cat.Probability)
	if err != nil {
		return nil, err
	}

	return &Solver{
		Grid:      grid,
		Rules:     rules,
		Catalog:   cat,
		opts:      o,
		rng:       newRNG(o.Seed),
		bt:        backtrack.New(o.MaxDepth, o.MaxIterations),
		Status:    Preparing,
		Iteration: 0,
	}, nil
}
