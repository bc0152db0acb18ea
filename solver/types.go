package solver

import (
	"errors"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/greedy"
)

// ErrUnknownStrategy is returned for a Strategy outside the declared set,
// and by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

// tracerName identifies spans opened by this package.
const tracerName = "github.com/katalvlaran/knapsack/solver"

// Strategy selects how the engine solves an instance.
type Strategy int

const (
	// Auto runs the greedy/bound/DP/branch-and-bound pipeline.
	Auto Strategy = iota
	// Greedy runs Options.Heuristic only; the result is not proven optimal.
	Greedy
	// DynamicProgramming runs the exact table solver.
	DynamicProgramming
	// BranchAndBound runs the depth-first branch-and-bound search.
	BranchAndBound
	// IntegerProgramming delegates to the pseudo-boolean backend.
	IntegerProgramming
)

// AllStrategies lists every Strategy, in declaration order.
var AllStrategies = []Strategy{Auto, Greedy, DynamicProgramming, BranchAndBound, IntegerProgramming}

var strategyNames = map[Strategy]string{
	Auto:               "auto",
	Greedy:             "greedy",
	DynamicProgramming: "dp",
	BranchAndBound:     "bnb",
	IntegerProgramming: "ip",
}

var strategyHelp = map[Strategy]string{
	Auto:               "greedy incumbent, root bound check, then DP or branch-and-bound by table size",
	Greedy:             "single greedy pass with the configured heuristic (fast, not optimal)",
	DynamicProgramming: "exact table over items x capacity (refused above the cell limit)",
	BranchAndBound:     "exact depth-first search with bound pruning and optional time limit",
	IntegerProgramming: "pseudo-boolean model solved by gophersat",
}

// String returns the short name used by configuration and the CLI.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}

	return "unknown"
}

// Describe returns a one-line summary of the strategy.
func (s Strategy) Describe() string { return strategyHelp[s] }

// ParseStrategy maps a short name (see String) back to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, ErrUnknownStrategy
}

// Options configures an Engine. Use the With* helpers rather than filling
// it directly.
type Options struct {
	// Strategy selects the solving path (default Auto).
	Strategy Strategy

	// Heuristic is the greedy order used by the Greedy strategy and as the
	// second warm-start candidate in Auto (default DescendingDensity).
	Heuristic greedy.Order

	// Bound is the branch-and-bound pruning relaxation (default FractionalBound).
	Bound bound.Kind

	// DPCellLimit caps the DP table size; 0 means dp.DefaultMaxCells and a
	// negative value removes the cap.
	DPCellLimit int64

	// TimeLimit bounds the branch-and-bound search; 0 means unlimited.
	TimeLimit time.Duration

	// Logger overrides the logger carried by the context.
	Logger *logr.Logger

	// Tracer opens one span per solve (default: global provider).
	Tracer trace.Tracer

	backends map[Strategy]core.Solver
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Auto with density heuristics, fractional bounds,
// the default DP ceiling and no time limit.
func DefaultOptions() Options {
	return Options{
		Strategy:    Auto,
		Heuristic:   greedy.DescendingDensity,
		Bound:       bound.FractionalBound,
		DPCellLimit: dp.DefaultMaxCells,
		Tracer:      otel.Tracer(tracerName),
	}
}

// WithStrategy selects the solving strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithHeuristic selects the greedy order.
func WithHeuristic(h greedy.Order) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithBound selects the branch-and-bound relaxation.
func WithBound(k bound.Kind) Option {
	return func(o *Options) { o.Bound = k }
}

// WithDPCellLimit sets the DP table ceiling (see Options.DPCellLimit).
func WithDPCellLimit(cells int64) Option {
	return func(o *Options) { o.DPCellLimit = cells }
}

// WithTimeLimit bounds branch-and-bound wall-clock time.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithLogger sets the logger used instead of logr.FromContextOrDiscard.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = &l }
}

// WithTracer sets the tracer; nil keeps the current one.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithBackend substitutes b for the built-in implementation of s. Auto
// consults substitutes for its DP and branch-and-bound steps too.
func WithBackend(s Strategy, b core.Solver) Option {
	return func(o *Options) {
		if o.backends == nil {
			o.backends = make(map[Strategy]core.Solver)
		}
		o.backends[s] = b
	}
}
