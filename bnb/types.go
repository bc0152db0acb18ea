package bnb

import (
	"errors"
	"time"

	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/greedy"
)

// Sentinel errors for branch-and-bound configuration.
var (
	// ErrNegativeTimeLimit indicates Options.TimeLimit < 0.
	ErrNegativeTimeLimit = errors.New("bnb: time limit must be non-negative")

	// ErrNegativeCheckEvery indicates Options.CheckEvery < 0.
	ErrNegativeCheckEvery = errors.New("bnb: check interval must be non-negative")

	// ErrInvalidIncumbent indicates a warm-start solution that is not a
	// feasible, value-accurate selection for the instance.
	ErrInvalidIncumbent = errors.New("bnb: invalid incumbent")
)

// DefaultCheckEvery is the number of node events between deadline checks.
const DefaultCheckEvery = 4096

// Options configures Search.
type Options struct {
	// Bound selects the pruning relaxation (default FractionalBound).
	Bound bound.Kind

	// BranchOrder is the order in which items are decided (default
	// DescendingDensity). CatalogOrder keeps the caller's order.
	BranchOrder greedy.Order

	// Incumbent optionally seeds the search with a feasible solution.
	// It is copied; the caller's slice is never written.
	Incumbent *core.Solution

	// TimeLimit bounds wall-clock time; 0 means unlimited.
	TimeLimit time.Duration

	// CheckEvery is the interval, in node events, between ctx and deadline
	// checks; 0 means DefaultCheckEvery.
	CheckEvery int
}

// DefaultOptions returns fractional bounds, density branching, no warm
// start, no time limit.
func DefaultOptions() Options {
	return Options{
		Bound:       bound.FractionalBound,
		BranchOrder: greedy.DescendingDensity,
		CheckEvery:  DefaultCheckEvery,
	}
}

// Stats reports search effort.
type Stats struct {
	// Nodes is the number of frames pushed, root included.
	Nodes int64

	// Leaves is the number of complete assignments reached.
	Leaves int64

	// PrunedInfeasible counts include branches abandoned for lack of capacity.
	PrunedInfeasible int64

	// PrunedBound counts children skipped because their bound could not
	// beat the incumbent.
	PrunedBound int64

	// Improvements counts incumbent replacements.
	Improvements int64

	// Interrupted reports that ctx or the time limit stopped the search.
	Interrupted bool
}
