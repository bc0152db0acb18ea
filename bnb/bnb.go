package bnb

import (
	"context"
	"time"

	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/greedy"
)

// branch is the next decision a frame will try.
type branch uint8

const (
	tryInclude branch = iota // include not tried yet
	tryExclude               // include tried (or in progress), exclude pending
	exhausted                // both branches tried
)

// frame is one search node: the state after deciding items [0..depth).
type frame struct {
	depth     int
	remaining int64
	value     int64
	next      branch
}

// incumbent is the best complete selection found so far. Its taken slice
// is never written after construction; improvements build a new one.
type incumbent struct {
	value int64
	taken []int
}

// engine holds the search data and policies; one engine per Search call.
type engine struct {
	items  []core.Item // branch order
	n      int
	suffix *bound.Suffix

	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	every       int64
	steps       int64

	stats Stats
}

// interrupted performs a sparse ctx/deadline test (every e.every events).
func (e *engine) interrupted() bool {
	e.steps++
	if e.steps%e.every != 0 {
		return false
	}
	if e.ctx.Err() != nil {
		return true
	}

	return e.useDeadline && time.Now().After(e.deadline)
}

// snapshot materializes the selection of the current root-to-leaf path.
// A frame at depth k < n whose next branch is tryExclude is currently in
// its include branch, so item k is taken.
func (e *engine) snapshot(stack []frame, value int64) incumbent {
	taken := make([]int, e.n)
	var k int
	for k = 0; k < e.n; k++ {
		if stack[k].next == tryExclude {
			taken[e.items[k].Index] = 1
		}
	}

	return incumbent{value: value, taken: taken}
}

// push appends child when its bound can still beat best.
func (e *engine) push(stack []frame, child frame, best int64) []frame {
	if !e.suffix.Promising(child.depth, child.remaining, child.value, best) {
		e.stats.PrunedBound++
		return stack
	}
	e.stats.Nodes++

	return append(stack, child)
}

// run explores the tree from the root and returns the final incumbent and
// whether the tree was exhausted (false when interrupted).
func (e *engine) run(capacity int64, best incumbent) (incumbent, bool) {
	stack := make([]frame, 1, e.n+1)
	stack[0] = frame{remaining: capacity}
	e.stats.Nodes = 1

	var (
		top *frame
		it  core.Item
	)
	for len(stack) > 0 {
		if e.interrupted() {
			e.stats.Interrupted = true
			return best, false
		}

		top = &stack[len(stack)-1]
		if top.depth == e.n {
			e.stats.Leaves++
			if top.value > best.value {
				best = e.snapshot(stack, top.value)
				e.stats.Improvements++
			}
			stack = stack[:len(stack)-1]
			continue
		}

		it = e.items[top.depth]
		switch top.next {
		case tryInclude:
			top.next = tryExclude
			if it.Weight > top.remaining {
				e.stats.PrunedInfeasible++
				continue
			}
			stack = e.push(stack, frame{
				depth:     top.depth + 1,
				remaining: top.remaining - it.Weight,
				value:     top.value + it.Value,
			}, best.value)

		case tryExclude:
			top.next = exhausted
			stack = e.push(stack, frame{
				depth:     top.depth + 1,
				remaining: top.remaining,
				value:     top.value,
			}, best.value)

		default:
			stack = stack[:len(stack)-1]
		}
	}

	return best, true
}

// Search runs branch-and-bound and returns an optimal solution, or the best
// incumbent with Optimal == false when ctx or the time limit interrupts it.
//
// Errors: core validation sentinels, ErrNegativeTimeLimit,
// ErrNegativeCheckEvery, ErrInvalidIncumbent. Interruption is not an error.
func Search(ctx context.Context, items []core.Item, capacity int64, opts Options) (core.Solution, error) {
	sol, _, err := SearchWithStats(ctx, items, capacity, opts)

	return sol, err
}

// SearchWithStats is Search plus effort counters.
func SearchWithStats(ctx context.Context, items []core.Item, capacity int64, opts Options) (core.Solution, Stats, error) {
	if err := core.Validate(items, capacity); err != nil {
		return core.Solution{}, Stats{}, err
	}
	if opts.TimeLimit < 0 {
		return core.Solution{}, Stats{}, ErrNegativeTimeLimit
	}
	if opts.CheckEvery < 0 {
		return core.Solution{}, Stats{}, ErrNegativeCheckEvery
	}

	best := incumbent{taken: make([]int, len(items))}
	if opts.Incumbent != nil {
		if err := opts.Incumbent.Check(items, capacity); err != nil {
			return core.Solution{}, Stats{}, ErrInvalidIncumbent
		}
		seed := opts.Incumbent.Clone()
		best = incumbent{value: seed.Value, taken: seed.Taken}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	e := engine{
		items: greedy.Sort(items, opts.BranchOrder),
		n:     len(items),
		ctx:   ctx,
		every: int64(opts.CheckEvery),
	}
	if e.every == 0 {
		e.every = DefaultCheckEvery
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	e.suffix = bound.NewSuffix(e.items, opts.Bound)

	best, done := e.run(capacity, best)

	return core.Solution{Value: best.value, Taken: best.taken, Optimal: done}, e.stats, nil
}

// Solver adapts Search to the core.Solver contract.
type Solver struct {
	Options Options
}

// Solve runs Search with the solver's options.
func (s Solver) Solve(ctx context.Context, items []core.Item, capacity int64) (core.Solution, error) {
	return Search(ctx, items, capacity, s.Options)
}
