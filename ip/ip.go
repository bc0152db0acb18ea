// Package ip delegates the 0/1 knapsack problem to an external
// pseudo-boolean optimizer (github.com/crillab/gophersat) behind the same
// Solve(ctx, items, capacity) contract as the native solvers.
//
// Model:
//
//	variables   xᵢ ∈ {0,1}, one per item still undecided
//	constraint  Σ wᵢ·xᵢ ≤ capacity
//	objective   minimize Σ vᵢ·¬xᵢ   (the value left out)
//
// Minimizing the value left out is equivalent to maximizing the value
// packed, and keeps every cost weight positive.
//
// Items whose decision is forced are fixed before the model is built:
// zero-value items are never packed, weightless items with positive value
// are always packed, and items heavier than the capacity are never packed.
// When the remaining items all fit together they are packed without calling
// the optimizer, so the model handed to gophersat always has a binding
// capacity constraint over every variable.
//
// The optimizer is opaque: it cannot be interrupted through ctx, which is
// only checked before the call, and its run time grows quickly with the
// number of undecided items (tens of seconds at around 40 random items).
// Callers that need a time budget should use branch-and-bound, which
// returns its incumbent when the budget runs out.
package ip

import (
	"context"
	"errors"
	"math"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/knapsack/core"
)

// Sentinel errors for the integer-programming backend.
var (
	// ErrNoModel indicates the optimizer reported the model unsatisfiable,
	// which cannot happen for a valid instance (the empty selection is
	// always feasible) and signals a backend fault.
	ErrNoModel = errors.New("ip: optimizer returned no model")

	// ErrCoefficientRange indicates a value, weight or capacity that does
	// not fit the optimizer's int coefficients.
	ErrCoefficientRange = errors.New("ip: coefficient exceeds optimizer range")
)

// Solver is the gophersat-backed strategy.
type Solver struct{}

// Solve builds the pseudo-boolean model and returns the optimizer's
// selection. A successful result is optimal. A nil ctx is treated as
// context.Background(). Solve blocks until the optimizer finishes.
//
// Errors: core validation sentinels, ctx.Err(), ErrCoefficientRange,
// ErrNoModel.
func (Solver) Solve(ctx context.Context, items []core.Item, capacity int64) (core.Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := core.Validate(items, capacity); err != nil {
		return core.Solution{}, err
	}
	if err := ctx.Err(); err != nil {
		return core.Solution{}, err
	}

	sol := core.EmptySolution(len(items))
	sol.Optimal = true

	var (
		open      []core.Item
		remaining = capacity
		openW     int64
	)
	for _, it := range items {
		switch {
		case it.Value == 0 || it.Weight > capacity:
		case it.Weight == 0:
			sol.Taken[it.Index] = 1
			sol.Value += it.Value
		default:
			open = append(open, it)
			openW += it.Weight
		}
	}
	if openW <= remaining {
		for _, it := range open {
			sol.Taken[it.Index] = 1
			sol.Value += it.Value
		}

		return sol, nil
	}

	chosen, err := optimize(open, remaining)
	if err != nil {
		return core.Solution{}, err
	}
	for k, it := range open {
		if chosen[k] {
			sol.Taken[it.Index] = 1
			sol.Value += it.Value
		}
	}

	return sol, nil
}

// optimize solves the model over open items; variable k+1 is open[k].
func optimize(open []core.Item, capacity int64) ([]bool, error) {
	if capacity > math.MaxInt32 {
		return nil, ErrCoefficientRange
	}

	var (
		n       = len(open)
		lits    = make([]int, n)
		weights = make([]int, n)
		costLit = make([]solver.Lit, n)
		costW   = make([]int, n)
		k       int
		total   int64
	)
	for k = 0; k < n; k++ {
		it := open[k]
		total += it.Value
		if it.Weight > math.MaxInt32 || total > math.MaxInt32 {
			return nil, ErrCoefficientRange
		}
		lits[k] = k + 1
		weights[k] = int(it.Weight)
		costLit[k] = solver.IntToLit(int32(-(k + 1)))
		costW[k] = int(it.Value)
	}

	pb := solver.ParsePBConstrs([]solver.PBConstr{
		solver.LtEq(lits, weights, int(capacity)),
	})
	pb.SetCostFunc(costLit, costW)

	s := solver.New(pb)
	if cost := s.Minimize(); cost < 0 {
		return nil, ErrNoModel
	}
	model := s.Model()
	if len(model) < n {
		return nil, ErrNoModel
	}

	return model[:n], nil
}
