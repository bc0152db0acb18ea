// Package core defines the knapsack data model shared by every solver:
// Item, Solution, the Solver contract, and the sentinel errors returned
// by structural validation.
//
// Errors:
//
//	ErrNegativeCapacity - capacity < 0.
//	ErrNegativeWeight   - some item has weight < 0.
//	ErrNegativeValue    - some item has value < 0.
//	ErrLengthMismatch   - values and weights have different lengths.
//	ErrIndexOutOfRange  - an item Index is outside [0..n-1].
//	ErrDuplicateIndex   - two items share the same Index.
//	ErrInfeasible       - a solution exceeds the capacity.
//	ErrValueMismatch    - a solution's Value differs from the sum of taken values.
package core

import (
	"context"
	"errors"
)

// Sentinel errors for instance validation and solution checks.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("core: capacity must be non-negative")

	// ErrNegativeWeight indicates an item with a negative weight.
	ErrNegativeWeight = errors.New("core: item weight must be non-negative")

	// ErrNegativeValue indicates an item with a negative value.
	ErrNegativeValue = errors.New("core: item value must be non-negative")

	// ErrLengthMismatch indicates that the value and weight columns differ in length.
	ErrLengthMismatch = errors.New("core: values and weights length mismatch")

	// ErrIndexOutOfRange indicates an Item.Index outside [0..n-1].
	ErrIndexOutOfRange = errors.New("core: item index out of range")

	// ErrDuplicateIndex indicates two items claiming the same Index.
	ErrDuplicateIndex = errors.New("core: duplicate item index")

	// ErrInfeasible indicates a selection whose total weight exceeds the capacity.
	ErrInfeasible = errors.New("core: selection exceeds capacity")

	// ErrValueMismatch indicates Solution.Value does not match the selected items.
	ErrValueMismatch = errors.New("core: solution value does not match selection")
)

// Item is one candidate for the knapsack.
//
// Index is the stable identity of the item (its position in the input) and
// is the slot it occupies in Solution.Taken, regardless of how a solver
// reorders its working copy of the catalog.
type Item struct {
	// Index is the original position of the item in the input sequence.
	Index int

	// Value is the profit gained by packing the item.
	Value int64

	// Weight is the capacity the item consumes.
	Weight int64
}

// Solution is the outcome of one solve call.
//
// Invariants (see Check):
//   - len(Taken) == number of items, Taken[i] ∈ {0,1} aligned to Item.Index.
//   - Σ weight·taken ≤ capacity.
//   - Value == Σ value·taken.
type Solution struct {
	// Value is the total value of the selected items.
	Value int64

	// Taken holds one 0/1 flag per item, indexed by Item.Index.
	Taken []int

	// Optimal reports that the producing solver proved Value optimal.
	// Heuristics and interrupted searches leave it false.
	Optimal bool
}

// Solver is the uniform contract implemented by every solving strategy
// (greedy, dynamic programming, branch-and-bound, integer programming) and
// by the orchestrator itself. Implementations must return feasible
// solutions with an accurate Value, and Taken in input-index order.
type Solver interface {
	Solve(ctx context.Context, items []Item, capacity int64) (Solution, error)
}
