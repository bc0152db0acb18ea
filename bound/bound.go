// Package bound computes admissible upper bounds on the knapsack optimum.
//
// Two relaxations are provided:
//
//   - FractionalBound - drop integrality: pack items in descending density
//     and take a fractional slice of the first item that overflows
//     (the linear-programming optimum of the relaxed problem, floored).
//   - CapacityRelaxed - drop the capacity: the bound is the sum of all
//     values. Looser but O(1) per node with suffix sums.
//
// Admissibility:
//
//	Both bounds are ≥ the best integral value of the same item subset under
//	the same capacity. The fractional value is floored before being
//	returned; since every integral selection has an integral value, the
//	floor is still ≥ the optimum. Branch-and-bound prunes on these bounds,
//	so admissibility is a correctness requirement, not a heuristic.
//
// Arithmetic is integer-only: the fractional slice value·remaining/weight
// is computed with a 128-bit product, and zero-weight items are handled as
// infinite density without dividing. Sums saturate at math.MaxInt64 instead
// of wrapping, so a bound never drops below the optimum on huge values.
package bound

import (
	"errors"
	"math"
	"math/bits"

	"github.com/katalvlaran/knapsack/core"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("bound: unknown bound kind")

// Kind selects the relaxation used for pruning.
type Kind int

const (
	// FractionalBound is the fractional-knapsack (LP) relaxation.
	FractionalBound Kind = iota
	// CapacityRelaxed ignores weights entirely and sums remaining values.
	CapacityRelaxed
	// NoBound disables bound pruning (testing and benchmarking only).
	NoBound
)

var kindNames = map[Kind]string{
	FractionalBound: "fractional",
	CapacityRelaxed: "capacity",
	NoBound:         "none",
}

// String returns the short name used by configuration and the CLI.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// ParseKind maps a short name (see String) back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}

	return 0, ErrUnknownKind
}

// Fractional returns the fractional-relaxation bound of items under
// capacity.
//
// Contract: items must already be in descending density order
// (core.ByDensity); the result is only admissible under that order.
//
// Complexity: O(n).
func Fractional(items []core.Item, capacity int64) int64 {
	var (
		value     int64
		remaining = capacity
		it        core.Item
	)
	for _, it = range items {
		if it.Value == 0 {
			// Zero-value items sort last; nothing after them adds value.
			break
		}
		if it.Weight <= remaining {
			value = addSat(value, it.Value)
			remaining -= it.Weight
			continue
		}
		value = addSat(value, fraction(it.Value, remaining, it.Weight))

		break
	}

	return value
}

// SumValues returns the capacity-relaxed bound: the sum of all values,
// saturated at math.MaxInt64.
func SumValues(items []core.Item) int64 {
	var sum int64
	for _, it := range items {
		sum = addSat(sum, it.Value)
	}

	return sum
}

// addSat adds two non-negative values, saturating at math.MaxInt64.
// A saturated bound still dominates every representable optimum.
func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

// fraction returns floor(value·remaining/weight) for 0 ≤ remaining < weight.
// The quotient is < value, so the 128-bit division cannot overflow.
func fraction(value, remaining, weight int64) int64 {
	if remaining <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(value), uint64(remaining))
	q, _ := bits.Div64(hi, lo, uint64(weight))

	return int64(q)
}
