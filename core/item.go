package core

import (
	"cmp"
	"math"
	"math/bits"
	"slices"
)

// densityClass partitions items so that comparisons never divide:
//
//	classZero     - value == 0 (never worth packing, density 0)
//	classFinite   - value > 0, weight > 0 (density value/weight)
//	classInfinite - value > 0, weight == 0 (free value, density +Inf)
type densityClass int

const (
	classZero densityClass = iota
	classFinite
	classInfinite
)

func (it Item) class() densityClass {
	switch {
	case it.Value == 0:
		return classZero
	case it.Weight == 0:
		return classInfinite
	default:
		return classFinite
	}
}

// Density returns value/weight as a float64 for reporting.
// Zero-weight items with positive value report +Inf; zero-value items report 0.
// Ordering decisions must use CompareDensity, which is exact.
func (it Item) Density() float64 {
	switch it.class() {
	case classInfinite:
		return math.Inf(1)
	case classZero:
		return 0
	default:
		return float64(it.Value) / float64(it.Weight)
	}
}

// CompareDensity orders items by value density: it returns +1 when a is
// denser than b, -1 when b is denser, and 0 when both densities are equal.
//
// Finite densities are compared by 128-bit cross products
// (a.Value·b.Weight vs b.Value·a.Weight), so the result is exact for every
// non-negative int64 input.
func CompareDensity(a, b Item) int {
	ca, cb := a.class(), b.class()
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	if ca != classFinite {
		return 0
	}

	return cmpMul(uint64(a.Value), uint64(b.Weight), uint64(b.Value), uint64(a.Weight))
}

// cmpMul compares x1·y1 with x2·y2 without overflow.
func cmpMul(x1, y1, x2, y2 uint64) int {
	h1, l1 := bits.Mul64(x1, y1)
	h2, l2 := bits.Mul64(x2, y2)
	if h1 != h2 {
		return cmp.Compare(h1, h2)
	}

	return cmp.Compare(l1, l2)
}

// NewCatalog builds items from parallel value and weight columns, assigning
// Index = position. It does not check signs; run Validate for that.
//
// Errors: ErrLengthMismatch.
func NewCatalog(values, weights []int64) ([]Item, error) {
	if len(values) != len(weights) {
		return nil, ErrLengthMismatch
	}
	items := make([]Item, len(values))
	var i int
	for i = range values {
		items[i] = Item{Index: i, Value: values[i], Weight: weights[i]}
	}

	return items, nil
}

// ByDensity returns a copy of items ordered by descending density; ties keep
// ascending Index. The input slice is not modified.
//
// Complexity: O(n log n).
func ByDensity(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		if c := CompareDensity(b, a); c != 0 {
			return c
		}

		return cmp.Compare(a.Index, b.Index)
	})

	return out
}

// TotalValue sums the values of all items (the capacity-relaxed optimum).
func TotalValue(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Value
	}

	return sum
}
