package bound

import (
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// Suffix answers per-node bound queries for a depth-first search that
// decides items in a fixed branch order. At depth d the undecided items are
// exactly branch[d:], and At(d, remaining) bounds the best value those
// items can still add under the remaining capacity.
//
// The bound is always taken over the undecided suffix, never over the full
// list: items already decided (taken or skipped) must not contribute.
// For FractionalBound the suffix is walked in density order even when the
// branch order is different (e.g. heaviest-first), which keeps the
// relaxation admissible for any branch order.
type Suffix struct {
	kind Kind

	// byDensity are the branch items in descending density order and
	// pos[k] is the branch position of byDensity[k].
	byDensity []core.Item
	pos       []int

	// aligned reports branch order == density order (pos[k] == k), which
	// lets At start its walk at k = depth instead of scanning from 0.
	aligned bool

	// suffixValue[d] = Σ value of branch[d:] (CapacityRelaxed).
	suffixValue []int64
}

// NewSuffix prepares bound queries for items explored in the given branch
// order.
//
// Complexity: O(n log n) preparation, O(n) memory.
func NewSuffix(branch []core.Item, kind Kind) *Suffix {
	n := len(branch)
	s := &Suffix{kind: kind, suffixValue: make([]int64, n+1)}

	var d int
	for d = n - 1; d >= 0; d-- {
		s.suffixValue[d] = addSat(s.suffixValue[d+1], branch[d].Value)
	}
	if kind != FractionalBound {
		return s
	}

	// Density order over branch positions: sort (position) by the item's
	// density, ties by branch position so aligned inputs stay aligned.
	positioned := make([]core.Item, n)
	for d = 0; d < n; d++ {
		positioned[d] = core.Item{Index: d, Value: branch[d].Value, Weight: branch[d].Weight}
	}
	sorted := core.ByDensity(positioned)

	s.byDensity = make([]core.Item, n)
	s.pos = make([]int, n)
	s.aligned = true
	var k int
	for k = 0; k < n; k++ {
		s.pos[k] = sorted[k].Index
		s.byDensity[k] = branch[sorted[k].Index]
		if s.pos[k] != k {
			s.aligned = false
		}
	}

	return s
}

// Kind reports the relaxation in use.
func (s *Suffix) Kind() Kind { return s.kind }

// At returns an admissible upper bound on the value obtainable from the
// items at branch positions ≥ depth with the given remaining capacity.
// NoBound returns math.MaxInt64.
func (s *Suffix) At(depth int, remaining int64) int64 {
	switch s.kind {
	case NoBound:
		return math.MaxInt64
	case CapacityRelaxed:
		return s.suffixValue[depth]
	}

	var (
		value int64
		k     int
		it    core.Item
	)
	if s.aligned {
		k = depth
	}
	for ; k < len(s.byDensity); k++ {
		if s.pos[k] < depth {
			continue
		}
		it = s.byDensity[k]
		if it.Value == 0 {
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

// Promising reports whether a node at depth with the given remaining
// capacity and accumulated value could still beat incumbent, i.e.
// accumulated + At(depth, remaining) > incumbent. NoBound always reports
// true.
func (s *Suffix) Promising(depth int, remaining, accumulated, incumbent int64) bool {
	if s.kind == NoBound {
		return true
	}

	return addSat(accumulated, s.At(depth, remaining)) > incumbent
}
