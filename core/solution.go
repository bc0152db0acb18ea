package core

// EmptySolution returns the all-zero selection for n items. It is the
// answer for capacity 0 with no free items, and the neutral incumbent
// every search starts from.
func EmptySolution(n int) Solution {
	return Solution{Taken: make([]int, n)}
}

// Clone returns a deep copy; Taken is never shared between copies.
func (s Solution) Clone() Solution {
	out := s
	if s.Taken != nil {
		out.Taken = make([]int, len(s.Taken))
		copy(out.Taken, s.Taken)
	}

	return out
}

// Weight returns the total weight of the items selected by s.
// Items whose Index falls outside Taken are ignored.
func (s Solution) Weight(items []Item) int64 {
	var w int64
	for _, it := range items {
		if it.Index < len(s.Taken) && s.Taken[it.Index] == 1 {
			w += it.Weight
		}
	}

	return w
}

// Check verifies the Solution invariants against an instance:
// len(Taken)==len(items), flags in {0,1}, total weight ≤ capacity and
// Value equal to the sum of taken values.
//
// Errors: ErrLengthMismatch, ErrIndexOutOfRange, ErrInfeasible,
// ErrValueMismatch.
func (s Solution) Check(items []Item, capacity int64) error {
	if len(s.Taken) != len(items) {
		return ErrLengthMismatch
	}
	var (
		weight, value int64
		it            Item
	)
	for _, it = range items {
		if it.Index < 0 || it.Index >= len(s.Taken) {
			return ErrIndexOutOfRange
		}
		switch s.Taken[it.Index] {
		case 0:
		case 1:
			weight += it.Weight
			value += it.Value
		default:
			return ErrValueMismatch
		}
	}
	if weight > capacity {
		return ErrInfeasible
	}
	if value != s.Value {
		return ErrValueMismatch
	}

	return nil
}
