package core

// Validate checks the structural invariants of an instance before any
// solver runs:
//   - capacity ≥ 0,
//   - every Value and Weight ≥ 0,
//   - Index values form a permutation of [0..n-1].
//
// It returns the first violation as a sentinel error.
//
// Complexity: O(n) time, O(n) extra space for the index check.
func Validate(items []Item, capacity int64) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	var (
		n    = len(items)
		seen = make([]bool, n)
		it   Item
	)
	for _, it = range items {
		if it.Weight < 0 {
			return ErrNegativeWeight
		}
		if it.Value < 0 {
			return ErrNegativeValue
		}
		if it.Index < 0 || it.Index >= n {
			return ErrIndexOutOfRange
		}
		if seen[it.Index] {
			return ErrDuplicateIndex
		}
		seen[it.Index] = true
	}

	return nil
}
