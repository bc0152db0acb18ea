package testkit

import "github.com/katalvlaran/knapsack/core"

// MaxBruteItems caps BruteForce; 2^20 subsets is still fast in tests.
const MaxBruteItems = 20

// BruteForce enumerates every subset and returns the best value together
// with one optimal selection (the lowest-mask optimum). It panics when the
// instance has more than MaxBruteItems items.
//
// Complexity: O(n·2ⁿ).
func BruteForce(items []core.Item, capacity int64) core.Solution {
	n := len(items)
	if n > MaxBruteItems {
		panic("testkit: instance too large for brute force")
	}

	var (
		bestMask  uint32
		bestValue int64
		mask      uint32
		i         int
	)
	for mask = 0; mask < 1<<n; mask++ {
		var w, v int64
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				v += items[i].Value
			}
		}
		if w <= capacity && v > bestValue {
			bestValue, bestMask = v, mask
		}
	}

	sol := core.EmptySolution(n)
	sol.Value = bestValue
	sol.Optimal = true
	for i = 0; i < n; i++ {
		if bestMask&(1<<i) != 0 {
			sol.Taken[items[i].Index] = 1
		}
	}

	return sol
}
