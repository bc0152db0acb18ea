// Package bnb solves the 0/1 knapsack problem exactly with a depth-first
// branch-and-bound search that never materializes the DP table, which
// suits large capacities with a moderate number of items.
//
// Search (one tree level per item, in Options.BranchOrder):
//  1. Root: depth 0, full capacity, value 0. The incumbent is either the
//     empty selection or Options.Incumbent (e.g. a greedy warm start).
//  2. Each node has two branches, tried in this order: include the item at
//     depth, then exclude it. Including first finds strong incumbents early.
//  3. Infeasibility pruning: an include whose weight exceeds the remaining
//     capacity is abandoned.
//  4. Bound pruning: before descending into a child, its accumulated value
//     plus bound.Suffix.At(child depth, child remaining) is compared with
//     the incumbent; if it cannot be strictly better the child is skipped.
//     The bound is computed over the undecided suffix only.
//  5. Leaf (depth == n): if the accumulated value is strictly greater than
//     the incumbent, a fresh selection snapshot becomes the new incumbent.
//
// State and ownership:
//
//	The traversal uses an explicit stack of frames (one per depth), so the
//	stack height is bounded by n+1 and no native recursion is involved.
//	The selection of the current path is implied by each frame's next
//	branch; siblings never share a selection buffer. The incumbent is an
//	immutable (value, taken) pair owned by the search loop and replaced,
//	never mutated, on improvement.
//
// Time budget:
//
//	Every Options.CheckEvery node events the search checks ctx and the
//	optional Options.TimeLimit. On expiry it stops and returns the best
//	incumbent with Solution.Optimal == false and a nil error.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes; per node O(n) for the fractional bound
//     (O(1) for CapacityRelaxed).
//   - Memory O(n) for the stack plus O(n) per recorded incumbent.
package bnb
