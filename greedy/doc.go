// Package greedy provides ordering-based fill heuristics for the 0/1
// knapsack problem.
//
// Every heuristic is the same routine parameterized by an Order: sort a
// copy of the items by the order's key (ties by ascending Item.Index), then
// walk that copy once and pack each item that still fits, never revisiting
// a skipped item.
//
// Orders:
//
//   - CatalogOrder      - items as given (no sorting).
//   - AscendingWeight   - lightest first; packs as many items as possible.
//   - DescendingValue   - most valuable first.
//   - DescendingDensity - best value/weight first; zero-weight items with
//     positive value have infinite density and are always packed.
//   - UniqueWeight      - lightest first, but an item whose weight equals
//     the last packed weight is skipped, so at most one item per distinct
//     weight is packed. A diversity heuristic with no quality guarantee.
//
// Guarantees:
//   - The result is always feasible and its Value is a lower bound of the
//     optimum (possibly far below it). Solution.Optimal is always false.
//   - Zero-value items are never packed.
//   - Deterministic for a given input.
//
// Complexity: O(n log n) time, O(n) space per heuristic.
package greedy
