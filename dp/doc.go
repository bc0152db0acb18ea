// Package dp solves the 0/1 knapsack problem exactly by dynamic programming
// over (item prefix × capacity).
//
// Recurrence (items 1-indexed in catalog order):
//
//	V[0][c] = 0                                              for all c
//	V[i][c] = V[i-1][c]                                      if wᵢ > c
//	V[i][c] = max(V[i-1][c], vᵢ + V[i-1][c-wᵢ])               otherwise
//
// The optimum is V[n][capacity]. Solve reconstructs the selection by
// walking back from (n, capacity): item i was taken iff V[i][j] ≠ V[i-1][j],
// in which case j decreases by wᵢ.
//
// Memory modes:
//
//   - Solve / BuildTable - full table, (n+1)·(capacity+1) int64 cells.
//     Refused with ErrTableTooLarge above Options.MaxCells, before any
//     allocation.
//   - OptimalValue - single rolling row, capacity+1 cells, value only.
//
// Complexity:
//
//	Time   O(n·capacity)
//	Memory O(n·capacity) (table) or O(capacity) (value only)
//
// All arithmetic is on non-negative integers; no floating point is used.
package dp
