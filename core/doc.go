// Package core holds the data model of the knapsack engine.
//
// An instance is an ordered slice of Item plus a non-negative capacity.
// Items are immutable values; every solver works on its own reordered copy
// and reports selections through Solution.Taken, which is always indexed by
// Item.Index (the position of the item in the caller's input).
//
// What lives here:
//
//   - Item and its value density (Density, CompareDensity) with exact
//     integer comparison and an explicit "infinite density" class for
//     zero-weight items, so no caller ever divides by a zero weight.
//   - NewCatalog - build items from parallel value/weight columns.
//   - Validate - structural checks run before any solver starts.
//   - Solution with Check/Weight helpers for the feasibility invariant.
//   - Solver - the single Solve(ctx, items, capacity) contract.
//
// Validation policy:
//
//	Structural problems (negative numbers, broken indices) are reported as
//	sentinel errors before solving. Once an instance passes Validate, no
//	solver in this module fails on it.
//
// Example:
//
//	items, err := core.NewCatalog([]int64{60, 100, 120}, []int64{10, 20, 30})
//	if err != nil {
//	    return err
//	}
//	if err = core.Validate(items, 50); err != nil {
//	    return err
//	}
package core
