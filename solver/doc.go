// Package solver is the orchestrator: one entry point that validates an
// instance, picks a strategy and returns a checked core.Solution.
//
// Strategies:
//
//	Auto               - greedy incumbent, root fractional bound, then DP
//	                     when the table fits DPCellLimit, else
//	                     branch-and-bound seeded with the incumbent.
//	Greedy             - one heuristic pass (Options.Heuristic).
//	DynamicProgramming - exact table; dp.ErrTableTooLarge above the limit.
//	BranchAndBound     - exact DFS; on TimeLimit or ctx expiry the best
//	                     incumbent is returned with Optimal == false.
//	IntegerProgramming - gophersat pseudo-boolean backend (package ip).
//
// Any strategy can be replaced by a core.Solver through WithBackend.
//
// Every returned solution passes core.Solution.Check for the caller's
// items and capacity; Taken is indexed by Item.Index whatever order the
// strategy worked in.
//
// Observability:
//
//	Decisions are logged at V(1) on the logger from WithLogger, or the one
//	carried by ctx (logr.FromContextOrDiscard). Each Solve opens a
//	"knapsack.Solve" span on the configured tracer (the global provider by
//	default) and marks it codes.Error on failure.
//
// Example:
//
//	items, _ := core.NewCatalog([]int64{60, 100, 120}, []int64{10, 20, 30})
//	sol, err := solver.Solve(ctx, items, 50, solver.WithTimeLimit(time.Second))
package solver
