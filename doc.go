// Package knapsack is an optimization engine for the 0/1 knapsack problem:
// given items with a value and a weight and a capacity, choose the subset
// with the largest total value whose total weight fits.
//
// What is inside:
//
//	core/      - Item, Solution, validation and the Solver contract
//	greedy/    - ordering-based fill heuristics (warm starts, approximations)
//	bound/     - admissible relaxation bounds (fractional, capacity-relaxed)
//	dp/        - exact dynamic programming over items x capacity
//	bnb/       - exact depth-first branch-and-bound with time budgets
//	ip/        - pseudo-boolean backend on github.com/crillab/gophersat
//	solver/    - the orchestrator: strategy choice, logging, tracing
//	instance/  - text instance parser and text/json/yaml solution writers
//	cmd/knapsack - command-line front end
//
// Every strategy implements core.Solver, returns a feasible Solution whose
// Taken flags are indexed by the caller's item positions, and sets
// Solution.Optimal only when optimality is proven.
//
// Quick start:
//
//	items, _ := core.NewCatalog([]int64{60, 100, 120}, []int64{10, 20, 30})
//	sol, err := solver.Solve(ctx, items, 50)
//	// sol.Value == 220, sol.Taken == [0 1 1], sol.Optimal == true
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
//	printf '3 50\n60 10\n100 20\n120 30\n' | knapsack solve
package knapsack
