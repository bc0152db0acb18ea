// Package bnb_test validates the branch-and-bound solver:
//  1. Scenarios A–D and the empty instance.
//  2. Optimality against brute force and DP across bound kinds and branch orders.
//  3. Warm starts (valid and invalid incumbents) and incumbent isolation.
//  4. Interruption by ctx and by time limit returning a non-optimal incumbent.
package bnb_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/internal/testkit"
)

func catalog(t *testing.T, values, weights []int64) []core.Item {
	t.Helper()
	items, err := core.NewCatalog(values, weights)
	require.NoError(t, err)

	return items
}

func TestSearch_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		values   []int64
		weights  []int64
		capacity int64
		value    int64
		taken    []int
	}{
		{"A classic", []int64{60, 100, 120}, []int64{10, 20, 30}, 50, 220, []int{0, 1, 1}},
		{"B zero capacity", []int64{5, 6, 7}, []int64{1, 2, 3}, 0, 0, []int{0, 0, 0}},
		{"C single oversized", []int64{9}, []int64{10}, 5, 0, []int{0}},
		{"D all weightless", []int64{3, 1, 4}, []int64{0, 0, 0}, 0, 8, []int{1, 1, 1}},
		{"empty", nil, nil, 10, 0, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := catalog(t, tc.values, tc.weights)
			sol, err := bnb.Search(context.Background(), items, tc.capacity, bnb.DefaultOptions())
			require.NoError(t, err)
			require.Equal(t, tc.value, sol.Value)
			require.Equal(t, tc.taken, sol.Taken)
			require.True(t, sol.Optimal)
		})
	}
}

func TestSearch_MatchesBruteForceAndDP(t *testing.T) {
	kinds := []bound.Kind{bound.FractionalBound, bound.CapacityRelaxed, bound.NoBound}
	orders := []greedy.Order{greedy.DescendingDensity, greedy.AscendingWeight, greedy.DescendingValue, greedy.CatalogOrder}

	for k, inst := range testkit.Batch(99, 120, 15) {
		want := testkit.BruteForce(inst.Items, inst.Capacity)
		table, err := dp.Solve(inst.Items, inst.Capacity, dp.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, want.Value, table.Value, "case %d: dp", k)

		for _, kind := range kinds {
			for _, o := range orders {
				opts := bnb.DefaultOptions()
				opts.Bound = kind
				opts.BranchOrder = o
				sol, err := bnb.Search(context.Background(), inst.Items, inst.Capacity, opts)
				require.NoError(t, err)
				require.Equal(t, want.Value, sol.Value, "case %d kind %s order %s", k, kind, o)
				require.True(t, sol.Optimal)
				require.NoError(t, sol.Check(inst.Items, inst.Capacity))
			}
		}
	}
}

func TestSearch_HugeValuesKeepBoundAdmissible(t *testing.T) {
	const big = math.MaxInt64 - 5
	cases := []struct {
		name     string
		values   []int64
		weights  []int64
		capacity int64
	}{
		{"suffix sum past MaxInt64", []int64{big, 10, 10}, []int64{2, 1, 1}, 2},
		{"fractional slice past MaxInt64", []int64{big, big}, []int64{2, 2}, 3},
	}
	for _, tc := range cases {
		items := catalog(t, tc.values, tc.weights)
		for _, kind := range []bound.Kind{bound.FractionalBound, bound.CapacityRelaxed} {
			for _, o := range []greedy.Order{greedy.DescendingDensity, greedy.AscendingWeight, greedy.CatalogOrder} {
				opts := bnb.DefaultOptions()
				opts.Bound = kind
				opts.BranchOrder = o
				sol, err := bnb.Search(context.Background(), items, tc.capacity, opts)
				require.NoError(t, err)
				require.EqualValues(t, big, sol.Value, "%s kind %s order %s", tc.name, kind, o)
				require.True(t, sol.Optimal)
				require.NoError(t, sol.Check(items, tc.capacity))
			}
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	inst := testkit.Random(testkit.NewRNG(5), testkit.Shape{N: 14})
	first, err := bnb.Search(context.Background(), inst.Items, inst.Capacity, bnb.DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := bnb.Search(context.Background(), inst.Items, inst.Capacity, bnb.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSearch_WarmStart(t *testing.T) {
	items := catalog(t, []int64{60, 100, 120}, []int64{10, 20, 30})
	seed := greedy.Fill(items, 50, greedy.DescendingDensity)
	seedTaken := append([]int(nil), seed.Taken...)

	opts := bnb.DefaultOptions()
	opts.Incumbent = &seed
	sol, stats, err := bnb.SearchWithStats(context.Background(), items, 50, opts)
	require.NoError(t, err)
	require.EqualValues(t, 220, sol.Value)
	require.Equal(t, []int{0, 1, 1}, sol.Taken)
	require.Equal(t, seedTaken, seed.Taken, "caller's incumbent must not be written")
	// 160 (seed) → 180 ({60,120}) → 220 ({100,120}).
	require.EqualValues(t, 2, stats.Improvements)

	// An already optimal seed is returned as-is and proven optimal.
	opt := core.Solution{Value: 220, Taken: []int{0, 1, 1}}
	opts.Incumbent = &opt
	sol, stats, err = bnb.SearchWithStats(context.Background(), items, 50, opts)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1}, sol.Taken)
	require.True(t, sol.Optimal)
	require.Zero(t, stats.Improvements)
}

func TestSearch_WarmStartPrunes(t *testing.T) {
	inst := testkit.Random(testkit.NewRNG(77), testkit.Shape{N: 18, CapacityRatio: 0.4})
	_, cold, err := bnb.SearchWithStats(context.Background(), inst.Items, inst.Capacity, bnb.DefaultOptions())
	require.NoError(t, err)

	seed := testkit.BruteForce(inst.Items, inst.Capacity)
	opts := bnb.DefaultOptions()
	opts.Incumbent = &seed
	sol, warm, err := bnb.SearchWithStats(context.Background(), inst.Items, inst.Capacity, opts)
	require.NoError(t, err)
	require.Equal(t, seed.Value, sol.Value)
	require.LessOrEqual(t, warm.Nodes, cold.Nodes)
}

func TestSearch_Errors(t *testing.T) {
	items := catalog(t, []int64{60, 100, 120}, []int64{10, 20, 30})
	ctx := context.Background()

	_, err := bnb.Search(ctx, items, -5, bnb.DefaultOptions())
	require.ErrorIs(t, err, core.ErrNegativeCapacity)

	opts := bnb.DefaultOptions()
	opts.TimeLimit = -time.Second
	_, err = bnb.Search(ctx, items, 50, opts)
	require.ErrorIs(t, err, bnb.ErrNegativeTimeLimit)

	opts = bnb.DefaultOptions()
	opts.CheckEvery = -1
	_, err = bnb.Search(ctx, items, 50, opts)
	require.ErrorIs(t, err, bnb.ErrNegativeCheckEvery)

	bad := core.Solution{Value: 280, Taken: []int{1, 1, 1}}
	opts = bnb.DefaultOptions()
	opts.Incumbent = &bad
	_, err = bnb.Search(ctx, items, 50, opts)
	require.ErrorIs(t, err, bnb.ErrInvalidIncumbent)
}

func TestSearch_CancelledContextReturnsIncumbent(t *testing.T) {
	inst := testkit.Random(testkit.NewRNG(3), testkit.Shape{N: 30})
	seed := greedy.Fill(inst.Items, inst.Capacity, greedy.DescendingDensity)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := bnb.DefaultOptions()
	opts.Incumbent = &seed
	opts.CheckEvery = 1
	sol, stats, err := bnb.SearchWithStats(ctx, inst.Items, inst.Capacity, opts)
	require.NoError(t, err)
	require.True(t, stats.Interrupted)
	require.False(t, sol.Optimal)
	require.Equal(t, seed.Value, sol.Value)
	require.NoError(t, sol.Check(inst.Items, inst.Capacity))
}

func TestSearch_TimeLimitDegradesGracefully(t *testing.T) {
	// Equal densities defeat the fractional bound, so the tree is huge.
	const n = 60
	values := make([]int64, n)
	weights := make([]int64, n)
	for i := range values {
		values[i] = int64(1000 + 2*i)
		weights[i] = int64(1000 + 2*i)
	}
	items := catalog(t, values, weights)

	opts := bnb.DefaultOptions()
	opts.TimeLimit = 20 * time.Millisecond
	opts.CheckEvery = 64

	start := time.Now()
	sol, err := bnb.Search(context.Background(), items, 30001, opts)
	require.NoError(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
	require.False(t, sol.Optimal)
	require.NoError(t, sol.Check(items, 30001))
	require.Positive(t, sol.Value)
}

func TestSolver_Contract(t *testing.T) {
	var s core.Solver = bnb.Solver{Options: bnb.DefaultOptions()}
	items := catalog(t, []int64{60, 100, 120}, []int64{10, 20, 30})
	sol, err := s.Solve(context.Background(), items, 50)
	require.NoError(t, err)
	require.EqualValues(t, 220, sol.Value)
}
