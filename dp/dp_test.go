package dp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/internal/testkit"
)

func catalog(t *testing.T, values, weights []int64) []core.Item {
	t.Helper()
	items, err := core.NewCatalog(values, weights)
	require.NoError(t, err)

	return items
}

func TestSolve_Scenarios(t *testing.T) {
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
		{"mixed weightless", []int64{5, 0, 10, 7}, []int64{0, 0, 4, 4}, 4, 15, []int{1, 0, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := catalog(t, tc.values, tc.weights)
			sol, err := dp.Solve(items, tc.capacity, dp.DefaultOptions())
			require.NoError(t, err)
			require.Equal(t, tc.value, sol.Value)
			require.Equal(t, tc.taken, sol.Taken)
			require.True(t, sol.Optimal)
			require.NoError(t, sol.Check(items, tc.capacity))
		})
	}
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	for k, inst := range testkit.Batch(2024, 250, 15) {
		want := testkit.BruteForce(inst.Items, inst.Capacity)
		got, err := dp.Solve(inst.Items, inst.Capacity, dp.DefaultOptions())
		require.NoError(t, err, "case %d", k)
		require.Equal(t, want.Value, got.Value, "case %d", k)
		require.NoError(t, got.Check(inst.Items, inst.Capacity), "case %d", k)

		v, err := dp.OptimalValue(inst.Items, inst.Capacity, dp.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, want.Value, v, "case %d", k)
	}
}

func TestSolve_TakenAlignedToIndex(t *testing.T) {
	// Catalog order differs from Index order; Taken must follow Index.
	items := []core.Item{
		{Index: 2, Value: 120, Weight: 30},
		{Index: 0, Value: 60, Weight: 10},
		{Index: 1, Value: 100, Weight: 20},
	}
	sol, err := dp.Solve(items, 50, dp.DefaultOptions())
	require.NoError(t, err)
	require.EqualValues(t, 220, sol.Value)
	require.Equal(t, []int{0, 1, 1}, sol.Taken)
}

func TestBuildTable_Invariants(t *testing.T) {
	for _, inst := range testkit.Batch(5, 40, 12) {
		tab, err := dp.BuildTable(inst.Items, inst.Capacity, dp.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, len(inst.Items), tab.Items())
		require.EqualValues(t, inst.Capacity, tab.Capacity())
		for i := 0; i <= tab.Items(); i++ {
			for c := 0; c <= tab.Capacity(); c++ {
				if i == 0 {
					require.Zero(t, tab.At(0, c))
					continue
				}
				require.GreaterOrEqual(t, tab.At(i, c), tab.At(i-1, c), "row growth at (%d,%d)", i, c)
				if c > 0 {
					require.GreaterOrEqual(t, tab.At(i, c), tab.At(i, c-1), "column growth at (%d,%d)", i, c)
				}
			}
		}
	}
}

func TestCellLimit(t *testing.T) {
	items := catalog(t, []int64{1, 2, 3}, []int64{1, 2, 3})

	_, err := dp.Solve(items, 99, dp.Options{MaxCells: 399})
	require.ErrorIs(t, err, dp.ErrTableTooLarge)

	sol, err := dp.Solve(items, 99, dp.Options{MaxCells: 400})
	require.NoError(t, err)
	require.EqualValues(t, 6, sol.Value)

	_, err = dp.Solve(items, math.MaxInt64, dp.Options{MaxCells: -1})
	require.ErrorIs(t, err, dp.ErrTableTooLarge)

	_, err = dp.OptimalValue(items, 1<<40, dp.DefaultOptions())
	require.ErrorIs(t, err, dp.ErrTableTooLarge)

	cells, ok := dp.Cells(3, 99, -1)
	require.True(t, ok)
	require.EqualValues(t, 400, cells)
	_, ok = dp.Cells(1<<40, 1<<40, -1)
	require.False(t, ok)
}

func TestSolver_Contract(t *testing.T) {
	items := catalog(t, []int64{60, 100, 120}, []int64{10, 20, 30})

	sol, err := dp.Solver{}.Solve(context.Background(), items, 50)
	require.NoError(t, err)
	require.EqualValues(t, 220, sol.Value)

	_, err = dp.Solver{}.Solve(context.Background(), []core.Item{{Index: 0, Value: 1, Weight: -2}}, 3)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}
