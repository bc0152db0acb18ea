package bound_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/internal/testkit"
)

func TestFractional_ScenarioA(t *testing.T) {
	items, err := core.NewCatalog([]int64{60, 100, 120}, []int64{10, 20, 30})
	require.NoError(t, err)

	// 60 + 100 + 120·20/30 = 240.
	require.EqualValues(t, 240, bound.Fractional(core.ByDensity(items), 50))
	require.EqualValues(t, 280, bound.SumValues(items))
	require.EqualValues(t, 0, bound.Fractional(core.ByDensity(items), 0))
}

func TestFractional_FloorsSlice(t *testing.T) {
	items := []core.Item{{Index: 0, Value: 10, Weight: 3}}
	// 10·2/3 = 6.67 ⇒ 6.
	require.EqualValues(t, 6, bound.Fractional(items, 2))
}

func TestFractional_ZeroWeightNoDivision(t *testing.T) {
	items := core.ByDensity([]core.Item{
		{Index: 0, Value: 7, Weight: 0},
		{Index: 1, Value: 0, Weight: 0},
		{Index: 2, Value: 5, Weight: 4},
	})
	require.EqualValues(t, 7, bound.Fractional(items, 0))
	require.EqualValues(t, 12, bound.Fractional(items, 4))
	require.EqualValues(t, 10, bound.Fractional(items, 3)) // 7 + floor(5·3/4)
}

func TestFractional_HugeNumbersDoNotOverflow(t *testing.T) {
	items := []core.Item{{Index: 0, Value: math.MaxInt64 / 2, Weight: math.MaxInt64 / 2}}
	require.EqualValues(t, int64(math.MaxInt64/4), bound.Fractional(items, math.MaxInt64/4))
}

func TestBounds_SaturateInsteadOfWrapping(t *testing.T) {
	const big = math.MaxInt64 - 5
	two := []core.Item{{Index: 0, Value: big, Weight: 2}, {Index: 1, Value: big, Weight: 2}}
	require.EqualValues(t, int64(math.MaxInt64), bound.Fractional(two, 3))
	require.EqualValues(t, int64(math.MaxInt64), bound.SumValues(two))

	branch := []core.Item{
		{Index: 0, Value: big, Weight: 2},
		{Index: 1, Value: 10, Weight: 1},
		{Index: 2, Value: 10, Weight: 1},
	}
	for _, kind := range []bound.Kind{bound.FractionalBound, bound.CapacityRelaxed} {
		s := bound.NewSuffix(branch, kind)
		require.GreaterOrEqual(t, s.At(0, 2), int64(big), kind.String())
		require.True(t, s.Promising(0, 2, 0, 20), kind.String())
		// accumulated + suffix past MaxInt64 must still beat the incumbent.
		require.True(t, s.Promising(1, 4, big, big-1), kind.String())
	}
}

func TestFractional_AdmissibleAgainstBruteForce(t *testing.T) {
	for k, inst := range testkit.Batch(7, 300, 12) {
		opt := testkit.BruteForce(inst.Items, inst.Capacity)
		ub := bound.Fractional(core.ByDensity(inst.Items), inst.Capacity)
		require.GreaterOrEqual(t, ub, opt.Value, "case %d", k)
	}
}

// TestSuffix_AdmissibleAtEveryNode checks At(d, r) against the brute-force
// optimum of the undecided suffix for every depth and a sweep of remaining
// capacities, under density, weight and catalog branch orders.
func TestSuffix_AdmissibleAtEveryNode(t *testing.T) {
	orders := []greedy.Order{greedy.DescendingDensity, greedy.AscendingWeight, greedy.CatalogOrder}
	for k, inst := range testkit.Batch(11, 60, 10) {
		for _, o := range orders {
			branch := greedy.Sort(inst.Items, o)
			for _, kind := range []bound.Kind{bound.FractionalBound, bound.CapacityRelaxed} {
				s := bound.NewSuffix(branch, kind)
				for d := 0; d <= len(branch); d++ {
					rest := testkit.Reindex(branch[d:])
					for r := int64(0); r <= inst.Capacity; r += 1 + inst.Capacity/7 {
						opt := testkit.BruteForce(rest, r)
						require.GreaterOrEqual(t, s.At(d, r), opt.Value,
							"case %d order %s kind %s depth %d remaining %d", k, o, kind, d, r)
					}
				}
			}
		}
	}
}

func TestSuffix_AlignedMatchesFractional(t *testing.T) {
	for _, inst := range testkit.Batch(3, 40, 14) {
		branch := core.ByDensity(inst.Items)
		s := bound.NewSuffix(branch, bound.FractionalBound)
		for d := 0; d <= len(branch); d++ {
			require.Equal(t, bound.Fractional(branch[d:], inst.Capacity), s.At(d, inst.Capacity))
		}
	}
}

func TestSuffix_IgnoresDecidedItems(t *testing.T) {
	// Heaviest-first branch order; once the 120/30 item is decided it must
	// not leak into deeper bounds.
	branch := []core.Item{
		{Index: 2, Value: 120, Weight: 30},
		{Index: 1, Value: 100, Weight: 20},
		{Index: 0, Value: 60, Weight: 10},
	}
	s := bound.NewSuffix(branch, bound.FractionalBound)
	require.EqualValues(t, 240, s.At(0, 50))
	require.EqualValues(t, 160, s.At(1, 50))
	require.EqualValues(t, 60, s.At(2, 50))
	require.EqualValues(t, 0, s.At(3, 50))

	c := bound.NewSuffix(branch, bound.CapacityRelaxed)
	require.EqualValues(t, 280, c.At(0, 0))
	require.EqualValues(t, 60, c.At(2, 0))
}

func TestSuffix_Promising(t *testing.T) {
	branch := core.ByDensity([]core.Item{{Index: 0, Value: 10, Weight: 5}})
	s := bound.NewSuffix(branch, bound.FractionalBound)
	require.True(t, s.Promising(0, 5, 0, 9))
	require.False(t, s.Promising(0, 5, 0, 10))

	none := bound.NewSuffix(branch, bound.NoBound)
	require.True(t, none.Promising(0, 0, 0, math.MaxInt64))
	require.EqualValues(t, int64(math.MaxInt64), none.At(0, 0))
}

func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range []bound.Kind{bound.FractionalBound, bound.CapacityRelaxed, bound.NoBound} {
		got, err := bound.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := bound.ParseKind("lagrangian")
	require.ErrorIs(t, err, bound.ErrUnknownKind)
}
