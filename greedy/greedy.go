package greedy

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/knapsack/core"
)

// ErrUnknownOrder is returned by ParseOrder for unrecognized names.
var ErrUnknownOrder = errors.New("greedy: unknown order")

// Order selects the key a heuristic sorts by before filling.
type Order int

const (
	// DescendingDensity packs by value/weight, best first.
	DescendingDensity Order = iota
	// AscendingWeight packs the lightest items first.
	AscendingWeight
	// DescendingValue packs the most valuable items first.
	DescendingValue
	// UniqueWeight packs lightest first, one item per distinct weight.
	UniqueWeight
	// CatalogOrder packs items in the order they were given.
	CatalogOrder
)

// AllOrders lists every Order, in declaration order.
var AllOrders = []Order{DescendingDensity, AscendingWeight, DescendingValue, UniqueWeight, CatalogOrder}

var orderNames = map[Order]string{
	DescendingDensity: "density",
	AscendingWeight:   "weight",
	DescendingValue:   "value",
	UniqueWeight:      "unique-weight",
	CatalogOrder:      "catalog",
}

// String returns the short name used by configuration and the CLI.
func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}

	return "unknown"
}

// ParseOrder maps a short name (see String) back to its Order.
func ParseOrder(name string) (Order, error) {
	for o, s := range orderNames {
		if s == name {
			return o, nil
		}
	}

	return 0, ErrUnknownOrder
}

// Sort returns a copy of items ordered by o's key; ties keep ascending Index.
// Unknown orders behave like CatalogOrder.
func Sort(items []core.Item, o Order) []core.Item {
	var key func(a, b core.Item) int
	switch o {
	case DescendingDensity:
		return core.ByDensity(items)
	case AscendingWeight, UniqueWeight:
		key = func(a, b core.Item) int { return cmp.Compare(a.Weight, b.Weight) }
	case DescendingValue:
		key = func(a, b core.Item) int { return cmp.Compare(b.Value, a.Value) }
	default:
		return slices.Clone(items)
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b core.Item) int {
		if c := key(a, b); c != 0 {
			return c
		}

		return cmp.Compare(a.Index, b.Index)
	})

	return out
}

// Fill runs the heuristic selected by o.
//
// Contract:
//   - items are validated (core.Validate) and capacity ≥ 0.
//   - Empty input yields Value 0 and an empty Taken.
func Fill(items []core.Item, capacity int64, o Order) core.Solution {
	var accept acceptFunc = acceptAll
	if o == UniqueWeight {
		accept = distinctFromLast()
	}

	return fill(Sort(items, o), len(items), capacity, accept)
}

// acceptFunc is the per-order filter consulted for each item that fits.
// It is told whether the item was finally packed through the returned
// commit callback so stateful filters can track the last packed item.
type acceptFunc func(it core.Item) (ok bool, commit func())

func acceptAll(core.Item) (bool, func()) { return true, nil }

// distinctFromLast rejects an item whose weight equals the most recently
// packed item's weight.
func distinctFromLast() acceptFunc {
	var (
		last    int64
		hasLast bool
	)

	return func(it core.Item) (bool, func()) {
		if hasLast && it.Weight == last {
			return false, nil
		}

		return true, func() { last, hasLast = it.Weight, true }
	}
}

// fill is the single feasibility-fill routine shared by every order: walk
// ordered once, pack each positive-value item that fits and passes accept.
func fill(ordered []core.Item, n int, capacity int64, accept acceptFunc) core.Solution {
	var (
		sol       = core.EmptySolution(n)
		remaining = capacity
		it        core.Item
	)
	for _, it = range ordered {
		if it.Value == 0 || it.Weight > remaining {
			continue
		}
		ok, commit := accept(it)
		if !ok {
			continue
		}
		sol.Taken[it.Index] = 1
		sol.Value += it.Value
		remaining -= it.Weight
		if commit != nil {
			commit()
		}
	}

	return sol
}

// Best runs every listed order (all orders when none are given) and
// returns the highest-value result; ties keep the earliest order.
func Best(items []core.Item, capacity int64, orders ...Order) (core.Solution, Order) {
	if len(orders) == 0 {
		orders = AllOrders
	}
	var (
		best    core.Solution
		bestOrd Order
		i       int
	)
	for i = range orders {
		sol := Fill(items, capacity, orders[i])
		if i == 0 || sol.Value > best.Value {
			best, bestOrd = sol, orders[i]
		}
	}

	return best, bestOrd
}

// Solver adapts one heuristic to the core.Solver contract.
type Solver struct {
	Order Order
}

// Solve validates the instance and runs Fill. It never reports optimality.
func (s Solver) Solve(_ context.Context, items []core.Item, capacity int64) (core.Solution, error) {
	if err := core.Validate(items, capacity); err != nil {
		return core.Solution{}, err
	}

	return Fill(items, capacity, s.Order), nil
}
