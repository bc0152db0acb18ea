package dp

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// ErrTableTooLarge is returned when (n+1)·(capacity+1) exceeds the cell
// ceiling. Callers should fall back to branch-and-bound or a heuristic.
var ErrTableTooLarge = errors.New("dp: table exceeds the configured cell limit")

// DefaultMaxCells bounds the full table at 64M cells (512 MiB of int64).
const DefaultMaxCells int64 = 1 << 26

// Options configures the table-based solver.
type Options struct {
	// MaxCells caps (n+1)·(capacity+1). Zero means DefaultMaxCells;
	// negative means unlimited.
	MaxCells int64
}

// DefaultOptions returns Options with MaxCells = DefaultMaxCells.
func DefaultOptions() Options {
	return Options{MaxCells: DefaultMaxCells}
}

// Table is the filled value table V[i][c], stored row-major in one slice.
type Table struct {
	rows, cols int
	v          []int64
}

// At returns V[i][c] for 0 ≤ i ≤ n and 0 ≤ c ≤ capacity.
func (t *Table) At(i, c int) int64 { return t.v[i*t.cols+c] }

// Items returns n, the number of item rows after the base row.
func (t *Table) Items() int { return t.rows - 1 }

// Capacity returns the largest capacity column.
func (t *Table) Capacity() int { return t.cols - 1 }

// Cells returns the table size for n items and capacity, and whether it
// fits within limit (limit < 0 ⇒ unlimited). Overflowing products never fit.
func Cells(n int, capacity int64, limit int64) (int64, bool) {
	rows, cols := int64(n)+1, capacity+1
	if cols <= 0 || rows > math.MaxInt64/cols {
		return math.MaxInt64, false
	}
	cells := rows * cols
	if limit < 0 {
		return cells, cells <= math.MaxInt
	}

	return cells, cells <= limit
}

func (o Options) limit() int64 {
	if o.MaxCells == 0 {
		return DefaultMaxCells
	}

	return o.MaxCells
}

// BuildTable fills V for items in the given (catalog) order.
//
// Contract: items are validated and capacity ≥ 0.
// Errors: ErrTableTooLarge.
func BuildTable(items []core.Item, capacity int64, opts Options) (*Table, error) {
	if _, ok := Cells(len(items), capacity, opts.limit()); !ok {
		return nil, ErrTableTooLarge
	}

	var (
		n    = len(items)
		cols = int(capacity) + 1
		t    = &Table{rows: n + 1, cols: cols, v: make([]int64, (n+1)*cols)}
		i, c int
		w    int
		cand int64
	)
	// Row 0 is already zero.
	for i = 1; i <= n; i++ {
		it := items[i-1]
		prev := t.v[(i-1)*cols : i*cols]
		cur := t.v[i*cols : (i+1)*cols]
		if it.Weight > capacity {
			copy(cur, prev)
			continue
		}
		w = int(it.Weight)
		copy(cur[:w], prev[:w])
		for c = w; c < cols; c++ {
			cur[c] = prev[c]
			if cand = it.Value + prev[c-w]; cand > cur[c] {
				cur[c] = cand
			}
		}
	}

	return t, nil
}

// Solve returns the optimal value and one optimal selection.
//
// Reconstruction walks from (n, capacity) down to row 0. It does not stop
// at column 0: a weightless item with positive value still raises V[i][0]
// above V[i-1][0] and must be reported as taken.
//
// Errors: ErrTableTooLarge.
func Solve(items []core.Item, capacity int64, opts Options) (core.Solution, error) {
	t, err := BuildTable(items, capacity, opts)
	if err != nil {
		return core.Solution{}, err
	}

	var (
		sol = core.EmptySolution(len(items))
		i   = len(items)
		j   = int(capacity)
	)
	sol.Value = t.At(i, j)
	sol.Optimal = true
	for ; i > 0; i-- {
		if t.At(i, j) != t.At(i-1, j) {
			it := items[i-1]
			sol.Taken[it.Index] = 1
			j -= int(it.Weight)
		}
	}

	return sol, nil
}

// OptimalValue returns V[n][capacity] using one rolling row of
// capacity+1 cells; the selection is not recoverable in this mode.
// The row itself is subject to opts.MaxCells.
//
// Errors: ErrTableTooLarge.
func OptimalValue(items []core.Item, capacity int64, opts Options) (int64, error) {
	if _, ok := Cells(0, capacity, opts.limit()); !ok {
		return 0, ErrTableTooLarge
	}

	var (
		row  = make([]int64, capacity+1)
		c    int64
		cand int64
	)
	for _, it := range items {
		if it.Weight > capacity {
			continue
		}
		// Descending c keeps each item used at most once.
		for c = capacity; c >= it.Weight; c-- {
			if cand = row[c-it.Weight] + it.Value; cand > row[c] {
				row[c] = cand
			}
		}
	}

	return row[capacity], nil
}

// Solver adapts Solve to the core.Solver contract.
type Solver struct {
	Options Options
}

// Solve validates the instance and runs the table solver.
func (s Solver) Solve(_ context.Context, items []core.Item, capacity int64) (core.Solution, error) {
	if err := core.Validate(items, capacity); err != nil {
		return core.Solution{}, err
	}

	return Solve(items, capacity, s.Options)
}
