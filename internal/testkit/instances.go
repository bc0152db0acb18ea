package testkit

import (
	"math/rand"

	"github.com/katalvlaran/knapsack/core"
)

// Instance is a generated problem.
type Instance struct {
	Items    []core.Item
	Capacity int64
}

// Shape controls Random. Zero fields fall back to small defaults.
type Shape struct {
	// N is the number of items.
	N int

	// MaxValue and MaxWeight bound the uniform draws (inclusive).
	MaxValue  int64
	MaxWeight int64

	// ZeroWeightEvery makes every k-th item weightless (0 disables).
	ZeroWeightEvery int

	// CapacityRatio is the capacity as a fraction of the total weight.
	CapacityRatio float64
}

// Random draws an instance from rng according to shape. Values and weights
// are uniform in [0..Max]; the capacity is CapacityRatio·Σweight (floored).
func Random(rng *rand.Rand, shape Shape) Instance {
	if shape.MaxValue <= 0 {
		shape.MaxValue = 100
	}
	if shape.MaxWeight <= 0 {
		shape.MaxWeight = 50
	}
	if shape.CapacityRatio <= 0 {
		shape.CapacityRatio = 0.5
	}

	var (
		items = make([]core.Item, shape.N)
		total int64
		i     int
	)
	for i = 0; i < shape.N; i++ {
		w := rng.Int63n(shape.MaxWeight + 1)
		if shape.ZeroWeightEvery > 0 && i%shape.ZeroWeightEvery == 0 {
			w = 0
		}
		items[i] = core.Item{Index: i, Value: rng.Int63n(shape.MaxValue + 1), Weight: w}
		total += w
	}

	return Instance{Items: items, Capacity: int64(float64(total) * shape.CapacityRatio)}
}

// Batch returns count instances whose sizes cycle through [1..maxN], each
// drawn from its own derived stream of seed.
func Batch(seed int64, count, maxN int) []Instance {
	out := make([]Instance, count)
	var k int
	for k = 0; k < count; k++ {
		rng := NewRNG(DeriveSeed(seed, uint64(k)))
		out[k] = Random(rng, Shape{
			N:               1 + k%maxN,
			ZeroWeightEvery: 7,
			CapacityRatio:   0.2 + 0.6*rng.Float64(),
		})
	}

	return out
}

// Reindex returns a copy of items with Index reset to position, turning
// any sub-slice or permutation into a standalone valid instance.
func Reindex(items []core.Item) []core.Item {
	out := make([]core.Item, len(items))
	for i, it := range items {
		out[i] = core.Item{Index: i, Value: it.Value, Weight: it.Weight}
	}

	return out
}
