package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcoppe/knapsack/dd"
	"github.com/vcoppe/knapsack/knapsack"
)

// TestRelaxation_MergeKeepsMaxCapacity merges at the common depth with the
// maximum residual capacity.
func TestRelaxation_MergeKeepsMaxCapacity(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)
	var rel = knapsack.NewRelaxation(pb)

	var merged = rel.Merge([]knapsack.State{
		{Depth: 2, Capacity: 3},
		{Depth: 2, Capacity: 7},
		{Depth: 2, Capacity: 5},
	})
	assert.Equal(t, knapsack.State{Depth: 2, Capacity: 7}, merged)
}

// TestRelaxation_MergeSingleton is the identity on one state.
func TestRelaxation_MergeSingleton(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)
	var rel = knapsack.NewRelaxation(pb)

	var s = knapsack.State{Depth: 1, Capacity: 4}
	assert.Equal(t, s, rel.Merge([]knapsack.State{s}))
}

// TestRelaxation_RelaxKeepsCost passes arc costs through unchanged.
func TestRelaxation_RelaxKeepsCost(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)
	var rel = knapsack.NewRelaxation(pb)

	var (
		src    = knapsack.State{Depth: 0, Capacity: 10}
		dst    = knapsack.State{Depth: 1, Capacity: 5}
		merged = knapsack.State{Depth: 1, Capacity: 10}
	)
	assert.Equal(t, int64(10), rel.Relax(src, dst, merged, dd.Decision{Variable: 0, Value: 1}, 10))
	assert.Equal(t, int64(0), rel.Relax(src, dst, merged, dd.Decision{Variable: 0, Value: 0}, 0))
}

// TestRelaxation_FastUpperBoundReference pins the greedy fractional walk on
// the reference instance: item 0 whole (10), then 5/6 of item 2 floored
// (7) ⇒ 17 at the root.
func TestRelaxation_FastUpperBoundReference(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)
	var rel = knapsack.NewRelaxation(pb)

	assert.Equal(t, int64(17), rel.FastUpperBound(pb.InitialState()))
	assert.Equal(t, int64(0), rel.FastUpperBound(knapsack.State{Depth: 3, Capacity: 10}))
	assert.Equal(t, int64(0), rel.FastUpperBound(knapsack.State{Depth: 0, Capacity: 0}))
}

// TestRelaxation_FastUpperBoundAdmissible checks, by exhaustive completion
// of every reachable state of seeded random instances, that the bound never
// underestimates the true remaining optimum.
func TestRelaxation_FastUpperBoundAdmissible(t *testing.T) {
	var rng = rand.New(rand.NewSource(7))

	var trial int
	for trial = 0; trial < 20; trial++ {
		var (
			n    = 2 + rng.Intn(7)
			inst = randomInstance(rng, n)
		)
		var pb, err = knapsack.NewProblem(inst)
		require.NoError(t, err)
		var rel = knapsack.NewRelaxation(pb)

		// Walk every reachable state depth by depth.
		var layer = []knapsack.State{pb.InitialState()}
		for len(layer) > 0 {
			var next []knapsack.State
			for _, s := range layer {
				var opt = completionOptimum(pb, s)
				assert.GreaterOrEqual(t, rel.FastUpperBound(s), opt,
					"bound must not underestimate optimum for state %+v of %+v", s, inst)

				if v, ok := pb.NextVariable(s.Depth); ok {
					pb.ForEachInDomain(s, v, func(d dd.Decision) {
						next = append(next, pb.Transition(s, d))
					})
				}
			}
			layer = next
		}
	}
}

// BenchmarkFastUpperBound measures the root bound on a generated
// 1000-item instance; the bound sits on the hot path of every pruning
// decision the search makes.
func BenchmarkFastUpperBound(b *testing.B) {
	var gen = knapsack.DefaultGeneratorOptions()
	gen.Seed = 1
	gen.NbItems = 1000
	gen.NbClusters = 10
	gen.Capacity = 500000

	var inst, err = knapsack.Generate(gen)
	if err != nil {
		b.Fatal(err)
	}
	var pb *knapsack.Problem
	if pb, err = knapsack.NewProblem(inst); err != nil {
		b.Fatal(err)
	}
	var (
		rel  = knapsack.NewRelaxation(pb)
		root = pb.InitialState()
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rel.FastUpperBound(root)
	}
}

// completionOptimum computes the exact best profit attainable from s by
// brute-force recursion over the remaining decision order.
func completionOptimum(pb *knapsack.Problem, s knapsack.State) int64 {
	var v, ok = pb.NextVariable(s.Depth)
	if !ok {
		return 0
	}

	var best int64
	pb.ForEachInDomain(s, v, func(d dd.Decision) {
		var val = pb.TransitionCost(s, d) + completionOptimum(pb, pb.Transition(s, d))
		if val > best {
			best = val
		}
	})

	return best
}

// randomInstance samples a small valid instance from rng.
func randomInstance(rng *rand.Rand, n int) *knapsack.Instance {
	var inst = knapsack.Instance{
		NbItems:  n,
		Capacity: int64(rng.Intn(50)),
		Weight:   make([]int64, n),
		Profit:   make([]int64, n),
	}
	for i := 0; i < n; i++ {
		inst.Weight[i] = 1 + int64(rng.Intn(20))
		inst.Profit[i] = int64(rng.Intn(30))
	}

	return &inst
}
