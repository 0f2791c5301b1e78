package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcoppe/knapsack/dd"
	"github.com/vcoppe/knapsack/knapsack"
)

// TestProblem_DecisionOrder verifies the descending profit/weight ratio
// order of the reference instance: ratios 2.0, 1.5, 1.0 ⇒ order [0, 2, 1].
func TestProblem_DecisionOrder(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 1}, pb.Order())
}

// TestProblem_OrderTieBreak keeps equal ratios in index order for
// determinism.
func TestProblem_OrderTieBreak(t *testing.T) {
	var pb, err = knapsack.NewProblem(&knapsack.Instance{
		NbItems:  3,
		Capacity: 10,
		Weight:   []int64{2, 4, 2},
		Profit:   []int64{4, 8, 4},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, pb.Order())
}

// TestProblem_InitialState starts at depth 0 with full capacity and value 0.
func TestProblem_InitialState(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)

	assert.Equal(t, knapsack.State{Depth: 0, Capacity: 10}, pb.InitialState())
	assert.Equal(t, int64(0), pb.InitialValue())
	assert.Equal(t, 3, pb.NbVariables())
}

// TestProblem_NextVariable walks the fixed order and terminates after the
// last depth.
func TestProblem_NextVariable(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)

	var v, ok = pb.NextVariable(0)
	require.True(t, ok)
	assert.Equal(t, dd.Variable(0), v)

	v, ok = pb.NextVariable(1)
	require.True(t, ok)
	assert.Equal(t, dd.Variable(2), v)

	v, ok = pb.NextVariable(2)
	require.True(t, ok)
	assert.Equal(t, dd.Variable(1), v)

	_, ok = pb.NextVariable(3)
	assert.False(t, ok)
}

// TestProblem_Transition produces fresh states and never mutates inputs.
func TestProblem_Transition(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)

	var s = knapsack.State{Depth: 0, Capacity: 10}
	var next = pb.Transition(s, dd.Decision{Variable: 0, Value: 1})
	assert.Equal(t, knapsack.State{Depth: 1, Capacity: 5}, next)
	assert.Equal(t, knapsack.State{Depth: 0, Capacity: 10}, s, "input state must stay untouched")

	next = pb.Transition(s, dd.Decision{Variable: 0, Value: 0})
	assert.Equal(t, knapsack.State{Depth: 1, Capacity: 10}, next)
}

// TestProblem_TransitionCost charges the profit only when the item is taken.
func TestProblem_TransitionCost(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)

	var s = pb.InitialState()
	assert.Equal(t, int64(10), pb.TransitionCost(s, dd.Decision{Variable: 0, Value: 1}))
	assert.Equal(t, int64(0), pb.TransitionCost(s, dd.Decision{Variable: 0, Value: 0}))
	assert.Equal(t, int64(9), pb.TransitionCost(s, dd.Decision{Variable: 2, Value: 1}))
}

// TestProblem_DomainGating offers value 1 only while the item fits:
// infeasible branches are never generated.
func TestProblem_DomainGating(t *testing.T) {
	var pb, err = knapsack.NewProblem(refInstance())
	require.NoError(t, err)

	var collect = func(s knapsack.State, v dd.Variable) []int64 {
		var vals []int64
		pb.ForEachInDomain(s, v, func(d dd.Decision) {
			assert.Equal(t, v, d.Variable)
			vals = append(vals, d.Value)
		})

		return vals
	}

	assert.Equal(t, []int64{0, 1}, collect(knapsack.State{Depth: 1, Capacity: 6}, 2))
	assert.Equal(t, []int64{0, 1}, collect(knapsack.State{Depth: 1, Capacity: 7}, 2))
	assert.Equal(t, []int64{0}, collect(knapsack.State{Depth: 1, Capacity: 5}, 2))
	assert.Equal(t, []int64{0}, collect(knapsack.State{Depth: 1, Capacity: 0}, 2))
}

// TestNewProblem_RejectsInvalidInstance propagates validation sentinels.
func TestNewProblem_RejectsInvalidInstance(t *testing.T) {
	var in = refInstance()
	in.Weight[0] = 0

	var _, err = knapsack.NewProblem(in)
	assert.ErrorIs(t, err, knapsack.ErrNonPositiveWeight)
}
