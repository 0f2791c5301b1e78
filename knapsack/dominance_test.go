package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcoppe/knapsack/knapsack"
)

// TestDominance_KeyAndValue projects depth and capacity.
func TestDominance_KeyAndValue(t *testing.T) {
	var dom = knapsack.Dominance{}
	var s = knapsack.State{Depth: 2, Capacity: 7}

	assert.Equal(t, 2, dom.GetKey(s))
	assert.Equal(t, int64(7), dom.GetValue(s))
}

// TestDominance_CapacityRule pins the rule: a ≤ b dominated, equal
// capacities mutually dominated.
func TestDominance_CapacityRule(t *testing.T) {
	var dom = knapsack.Dominance{}

	assert.True(t, dom.IsDominatedBy(3, 5))
	assert.False(t, dom.IsDominatedBy(5, 3))
	assert.True(t, dom.IsDominatedBy(4, 4), "equal capacities dominate each other")
}

// TestDominance_Transitive verifies transitivity at equal depth.
func TestDominance_Transitive(t *testing.T) {
	var dom = knapsack.Dominance{}
	var a, b, c = int64(2), int64(5), int64(9)

	assert.True(t, dom.IsDominatedBy(a, b))
	assert.True(t, dom.IsDominatedBy(b, c))
	assert.True(t, dom.IsDominatedBy(a, c))
}

// TestRanking_PrefersCapacity ranks higher residual capacity as more
// promising and ties as equal.
func TestRanking_PrefersCapacity(t *testing.T) {
	var rank = knapsack.Ranking{}

	assert.Negative(t, rank.Compare(
		knapsack.State{Depth: 1, Capacity: 3},
		knapsack.State{Depth: 1, Capacity: 8}))
	assert.Positive(t, rank.Compare(
		knapsack.State{Depth: 1, Capacity: 8},
		knapsack.State{Depth: 1, Capacity: 3}))
	assert.Zero(t, rank.Compare(
		knapsack.State{Depth: 1, Capacity: 8},
		knapsack.State{Depth: 2, Capacity: 8}))
}
