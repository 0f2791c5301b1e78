package knapsack

import "github.com/vcoppe/knapsack/dd"

// Ranking is the total order used when a diagram layer must shrink: states
// with more residual capacity are more promising and are preferentially
// retained, lower-capacity states are dropped or merged first. Removal and
// merge mechanics belong to the engine; this type only expresses the order.
type Ranking struct{}

var _ dd.StateRanking[State] = Ranking{}

// Compare returns a negative number when a is less promising than b,
// positive when more promising, zero on ties.
func (Ranking) Compare(a, b State) int {
	switch {
	case a.Capacity < b.Capacity:
		return -1
	case a.Capacity > b.Capacity:
		return 1
	default:
		return 0
	}
}
