package knapsack

import (
	"math"

	"github.com/vcoppe/knapsack/dd"
)

// Relaxation implements state merging and the fast admissible bound for
// the knapsack model.
type Relaxation struct {
	pb *Problem
}

var _ dd.Relaxation[State] = (*Relaxation)(nil)

// NewRelaxation builds the relaxation over pb.
func NewRelaxation(pb *Problem) *Relaxation {
	return &Relaxation{pb: pb}
}

// Merge collapses states sharing one depth into a single state keeping the
// maximum residual capacity: merging only weakens feasibility, never cost.
//
// Precondition: states is non-empty and all inputs share one depth;
// violating it is a caller error (an empty input yields the zero State).
func (r *Relaxation) Merge(states []State) State {
	if len(states) == 0 {
		return State{}
	}

	var merged = states[0]
	var i int
	for i = 1; i < len(states); i++ {
		if states[i].Capacity > merged.Capacity {
			merged.Capacity = states[i].Capacity
		}
	}

	return merged
}

// Relax returns the arc cost unchanged: capacity merging never distorts
// profits.
func (r *Relaxation) Relax(_, _, _ State, _ dd.Decision, cost int64) int64 {
	return cost
}

// FastUpperBound walks the fixed ratio order from s.Depth, taking each item
// wholly while capacity allows and the fractional remainder of the first
// item that does not fit, then stops. The result floors the fractional
// profit.
//
// Admissible: the fractional relaxation of any 0/1 choice values at least
// as much as its best integral completion, so the bound never
// underestimates the true remaining optimum.
//
// Complexity: O(n - s.Depth) worst case.
func (r *Relaxation) FastUpperBound(s State) int64 {
	var (
		inst      = r.pb.inst
		depth     = s.Depth
		capacity  = s.Capacity
		maxProfit int64
		item      int
	)
	for capacity > 0 && depth < inst.NbItems {
		item = r.pb.order[depth]

		if capacity >= inst.Weight[item] {
			maxProfit += inst.Profit[item]
			capacity -= inst.Weight[item]
		} else {
			var ratio = float64(capacity) / float64(inst.Weight[item])
			maxProfit += int64(math.Floor(ratio * float64(inst.Profit[item])))
			capacity = 0
		}

		depth++
	}

	return maxProfit
}
