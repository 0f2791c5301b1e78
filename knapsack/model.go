// Package knapsack — the exact DP formulation.
//
// The model branches items in descending profit/weight ratio order, fixed
// once at construction. This specific order makes the greedy fractional
// bound in relax.go track the true remaining optimum tightly from the very
// first layers, which is what gives the engine its early pruning power.

package knapsack

import (
	"sort"

	"github.com/vcoppe/knapsack/dd"
)

// Problem is the DP model over one Instance. It is immutable after
// construction and safe for unsynchronized concurrent use.
type Problem struct {
	inst  *Instance
	order []int // item indices, descending profit/weight ratio, ties by index
}

// compile-time check: Problem satisfies the engine contract.
var _ dd.Problem[State] = (*Problem)(nil)

// NewProblem validates inst and builds the model, including the fixed
// decision order.
//
// Complexity: O(n log n) for the ratio sort.
func NewProblem(inst *Instance) (*Problem, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	var (
		n     = inst.NbItems
		order = make([]int, n)
		i     int
	)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		var (
			ra = float64(inst.Profit[order[a]]) / float64(inst.Weight[order[a]])
			rb = float64(inst.Profit[order[b]]) / float64(inst.Weight[order[b]])
		)

		return ra > rb
	})

	return &Problem{inst: inst, order: order}, nil
}

// newProblemWithOrder builds a model around inst reusing an existing
// decision order. The compression layer uses it: the meta-problem must keep
// the original problem's order even though its surrogate weights would sort
// differently.
func newProblemWithOrder(inst *Instance, order []int) *Problem {
	return &Problem{inst: inst, order: order}
}

// Instance returns the underlying instance (read-only by convention).
func (p *Problem) Instance() *Instance { return p.inst }

// Order returns a copy of the fixed decision order.
func (p *Problem) Order() []int { return append([]int(nil), p.order...) }

// NbVariables returns the number of items.
func (p *Problem) NbVariables() int { return p.inst.NbItems }

// InitialState is the root of the DP: nothing decided, full capacity.
func (p *Problem) InitialState() State {
	return State{Depth: 0, Capacity: p.inst.Capacity}
}

// InitialValue is the profit attached to the root.
func (p *Problem) InitialValue() int64 { return 0 }

// Transition returns the state reached by taking decision d in s.
// It never mutates s and never produces a negative capacity: value 1 is
// only ever offered by ForEachInDomain when the item fits.
func (p *Problem) Transition(s State, d dd.Decision) State {
	return State{
		Depth:    s.Depth + 1,
		Capacity: s.Capacity - d.Value*p.inst.Weight[d.Variable],
	}
}

// TransitionCost returns the profit contributed by decision d.
func (p *Problem) TransitionCost(_ State, d dd.Decision) int64 {
	return d.Value * p.inst.Profit[d.Variable]
}

// NextVariable returns the item branched at the given depth following the
// fixed ratio order, or ok=false once every item has been decided.
func (p *Problem) NextVariable(depth int) (dd.Variable, bool) {
	if depth < p.inst.NbItems {
		return dd.Variable(p.order[depth]), true
	}

	return 0, false
}

// ForEachInDomain offers value 0 unconditionally and value 1 only while
// the item fits the remaining capacity: infeasible branches are never
// generated rather than pruned after the fact.
func (p *Problem) ForEachInDomain(s State, v dd.Variable, fn func(dd.Decision)) {
	fn(dd.Decision{Variable: v, Value: 0})

	if s.Capacity >= p.inst.Weight[v] {
		fn(dd.Decision{Variable: v, Value: 1})
	}
}
