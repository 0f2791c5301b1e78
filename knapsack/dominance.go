package knapsack

import "github.com/vcoppe/knapsack/dd"

// Dominance discards states that provably cannot beat an already-kept
// state: at equal depth, a state with no more residual capacity than
// another is dominated by it.
//
// The rule compares capacity only and deliberately ignores accumulated
// profit, which is unusual for DP-style dominance. The engine compensates
// by requiring the surviving node's accumulated profit to be at least the
// discarded one's before it actually prunes (see dd.Dominance).
type Dominance struct{}

var _ dd.Dominance[State] = Dominance{}

// GetKey buckets states by depth: states are only compared within one layer.
func (Dominance) GetKey(s State) int { return s.Depth }

// GetValue projects the state onto its residual capacity.
func (Dominance) GetValue(s State) int64 { return s.Capacity }

// IsDominatedBy reports a <= b: equal capacities dominate each other and
// the engine decides which survivor to keep.
func (Dominance) IsDominatedBy(a, b int64) bool { return a <= b }
