package knapsack

import (
	"sort"

	"github.com/vcoppe/knapsack/dd"
)

// reachableIndex records, per depth of a problem, the sorted set of
// distinct residual capacities the problem's own transition system can
// reach from its initial state. The exact-aware compression strategy uses
// it to snap arbitrary incoming capacities up to the least reachable value
// at the same depth, so merged states never collapse onto capacities the
// meta-problem cannot itself produce.
//
// Built once, single-threaded, before search; read-only afterwards.
type reachableIndex struct {
	byDepth [][]int64
}

// newReachableIndex enumerates the reachable capacities breadth-first,
// depth by depth, driving the problem through its own domain and
// transition functions until no variable remains.
//
// Complexity: O(n · C) time and space worst case, with C the number of
// distinct reachable capacities (bounded by capacity+1).
func newReachableIndex(pb *Problem) *reachableIndex {
	var (
		n       = pb.NbVariables()
		byDepth = make([][]int64, n+1)
		front   = map[int64]struct{}{pb.InitialState().Capacity: {}}
		depth   int
	)
	byDepth[0] = sortedCapacities(front)

	var (
		v  dd.Variable
		ok bool
	)
	for depth = 0; ; depth++ {
		v, ok = pb.NextVariable(depth)
		if !ok {
			break
		}

		var next = make(map[int64]struct{}, 2*len(front))
		for c := range front {
			var s = State{Depth: depth, Capacity: c}
			pb.ForEachInDomain(s, v, func(d dd.Decision) {
				next[pb.Transition(s, d).Capacity] = struct{}{}
			})
		}
		front = next
		byDepth[depth+1] = sortedCapacities(front)
	}

	return &reachableIndex{byDepth: byDepth}
}

// snap returns s with its capacity raised to the least reachable capacity
// at s.Depth that is ≥ s.Capacity, or s unchanged when no such value (or
// no index entry for the depth) exists.
func (ix *reachableIndex) snap(s State) State {
	if s.Depth < 0 || s.Depth >= len(ix.byDepth) {
		return s
	}

	var caps = ix.byDepth[s.Depth]
	var at = sort.Search(len(caps), func(i int) bool { return caps[i] >= s.Capacity })
	if at == len(caps) {
		return s
	}

	return State{Depth: s.Depth, Capacity: caps[at]}
}

// sortedCapacities flattens a capacity set into a sorted slice.
func sortedCapacities(set map[int64]struct{}) []int64 {
	var out = make([]int64, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
