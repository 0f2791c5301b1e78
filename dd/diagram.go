// Package dd — layered compilation of restricted and relaxed diagrams.
//
// Rationale (succinct):
//  1. One compilation routine serves both diagram kinds; they only differ
//     in how an oversized layer is shrunk (drop vs. merge).
//  2. Layers are kept as a slice plus a state→slot index: the slice gives a
//     deterministic iteration and sort order, the index deduplicates states
//     reached along several paths (keeping the best accumulated value).
//  3. The cutset is the layer built right before the first width
//     restriction: every node in it is exact, and every true solution below
//     the compiled subproblem passes through one of its nodes.
//  4. Rough pruning: nodes whose value + FastUpperBound cannot beat the
//     incumbent snapshot are removed as soon as they appear. Dominated
//     nodes are removed too, guarded by the accumulated-value check (an
//     exact node may only be pruned by an exact node).

package dd

import (
	"sort"
	"time"
)

// node is one state of a diagram layer together with the best known arc
// into it, for solution reconstruction.
type node[S comparable] struct {
	state    S
	value    int64
	parent   *node[S]
	decision Decision
	cost     int64
	exact    bool
}

// subProblem is an open search node: a root for further compilations.
type subProblem[S comparable] struct {
	state S
	value int64
	ub    int64
	depth int
	path  []Decision
}

type compileKind int

const (
	restrictedDD compileKind = iota
	relaxedDD
)

// compilation bundles the read-only inputs of one diagram compilation.
type compilation[S comparable] struct {
	pb   Problem[S]
	rel  Relaxation[S]
	rank StateRanking[S]
	dom  Dominance[S]
	comp Compression[S]

	width int

	// Incumbent snapshot for rough pruning.
	lb    int64
	hasLB bool

	// Soft deadline, checked once per layer.
	useDeadline bool
	deadline    time.Time
}

// compileResult is the outcome of one diagram compilation.
type compileResult[S comparable] struct {
	// best is the terminal node of maximum value, or nil when every path
	// was pruned against the incumbent.
	best *node[S]

	// exact reports that no drop or merge happened: for a restricted
	// diagram the best terminal is the subproblem optimum, for a relaxed
	// one it is additionally feasible.
	exact bool

	// cutset is the exact layer captured before the first restriction,
	// with its depth; empty when the compilation stayed exact.
	cutset      []*node[S]
	cutsetDepth int
}

// run compiles one diagram of the requested kind rooted at sub.
// The second return value reports a deadline abort; the partial result must
// then be discarded by the caller.
func (c *compilation[S]) run(sub *subProblem[S], kind compileKind) (compileResult[S], bool) {
	var res compileResult[S]
	res.exact = true

	var root = &node[S]{state: sub.state, value: sub.value, exact: true}

	var (
		layer = []*node[S]{root}
		depth int
		v     Variable
		ok    bool
	)
	for depth = sub.depth; ; depth++ {
		if c.useDeadline && time.Now().After(c.deadline) {
			return compileResult[S]{}, true
		}

		v, ok = c.pb.NextVariable(depth)
		if !ok {
			break
		}

		// Stage 1 — expand every node's domain into the next layer.
		layer = c.expand(layer, v)

		// Stage 2 — rough pruning against the incumbent snapshot.
		if c.hasLB {
			layer = c.pruneByBound(layer)
		}

		// Stage 3 — dominance pruning within the layer.
		if c.dom != nil {
			layer = c.pruneByDominance(layer)
		}
		if len(layer) == 0 {
			// Every completion is provably no better than the incumbent.
			return res, false
		}

		// Stage 4 — width restriction.
		if len(layer) > c.width {
			if res.exact {
				res.cutset = append([]*node[S](nil), layer...)
				res.cutsetDepth = depth + 1
				res.exact = false
			}
			if kind == restrictedDD {
				layer = c.shrinkDrop(layer)
			} else {
				layer = c.shrinkMerge(layer)
			}
		}
	}

	// Terminal layer: pick the best node.
	var (
		best *node[S]
		n    *node[S]
	)
	for _, n = range layer {
		if best == nil || n.value > best.value {
			best = n
		}
	}
	res.best = best
	if res.exact {
		res.cutset = nil
	}

	return res, false
}

// expand builds the next layer by applying every feasible decision of v to
// every node of the current layer, deduplicating states on the fly.
// When a Compression is configured, each transition result is canonicalized
// through Compress before insertion.
func (c *compilation[S]) expand(layer []*node[S], v Variable) []*node[S] {
	var (
		next  = make([]*node[S], 0, 2*len(layer))
		index = make(map[S]int, 2*len(layer))
		n     *node[S]
	)
	for _, n = range layer {
		var src = n
		c.pb.ForEachInDomain(src.state, v, func(d Decision) {
			var (
				cost = c.pb.TransitionCost(src.state, d)
				st   = c.pb.Transition(src.state, d)
			)
			if c.comp != nil {
				st = c.comp.Compress(st)
			}
			var val = src.value + cost

			if slot, dup := index[st]; dup {
				var m = next[slot]
				if val > m.value {
					m.value, m.parent, m.decision, m.cost = val, src, d, cost
				}
				m.exact = m.exact && src.exact

				return
			}
			index[st] = len(next)
			next = append(next, &node[S]{
				state:    st,
				value:    val,
				parent:   src,
				decision: d,
				cost:     cost,
				exact:    src.exact,
			})
		})
	}

	return next
}

// pruneByBound drops nodes whose admissible completion bound cannot beat
// the incumbent snapshot. Sound for both diagram kinds: any path through a
// dropped node is at most as good as the incumbent.
func (c *compilation[S]) pruneByBound(layer []*node[S]) []*node[S] {
	var (
		kept = layer[:0]
		n    *node[S]
	)
	for _, n = range layer {
		if n.value+c.rel.FastUpperBound(n.state) > c.lb {
			kept = append(kept, n)
		}
	}

	return kept
}

// pruneByDominance removes nodes dominated by a kept node of at least equal
// accumulated value (the layer is scanned in decreasing value order, so
// every kept node satisfies the value guard for later candidates).
// An exact node may only be pruned by an exact node: merged nodes carry
// inflated values and overstate what they can realize.
func (c *compilation[S]) pruneByDominance(layer []*node[S]) []*node[S] {
	sort.SliceStable(layer, func(i, j int) bool { return layer[i].value > layer[j].value })

	type keptNode struct {
		proj  int64
		exact bool
	}
	var (
		kept      = layer[:0]
		byKey     = make(map[int][]keptNode)
		n         *node[S]
		dominated bool
	)
	for _, n = range layer {
		var (
			key  = c.dom.GetKey(n.state)
			proj = c.dom.GetValue(n.state)
		)
		dominated = false
		for _, k := range byKey[key] {
			if !k.exact && n.exact {
				continue
			}
			if c.dom.IsDominatedBy(proj, k.proj) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		byKey[key] = append(byKey[key], keptNode{proj: proj, exact: n.exact})
		kept = append(kept, n)
	}

	return kept
}

// leastPromisingFirst orders a layer for shrinking: by ranking, then by
// accumulated value, ties broken by keeping the original (deterministic)
// insertion order.
func (c *compilation[S]) leastPromisingFirst(layer []*node[S]) {
	sort.SliceStable(layer, func(i, j int) bool {
		var r = c.rank.Compare(layer[i].state, layer[j].state)
		if r != 0 {
			return r < 0
		}

		return layer[i].value < layer[j].value
	})
}

// shrinkDrop keeps only the width most promising nodes (restricted diagram).
func (c *compilation[S]) shrinkDrop(layer []*node[S]) []*node[S] {
	c.leastPromisingFirst(layer)

	return layer[len(layer)-c.width:]
}

// shrinkMerge collapses the surplus least promising nodes into a single
// merged node (relaxed diagram). The merged node's value is the maximum
// over the surplus of the value reachable through each node's best arc,
// with the arc cost rescaled by Relax; its parent link points at the arc
// realizing that maximum so an (infeasible but bounded) path can still be
// reconstructed.
func (c *compilation[S]) shrinkMerge(layer []*node[S]) []*node[S] {
	c.leastPromisingFirst(layer)

	var (
		cut     = len(layer) - c.width + 1
		surplus = layer[:cut]
		kept    = layer[cut:]
	)

	var states = make([]S, len(surplus))
	for i, n := range surplus {
		states[i] = n.state
	}
	var merged = &node[S]{state: c.rel.Merge(states), exact: false}

	var val int64
	for i := range surplus {
		var n = surplus[i]
		if n.parent == nil {
			// Only a subproblem root lacks a parent; it cannot reach the
			// surplus because the root layer has a single node.
			val = n.value
		} else {
			val = n.parent.value + c.rel.Relax(n.parent.state, n.state, merged.state, n.decision, n.cost)
		}
		if i == 0 || val > merged.value {
			merged.value = val
			merged.parent = n.parent
			merged.decision = n.decision
			merged.cost = n.cost
		}
	}

	// The merged state may coincide with a kept node: fuse them.
	for i, n := range kept {
		if n.state == merged.state {
			if merged.value > n.value {
				kept[i] = merged
			} else {
				n.exact = false
			}

			return kept
		}
	}

	return append(kept, merged)
}

// walkPath reconstructs the decisions of the best arc chain from the
// compilation root down to n, appended to the subproblem prefix.
func walkPath[S comparable](prefix []Decision, n *node[S]) []Decision {
	var count int
	for m := n; m.parent != nil; m = m.parent {
		count++
	}

	var path = make([]Decision, len(prefix)+count)
	copy(path, prefix)
	var at = len(path)
	for m := n; m.parent != nil; m = m.parent {
		at--
		path[at] = m.decision
	}

	return path
}
