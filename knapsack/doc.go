// Package knapsack models the 0/1 knapsack problem for the decision-diagram
// branch-and-bound engine in package dd.
//
// The package provides the full problem bundle the engine consumes:
//
//   - Instance   — raw problem data (item weights/profits, capacity) with
//     JSON persistence and strict validation, plus a clustered random
//     instance generator.
//   - Problem    — the exact DP formulation: states {depth, capacity},
//     items branched in descending profit/weight ratio order, value-1
//     decisions offered only while capacity allows.
//   - Relaxation — state merging (max capacity at equal depth) and the
//     greedy fractional upper bound walked down the fixed item order.
//   - Ranking    — higher residual capacity is retained preferentially
//     when a diagram's width must be restricted.
//   - Dominance  — at equal depth, a state with no more residual capacity
//     than another is discarded. The rule deliberately ignores accumulated
//     profit (see Dominance for the fine print).
//   - Compression — a coarser meta-problem built by clustering items and
//     substituting each cluster's minimum true weight, with an optional
//     exact reachable-capacity index that canonicalizes states onto
//     capacities the meta-problem can itself produce.
//
// Every operation is a pure function over immutable value states; the
// bundle is safe for unsynchronized concurrent use once constructed.
//
// A minimal solve:
//
//	inst, err := knapsack.LoadInstance("inst.json")
//	// handle err
//	pb, err := knapsack.NewProblem(inst)
//	// handle err
//	rel := knapsack.NewRelaxation(pb)
//	solver, err := dd.NewSolver[knapsack.State](
//	    pb, rel, knapsack.Ranking{}, knapsack.Dominance{}, nil, dd.DefaultOptions())
//	// handle err
//	completion, _ := solver.Maximize()
package knapsack
