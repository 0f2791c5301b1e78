// Package dd implements a generic branch-and-bound solver over decision
// diagrams (DDs) for discrete maximization problems expressed as dynamic
// programs.
//
// A problem is described to the engine through a small set of contracts,
// all generic over the caller's state type S:
//
//   - Problem[S]      — the exact DP formulation: initial state/value,
//     variable order, per-state decision domains, transitions and costs.
//   - Relaxation[S]   — state merging plus an admissible upper bound,
//     used to compile width-bounded relaxed diagrams.
//   - StateRanking[S] — a total order deciding which states to drop or
//     merge first when a layer exceeds the width limit.
//   - Dominance[S]    — optional: a partial order used to discard states
//     that provably cannot beat an already-kept state.
//   - Compression[S]  — optional: a coarser surrogate problem plus a state
//     canonicalization, solved in place of the original for cheap bounds.
//
// The engine repeatedly compiles restricted DDs (to improve the incumbent)
// and relaxed DDs (to bound and split subproblems) from a fringe of open
// subproblems ordered by decreasing upper bound, until the fringe drains or
// the time budget runs out. Both widths and budgets are engine policy; the
// contracts stay pure and are called concurrently from worker goroutines,
// so implementations must be stateless and reentrant.
//
// Use NewSolver to assemble a solver, Maximize to run the search, and
// BestSolution to retrieve the incumbent decision vector.
//
// Errors (sentinel): ErrNilProblem, ErrNilRelaxation, ErrNilRanking,
// ErrBadWidth, ErrBadWorkers.
package dd
