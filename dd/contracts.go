package dd

// Problem is the exact dynamic-programming formulation of a maximization
// problem over states of type S.
//
// All methods must be pure functions of their inputs: the engine calls them
// concurrently from several workers and provides no synchronization.
// Transition must never mutate its input state; it returns a fresh value.
type Problem[S any] interface {
	// NbVariables returns the number of decision variables.
	NbVariables() int

	// InitialState returns the DP root state.
	InitialState() S

	// InitialValue returns the objective value attached to the root.
	InitialValue() int64

	// Transition returns the state reached from s by taking decision d.
	// d is always one of the decisions offered by ForEachInDomain for s.
	Transition(s S, d Decision) S

	// TransitionCost returns the objective contribution of taking d in s.
	TransitionCost(s S, d Decision) int64

	// NextVariable returns the variable branched on at the given depth,
	// or ok=false once every variable has been assigned.
	NextVariable(depth int) (v Variable, ok bool)

	// ForEachInDomain invokes fn once per feasible value of v in state s.
	// Infeasible decisions must not be offered at all.
	ForEachInDomain(s S, v Variable, fn func(Decision))
}

// Relaxation weakens the problem just enough to compile width-bounded
// diagrams that never underestimate the true optimum.
type Relaxation[S any] interface {
	// Merge collapses a non-empty set of states sharing one depth into a
	// single state whose feasible completions are a superset of every
	// input's. Calling Merge with an empty slice is a caller error.
	Merge(states []S) S

	// Relax rescales the cost of the arc (src → dst) when dst is replaced
	// by the merged state. Returning cost unchanged is always admissible
	// when Merge only weakens feasibility.
	Relax(src, dst, merged S, d Decision, cost int64) int64

	// FastUpperBound returns a cheap admissible estimate of the best value
	// attainable from s to completion. It must never underestimate.
	FastUpperBound(s S) int64
}

// StateRanking is a total order on states: Compare returns a negative
// number when a is less promising than b, positive when more promising,
// zero when tied. Least-promising states are dropped or merged first when
// a layer exceeds the width limit.
type StateRanking[S any] interface {
	Compare(a, b S) int
}

// Dominance discards states that provably cannot lead to a better outcome
// than an already-kept state. States are compared only within one key
// bucket; key and comparison value are integer projections of the state.
//
// Note: the rule compares state projections only. To stay sound the engine
// additionally requires the surviving node's accumulated objective value to
// be at least the discarded node's before pruning.
type Dominance[S any] interface {
	// GetKey buckets states; only states sharing a key are compared.
	GetKey(s S) int

	// GetValue projects the state onto the quantity the rule compares.
	GetValue(s S) int64

	// IsDominatedBy reports whether a state projecting to a is dominated
	// by one projecting to b. Equal projections dominate each other; the
	// engine decides which survivor to keep.
	IsDominatedBy(a, b int64) bool
}

// Compression substitutes a coarser surrogate problem for the original.
// Solving the surrogate is cheaper (fewer distinct states) and, when the
// surrogate is a relaxation of the original, bounds the true optimum.
type Compression[S any] interface {
	// GetCompressedProblem returns the surrogate problem.
	GetCompressedProblem() Problem[S]

	// Compress canonicalizes a state onto a state the surrogate problem
	// can itself reach. Applied by the engine to every transition result
	// compiled against the surrogate.
	Compress(s S) S

	// Decompress translates a surrogate decision vector back into one for
	// the original problem.
	Decompress(solution []Decision) []Decision
}
