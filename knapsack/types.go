package knapsack

import "errors"

// Sentinel errors for instance validation and bundle construction.
var (
	// ErrNilInstance indicates that a nil *Instance was supplied.
	ErrNilInstance = errors.New("knapsack: instance is nil")

	// ErrLengthMismatch indicates len(Weight) or len(Profit) != NbItems.
	ErrLengthMismatch = errors.New("knapsack: weight/profit length does not match nb_items")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNonPositiveWeight indicates an item weight ≤ 0: the profit/weight
	// ordering key is undefined at weight zero, so such instances are
	// rejected up front instead of producing an undefined item order.
	ErrNonPositiveWeight = errors.New("knapsack: item weights must be positive")

	// ErrNegativeProfit indicates an item profit below zero.
	ErrNegativeProfit = errors.New("knapsack: item profits must be non-negative")

	// ErrNilProblem indicates that a nil *Problem was supplied.
	ErrNilProblem = errors.New("knapsack: problem is nil")

	// ErrBadMetaItems indicates a requested meta-item count below one.
	ErrBadMetaItems = errors.New("knapsack: meta-item count must be positive")

	// ErrBadStrategy indicates an unknown compression strategy.
	ErrBadStrategy = errors.New("knapsack: unknown compression strategy")

	// ErrBadFeatureSet indicates an unknown clustering feature set.
	ErrBadFeatureSet = errors.New("knapsack: unknown clustering feature set")

	// ErrBadItemCount indicates a generator item count below one.
	ErrBadItemCount = errors.New("knapsack: item count must be positive")

	// ErrBadClusterCount indicates a generator cluster count outside 1..NbItems.
	ErrBadClusterCount = errors.New("knapsack: cluster count out of range")

	// ErrBadRange indicates an inconsistent generator value range or a
	// negative standard deviation.
	ErrBadRange = errors.New("knapsack: invalid generator range")
)

// State is one node of the knapsack DP: how many items have been decided
// and how much capacity remains. States are immutable values; transitions
// return fresh ones. A negative capacity denotes infeasibility and is never
// produced by a valid transition (value-1 decisions are only offered while
// capacity allows).
type State struct {
	Depth    int
	Capacity int64
}
