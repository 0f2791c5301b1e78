package dd

import "errors"

// Sentinel errors returned by NewSolver.
var (
	// ErrNilProblem indicates that a nil Problem was supplied.
	ErrNilProblem = errors.New("dd: problem is nil")

	// ErrNilRelaxation indicates that a nil Relaxation was supplied.
	ErrNilRelaxation = errors.New("dd: relaxation is nil")

	// ErrNilRanking indicates that a nil StateRanking was supplied.
	ErrNilRanking = errors.New("dd: state ranking is nil")

	// ErrBadWidth indicates a maximum layer width below 1.
	ErrBadWidth = errors.New("dd: width must be positive")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("dd: workers must be non-negative")
)

// Variable identifies one decision variable of the problem.
// For the knapsack model this is the original item index.
type Variable int

// Decision is the assignment of a single value to a single variable.
// Decisions are ephemeral: produced by domain enumeration, consumed
// immediately by Transition and TransitionCost.
type Decision struct {
	Variable Variable
	Value    int64
}

// Completion summarizes a finished (or timed-out) search.
//
// BestValue is meaningful only when HasIncumbent is true; IsExact reports
// whether the search proved optimality of that incumbent (it is false after
// a timeout, even when an incumbent exists).
type Completion struct {
	BestValue    int64
	HasIncumbent bool
	IsExact      bool
}
