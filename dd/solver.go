// Package dd — the branch-and-bound driver.
//
// The solver maintains a fringe of open subproblems ordered by decreasing
// upper bound. Each worker repeatedly pops a subproblem and:
//
//  1. compiles a restricted diagram to look for a better incumbent;
//  2. when the restricted compilation was inexact, compiles a relaxed
//     diagram and enqueues its exact cutset, each node bounded by
//     min(relaxed root bound, node value + FastUpperBound).
//
// A subproblem whose bound cannot beat the incumbent is discarded on pop;
// because the fringe is a max-heap, the whole queue can be discarded at
// that point. The search is exact when the fringe drains before the soft
// time budget runs out; on timeout the best incumbent so far is reported
// with IsExact=false.
//
// When a Compression is configured the solver compiles the surrogate
// problem instead, canonicalizing every transition result through Compress;
// the reported value then bounds the original problem whenever the
// surrogate is a relaxation of it, and BestSolution passes the decision
// vector through Decompress.

package dd

import (
	"sync"
	"time"
)

// Solver drives the branch-and-bound search. Assemble with NewSolver,
// run with Maximize. A Solver is meant for a single Maximize call;
// the contracts it was built from are never mutated.
type Solver[S comparable] struct {
	problem Problem[S] // problem actually compiled (surrogate when comp != nil)
	rel     Relaxation[S]
	rank    StateRanking[S]
	dom     Dominance[S]
	comp    Compression[S]
	opts    Options

	useDeadline bool
	deadline    time.Time

	mu       sync.Mutex
	cond     *sync.Cond
	fringe   fringe[S]
	ongoing  int
	timedOut bool

	best    int64
	bestSol []Decision
	hasInc  bool
}

// NewSolver assembles a solver from the problem bundle.
//
// Contracts:
//   - pb, rel and rank must be non-nil; dom and comp may be nil to disable
//     dominance pruning and compression respectively.
//   - opts.Width ≥ 1, opts.Workers ≥ 0 (0 ⇒ NumCPU), opts.TimeLimit ≥ 0
//     (0 ⇒ unlimited).
//
// Errors: ErrNilProblem, ErrNilRelaxation, ErrNilRanking, ErrBadWidth,
// ErrBadWorkers.
func NewSolver[S comparable](
	pb Problem[S],
	rel Relaxation[S],
	rank StateRanking[S],
	dom Dominance[S],
	comp Compression[S],
	opts Options,
) (*Solver[S], error) {
	if pb == nil {
		return nil, ErrNilProblem
	}
	if rel == nil {
		return nil, ErrNilRelaxation
	}
	if rank == nil {
		return nil, ErrNilRanking
	}
	var norm, err = opts.normalize()
	if err != nil {
		return nil, err
	}

	var s = &Solver[S]{
		problem: pb,
		rel:     rel,
		rank:    rank,
		dom:     dom,
		comp:    comp,
		opts:    norm,
	}
	if comp != nil {
		s.problem = comp.GetCompressedProblem()
		if s.problem == nil {
			return nil, ErrNilProblem
		}
	}
	s.cond = sync.NewCond(&s.mu)

	return s, nil
}

// Maximize runs the search to completion or to the time budget and returns
// the completion record. The incumbent decision vector is available from
// BestSolution afterwards.
func (s *Solver[S]) Maximize() (Completion, error) {
	if s.opts.TimeLimit > 0 {
		s.useDeadline = true
		s.deadline = time.Now().Add(s.opts.TimeLimit)
	}

	var root = &subProblem[S]{
		state: s.problem.InitialState(),
		value: s.problem.InitialValue(),
		depth: 0,
	}
	root.ub = root.value + s.rel.FastUpperBound(root.state)
	s.fringe.push(root)

	var wg sync.WaitGroup
	for i := 0; i < s.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker()
		}()
	}
	wg.Wait()

	return Completion{
		BestValue:    s.best,
		HasIncumbent: s.hasInc,
		IsExact:      !s.timedOut,
	}, nil
}

// BestSolution returns the incumbent decision vector (one decision per
// variable, in the engine's branching order) and whether one exists.
// With a Compression configured, the vector is passed through Decompress.
func (s *Solver[S]) BestSolution() ([]Decision, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasInc {
		return nil, false
	}
	var sol = append([]Decision(nil), s.bestSol...)
	if s.comp != nil {
		sol = s.comp.Decompress(sol)
	}

	return sol, true
}

// worker is the per-goroutine search loop. Workers share the fringe and
// incumbent under the solver lock and park on the condition variable while
// the fringe is empty but siblings may still enqueue cutsets.
func (s *Solver[S]) worker() {
	for {
		s.mu.Lock()
		for s.fringe.Len() == 0 && s.ongoing > 0 && !s.timedOut {
			s.cond.Wait()
		}
		if s.timedOut || s.fringe.Len() == 0 {
			s.mu.Unlock()
			s.cond.Broadcast()

			return
		}
		if s.useDeadline && time.Now().After(s.deadline) {
			s.timedOut = true
			s.mu.Unlock()
			s.cond.Broadcast()

			return
		}

		var sub = s.fringe.pop()
		if s.hasInc && sub.ub <= s.best {
			// Max-heap: nothing queued can beat the incumbent either.
			s.fringe.clear()
			s.mu.Unlock()
			s.cond.Broadcast()

			continue
		}
		s.ongoing++
		var lb, hasLB = s.best, s.hasInc
		s.mu.Unlock()

		s.process(sub, lb, hasLB)

		s.mu.Lock()
		s.ongoing--
		s.mu.Unlock()
		s.cond.Broadcast()
	}
}

// process explores one subproblem: restricted compile, then (when needed)
// relaxed compile and cutset enqueueing.
func (s *Solver[S]) process(sub *subProblem[S], lb int64, hasLB bool) {
	var c = compilation[S]{
		pb:          s.problem,
		rel:         s.rel,
		rank:        s.rank,
		dom:         s.dom,
		comp:        s.comp,
		width:       s.opts.Width,
		lb:          lb,
		hasLB:       hasLB,
		useDeadline: s.useDeadline,
		deadline:    s.deadline,
	}

	var restricted, aborted = c.run(sub, restrictedDD)
	if aborted {
		s.markTimedOut()

		return
	}
	if restricted.best != nil {
		s.offerIncumbent(restricted.best.value, walkPath(sub.path, restricted.best))
	}
	if restricted.exact {
		return
	}

	// Refresh the pruning snapshot: the restricted pass may have improved it.
	c.lb, c.hasLB = s.incumbent()

	var relaxed, rAborted = c.run(sub, relaxedDD)
	if rAborted {
		s.markTimedOut()

		return
	}
	if relaxed.best == nil {
		return
	}
	if relaxed.exact {
		// No merge happened: the relaxed terminal is a feasible optimum
		// of this subproblem.
		s.offerIncumbent(relaxed.best.value, walkPath(sub.path, relaxed.best))

		return
	}

	var bound = relaxed.best.value
	s.enqueueCutset(sub, relaxed, bound)
}

// enqueueCutset turns every cutset node of a relaxed compilation into an
// open subproblem, bounded by min(relaxed root bound, node bound).
func (s *Solver[S]) enqueueCutset(sub *subProblem[S], relaxed compileResult[S], bound int64) {
	var pushed bool

	s.mu.Lock()
	defer func() {
		s.mu.Unlock()
		if pushed {
			s.cond.Broadcast()
		}
	}()

	if s.hasInc && bound <= s.best {
		return
	}

	var n *node[S]
	for _, n = range relaxed.cutset {
		var ub = n.value + s.rel.FastUpperBound(n.state)
		if bound < ub {
			ub = bound
		}
		if s.hasInc && ub <= s.best {
			continue
		}
		s.fringe.push(&subProblem[S]{
			state: n.state,
			value: n.value,
			ub:    ub,
			depth: relaxed.cutsetDepth,
			path:  walkPath(sub.path, n),
		})
		pushed = true
	}
}

// offerIncumbent installs a new best solution when value improves on it.
func (s *Solver[S]) offerIncumbent(value int64, sol []Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasInc && value <= s.best {
		return
	}
	s.best = value
	s.bestSol = sol
	s.hasInc = true
}

// incumbent snapshots the current best value under the lock.
func (s *Solver[S]) incumbent() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.best, s.hasInc
}

// markTimedOut flags the search as inexact and wakes every parked worker.
func (s *Solver[S]) markTimedOut() {
	s.mu.Lock()
	s.timedOut = true
	s.mu.Unlock()
	s.cond.Broadcast()
}
