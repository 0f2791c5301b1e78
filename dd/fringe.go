package dd

import "container/heap"

// fringe is a max-heap of open subproblems ordered by decreasing upper
// bound (ties: higher accumulated value first). Exploring the highest
// bound first lets the solver stop as soon as the top of the fringe can no
// longer beat the incumbent.
//
// The fringe is engine-private and always accessed under the solver lock.
type fringe[S comparable] struct {
	items []*subProblem[S]
}

var _ heap.Interface = (*fringe[int])(nil)

func (f *fringe[S]) Len() int { return len(f.items) }

func (f *fringe[S]) Less(i, j int) bool {
	if f.items[i].ub != f.items[j].ub {
		return f.items[i].ub > f.items[j].ub
	}

	return f.items[i].value > f.items[j].value
}

func (f *fringe[S]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *fringe[S]) Push(x any) { f.items = append(f.items, x.(*subProblem[S])) }

func (f *fringe[S]) Pop() any {
	var last = len(f.items) - 1
	var it = f.items[last]
	f.items[last] = nil
	f.items = f.items[:last]

	return it
}

// push enqueues a subproblem.
func (f *fringe[S]) push(sub *subProblem[S]) { heap.Push(f, sub) }

// pop dequeues the subproblem of highest upper bound; callers must ensure
// the fringe is non-empty.
func (f *fringe[S]) pop() *subProblem[S] { return heap.Pop(f).(*subProblem[S]) }

// clear discards every queued subproblem.
func (f *fringe[S]) clear() { f.items = f.items[:0] }
