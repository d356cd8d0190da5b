package kbcomplete

import "container/heap"

// Equation is an unoriented pair of terms asserted equal - either a
// starting axiom or a critical pair generated during completion.
type Equation struct {
	Left, Right Term
}

// pendingEquation is an Equation annotated with its priority key: total
// node size (smaller first), then insertion order (earlier first) to
// break ties, so no critical pair is starved indefinitely.
type pendingEquation struct {
	eq  Equation
	seq int64
}

// equationQueue is a min-heap of pendingEquations ordered by (size,
// seq), implementing container/heap.Interface.
type equationQueue struct {
	items []pendingEquation
}

func (q *equationQueue) Len() int { return len(q.items) }

func (q *equationQueue) Less(i, j int) bool {
	si := Size(q.items[i].eq.Left) + Size(q.items[i].eq.Right)
	sj := Size(q.items[j].eq.Left) + Size(q.items[j].eq.Right)
	if si != sj {
		return si < sj
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *equationQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *equationQueue) Push(x any) { q.items = append(q.items, x.(pendingEquation)) }

func (q *equationQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// EquationQueue is a fair, priority-ordered worklist of pending
// equations: smaller terms are completed first, and equations of equal
// size are processed in the order they were added.
type EquationQueue struct {
	heap equationQueue
	next int64
}

// NewEquationQueue returns an empty queue.
func NewEquationQueue() *EquationQueue {
	return &EquationQueue{}
}

// Push adds eq to the queue.
func (q *EquationQueue) Push(eq Equation) {
	heap.Push(&q.heap, pendingEquation{eq: eq, seq: q.next})
	q.next++
}

// Pop removes and returns the lowest-priority (smallest, then oldest)
// pending equation. Reports false if the queue is empty.
func (q *EquationQueue) Pop() (Equation, bool) {
	if q.heap.Len() == 0 {
		return Equation{}, false
	}
	item := heap.Pop(&q.heap).(pendingEquation)
	return item.eq, true
}

// Len reports the number of equations currently queued.
func (q *EquationQueue) Len() int { return q.heap.Len() }
