package routing

import (
	"container/heap"
	"errors"
)

// ErrEmptyFrontier is the panic value of ExtractMin on an empty frontier.
var ErrEmptyFrontier = errors.New("routing: extract from empty frontier")

// Ranked is a search state ordered by its accumulated cost.
type Ranked interface {
	Rank() float64
}

type frontierItem[K comparable, S Ranked] struct {
	node  K
	state S
	seq   uint64
	index int
}

type frontierQueue[K comparable, S Ranked] []*frontierItem[K, S]

func (q frontierQueue[K, S]) Len() int { return len(q) }

func (q frontierQueue[K, S]) Less(i, j int) bool {
	ri, rj := q[i].state.Rank(), q[j].state.Rank()
	if ri != rj {
		return ri < rj
	}
	return q[i].seq < q[j].seq
}

func (q frontierQueue[K, S]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontierQueue[K, S]) Push(x any) {
	item := x.(*frontierItem[K, S])
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *frontierQueue[K, S]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Frontier is a min-priority queue keyed by node, holding at most one
// state per node. Ties on rank go to the entry inserted first.
type Frontier[K comparable, S Ranked] struct {
	queue frontierQueue[K, S]
	items map[K]*frontierItem[K, S]
	seq   uint64
}

func NewFrontier[K comparable, S Ranked]() *Frontier[K, S] {
	return &Frontier[K, S]{items: make(map[K]*frontierItem[K, S])}
}

// Upsert inserts node with state, or overwrites the state already stored
// for node and restores heap order.
func (f *Frontier[K, S]) Upsert(node K, state S) {
	if item, ok := f.items[node]; ok {
		item.state = state
		heap.Fix(&f.queue, item.index)
		return
	}
	item := &frontierItem[K, S]{node: node, state: state, seq: f.seq}
	f.seq++
	f.items[node] = item
	heap.Push(&f.queue, item)
}

// ExtractMin removes and returns the lowest ranked entry. It panics with
// ErrEmptyFrontier when the frontier is empty; check IsEmpty first.
func (f *Frontier[K, S]) ExtractMin() (K, S) {
	if len(f.queue) == 0 {
		panic(ErrEmptyFrontier)
	}
	item := heap.Pop(&f.queue).(*frontierItem[K, S])
	delete(f.items, item.node)
	return item.node, item.state
}

func (f *Frontier[K, S]) Has(node K) bool {
	_, ok := f.items[node]
	return ok
}

// Peek returns the state stored for node without removing it.
func (f *Frontier[K, S]) Peek(node K) (S, bool) {
	item, ok := f.items[node]
	if !ok {
		var zero S
		return zero, false
	}
	return item.state, true
}

func (f *Frontier[K, S]) Len() int { return len(f.queue) }

func (f *Frontier[K, S]) IsEmpty() bool { return len(f.queue) == 0 }
